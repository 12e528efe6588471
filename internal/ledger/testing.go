package ledger

// SlotStatus is a test helper that reports a slot's current status when using
// the in-memory ledger. Returns an empty string for unknown slots.
func SlotStatus(l Ledger, slotID string) string {
	if mem, ok := l.(*memoryLedger); ok {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		return mem.slots[slotID].Status
	}
	return ""
}
