package mall

import "time"

// Mall represents a shopping mall whose parking slots are managed by the ledger.
type Mall struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}
