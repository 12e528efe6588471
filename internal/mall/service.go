package mall

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mallpark/mallpark/internal/ledger"
)

// Service exposes mall provisioning and listing, delegating slot records to
// the ledger.
type Service struct {
	repo   Repository
	ledger ledger.Ledger
}

// NewService builds a mall service instance.
func NewService(repo Repository, ledger ledger.Ledger) *Service {
	return &Service{repo: repo, ledger: ledger}
}

// CreateInput captures data required to provision a mall with parking slots.
type CreateInput struct {
	Name      string
	Address   string
	SlotCount int
}

// Create provisions a mall and its parking slots through the ledger. Slot
// labels run P-001 upward.
func (s *Service) Create(ctx context.Context, input CreateInput) (Mall, error) {
	if input.Name == "" {
		return Mall{}, fmt.Errorf("mall name is required")
	}
	if input.SlotCount < 0 {
		return Mall{}, fmt.Errorf("slot count must not be negative")
	}

	mall := Mall{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Address:   input.Address,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, mall); err != nil {
		return Mall{}, err
	}

	for i := 1; i <= input.SlotCount; i++ {
		slot := ledger.Slot{
			ID:     uuid.New().String(),
			MallID: mall.ID,
			Label:  fmt.Sprintf("P-%03d", i),
			Status: ledger.SlotStatusFree,
		}
		if err := s.ledger.EnsureSlot(ctx, slot); err != nil {
			return Mall{}, err
		}
	}

	return mall, nil
}

// List returns all malls.
func (s *Service) List(ctx context.Context) ([]Mall, error) {
	return s.repo.List(ctx)
}
