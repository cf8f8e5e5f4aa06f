package planning

import (
	"context"
	"time"
)

// Repository defines the storage interface for slots.
type Repository interface {
	// CreateSlot adds a slot and sets its ID.
	CreateSlot(ctx context.Context, slot *Slot) error

	// CreateSlots adds several slots atomically and sets their IDs.
	CreateSlots(ctx context.Context, slots []*Slot) error

	// GetSlot retrieves a slot by ID.
	// Returns ErrSlotNotFound if it does not exist.
	GetSlot(ctx context.Context, id int64) (*Slot, error)

	// DeleteSlot removes a slot.
	// Returns ErrSlotNotFound if it does not exist.
	DeleteSlot(ctx context.Context, id int64) error

	// ListSlotsInRange returns the slots overlapping [start, end), ordered by start.
	ListSlotsInRange(ctx context.Context, start, end time.Time) ([]*Slot, error)

	// ListAllSlots returns every slot, ordered by ID.
	ListAllSlots(ctx context.Context) ([]*Slot, error)

	// Close releases any resources held by the repository.
	Close() error
}
