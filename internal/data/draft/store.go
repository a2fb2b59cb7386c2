// Package draft persists the in-progress booking between wizard
// steps. The store is a whole-record slot: load, overwrite, clear.
// There are no partial updates and no locking; each draft id has a
// single writer by construction.
package draft

import (
	"context"

	"github.com/adityaraj161616/Nirmalaya/internal/data/entity"

	"github.com/google/uuid"
)

// Store is injected into the booking service so steps can be unit
// tested without a real storage backend.
type Store interface {
	// Load returns the draft, or (nil, nil) when absent
	Load(ctx context.Context, id uuid.UUID) (*entity.BookingDraft, error)
	// Save overwrites the whole draft record
	Save(ctx context.Context, id uuid.UUID, d *entity.BookingDraft) error
	// Clear removes the draft; clearing an absent draft is not an error
	Clear(ctx context.Context, id uuid.UUID) error
}
