package interfaces

import (
	"context"

	"github.com/buyops-dev/creative-relay/pkg/domain/model"
	"github.com/buyops-dev/creative-relay/pkg/domain/types"
)

// CreativeRepository persists creative review records
type CreativeRepository interface {
	// Create stores a new creative. Timestamps are assigned by the
	// repository; the stored record is returned.
	Create(ctx context.Context, creative *model.Creative) (*model.Creative, error)

	// Get returns the creative with the given ID, or an error wrapping
	// the ErrNotFound sentinel.
	Get(ctx context.Context, id types.CreativeID) (*model.Creative, error)

	// Decide applies the one-way status transition. It succeeds only if
	// the current status is pending and is applied atomically, so two
	// racing decisions cannot both win. Returns the updated record, or an
	// error wrapping ErrAlreadyDecided / ErrNotFound.
	Decide(ctx context.Context, id types.CreativeID, status types.CreativeStatus) (*model.Creative, error)

	// ListByStatus returns creatives with the given status, newest first.
	ListByStatus(ctx context.Context, status types.CreativeStatus) ([]*model.Creative, error)
}
