package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/buyops-dev/creative-relay/pkg/domain/interfaces"
	"github.com/buyops-dev/creative-relay/pkg/domain/model"
	"github.com/buyops-dev/creative-relay/pkg/domain/types"
)

type creativeRepository struct {
	mu        sync.RWMutex
	creatives map[types.CreativeID]*model.Creative
}

func newCreativeRepository() *creativeRepository {
	return &creativeRepository{
		creatives: make(map[types.CreativeID]*model.Creative),
	}
}

// copyCreative creates a deep copy of a creative
func copyCreative(c *model.Creative) *model.Creative {
	images := make([]string, len(c.Images))
	copy(images, c.Images)

	return &model.Creative{
		ID:              c.ID,
		SubmitterID:     c.SubmitterID,
		SubmitterName:   c.SubmitterName,
		ReviewChannelID: c.ReviewChannelID,
		Images:          images,
		Description:     c.Description,
		SourceMessageTS: c.SourceMessageTS,
		Status:          c.Status,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (r *creativeRepository) Create(ctx context.Context, c *model.Creative) (*model.Creative, error) {
	if err := c.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid creative")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.creatives[c.ID]; exists {
		return nil, goerr.New("creative already exists", goerr.V("id", c.ID))
	}

	now := time.Now().UTC()
	created := copyCreative(c)
	created.Status = c.Status.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.creatives[created.ID] = created
	return copyCreative(created), nil
}

func (r *creativeRepository) Get(ctx context.Context, id types.CreativeID) (*model.Creative, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.creatives[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "creative not found", goerr.V("id", id))
	}

	return copyCreative(c), nil
}

func (r *creativeRepository) Decide(ctx context.Context, id types.CreativeID, to types.CreativeStatus) (*model.Creative, error) {
	if !to.Decided() {
		return nil, goerr.New("decision status must be approved or rejected", goerr.V("id", id), goerr.V("status", to))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, exists := r.creatives[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "creative not found", goerr.V("id", id))
	}

	if c.Status.Normalize().Decided() {
		return nil, goerr.Wrap(interfaces.ErrAlreadyDecided, "creative is already decided",
			goerr.V("id", id),
			goerr.V("status", c.Status),
		)
	}

	c.Status = to
	c.UpdatedAt = time.Now().UTC()

	return copyCreative(c), nil
}

func (r *creativeRepository) ListByStatus(ctx context.Context, st types.CreativeStatus) ([]*model.Creative, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var creatives []*model.Creative
	for _, c := range r.creatives {
		if c.Status.Normalize() == st {
			creatives = append(creatives, copyCreative(c))
		}
	}

	// Newest first, matching the Firestore query order
	sort.Slice(creatives, func(i, j int) bool {
		return creatives[i].CreatedAt.After(creatives[j].CreatedAt)
	})

	return creatives, nil
}
