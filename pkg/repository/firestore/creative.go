package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/buyops-dev/creative-relay/pkg/domain/interfaces"
	"github.com/buyops-dev/creative-relay/pkg/domain/model"
	"github.com/buyops-dev/creative-relay/pkg/domain/types"
)

type creativeRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newCreativeRepository(client *firestore.Client) *creativeRepository {
	return &creativeRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *creativeRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_creatives"
	}
	return "creatives"
}

func (r *creativeRepository) Create(ctx context.Context, c *model.Creative) (*model.Creative, error) {
	if err := c.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid creative")
	}

	now := time.Now().UTC()
	created := *c
	created.Status = c.Status.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create creative", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *creativeRepository) Get(ctx context.Context, id types.CreativeID) (*model.Creative, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "creative not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get creative", goerr.V("id", id))
	}

	var c model.Creative
	if err := docSnap.DataTo(&c); err != nil {
		return nil, goerr.Wrap(err, "failed to decode creative", goerr.V("id", id))
	}
	c.Status = c.Status.Normalize()

	return &c, nil
}

// Decide transitions a pending creative to the given final status inside a
// transaction, so two racing decisions cannot both win.
func (r *creativeRepository) Decide(ctx context.Context, id types.CreativeID, to types.CreativeStatus) (*model.Creative, error) {
	if !to.Decided() {
		return nil, goerr.New("decision status must be approved or rejected", goerr.V("id", id), goerr.V("status", to))
	}

	docRef := r.client.Collection(r.collection()).Doc(id.String())

	var decided model.Creative
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(interfaces.ErrNotFound, "creative not found", goerr.V("id", id))
			}
			return goerr.Wrap(err, "failed to get creative", goerr.V("id", id))
		}

		if err := doc.DataTo(&decided); err != nil {
			return goerr.Wrap(err, "failed to decode creative", goerr.V("id", id))
		}

		if decided.Status.Normalize().Decided() {
			return goerr.Wrap(interfaces.ErrAlreadyDecided, "creative is already decided",
				goerr.V("id", id),
				goerr.V("status", decided.Status),
			)
		}

		decided.Status = to
		decided.UpdatedAt = time.Now().UTC()
		return tx.Set(docRef, &decided)
	})
	if err != nil {
		return nil, err
	}

	return &decided, nil
}

func (r *creativeRepository) ListByStatus(ctx context.Context, st types.CreativeStatus) ([]*model.Creative, error) {
	iter := r.client.Collection(r.collection()).
		Where("Status", "==", st.String()).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var creatives []*model.Creative
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate creatives", goerr.V("status", st))
		}

		var c model.Creative
		if err := docSnap.DataTo(&c); err != nil {
			return nil, goerr.Wrap(err, "failed to decode creative", goerr.V("doc_id", docSnap.Ref.ID))
		}
		c.Status = c.Status.Normalize()

		creatives = append(creatives, &c)
	}

	return creatives, nil
}
