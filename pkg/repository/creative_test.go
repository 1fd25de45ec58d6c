package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"

	"github.com/buyops-dev/creative-relay/pkg/domain/interfaces"
	"github.com/buyops-dev/creative-relay/pkg/domain/model"
	"github.com/buyops-dev/creative-relay/pkg/domain/types"
	"github.com/buyops-dev/creative-relay/pkg/repository/firestore"
	"github.com/buyops-dev/creative-relay/pkg/repository/memory"
)

func newTestCreative() *model.Creative {
	return model.NewCreative("U0BUYER", "Alice",
		"C0REVIEW",
		[]string{
			"https://files.slack.com/files-pri/T000-F001/download/banner.png",
			"https://files.slack.com/files-pri/T000-F002/download/square.png",
		},
		"Summer campaign banner",
		"1704067200.000100",
	)
}

func runCreativeRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create persists a pending creative", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Creative().Create(ctx, newTestCreative())
		gt.NoError(t, err).Required()

		gt.NoError(t, created.ID.Validate())
		gt.Value(t, created.Status).Equal(types.CreativeStatusPending)
		gt.Bool(t, created.CreatedAt.IsZero()).False()
		gt.Bool(t, created.UpdatedAt.IsZero()).False()
	})

	t.Run("Create rejects an invalid creative", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		c := newTestCreative()
		c.Images = nil
		_, err := repo.Creative().Create(ctx, c)
		gt.Value(t, err).NotNil()
	})

	t.Run("Get retrieves what Create stored", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Creative().Create(ctx, newTestCreative())
		gt.NoError(t, err).Required()

		retrieved, err := repo.Creative().Get(ctx, created.ID)
		gt.NoError(t, err).Required()

		gt.Value(t, retrieved.ID).Equal(created.ID)
		gt.Value(t, retrieved.SubmitterID).Equal(created.SubmitterID)
		gt.Value(t, retrieved.SubmitterName).Equal(created.SubmitterName)
		gt.Value(t, retrieved.ReviewChannelID).Equal(created.ReviewChannelID)
		gt.Array(t, retrieved.Images).Equal(created.Images)
		gt.Value(t, retrieved.Description).Equal(created.Description)
		gt.Value(t, retrieved.SourceMessageTS).Equal(created.SourceMessageTS)
		gt.Value(t, retrieved.Status).Equal(types.CreativeStatusPending)
	})

	t.Run("Get returns not found for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Creative().Get(ctx, types.NewCreativeID())
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("Decide transitions pending to approved", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Creative().Create(ctx, newTestCreative())
		gt.NoError(t, err).Required()

		decided, err := repo.Creative().Decide(ctx, created.ID, types.CreativeStatusApproved)
		gt.NoError(t, err).Required()
		gt.Value(t, decided.Status).Equal(types.CreativeStatusApproved)
		gt.Bool(t, decided.UpdatedAt.Before(created.UpdatedAt)).False()

		retrieved, err := repo.Creative().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.Status).Equal(types.CreativeStatusApproved)
	})

	t.Run("Decide transitions pending to rejected", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Creative().Create(ctx, newTestCreative())
		gt.NoError(t, err).Required()

		decided, err := repo.Creative().Decide(ctx, created.ID, types.CreativeStatusRejected)
		gt.NoError(t, err).Required()
		gt.Value(t, decided.Status).Equal(types.CreativeStatusRejected)
	})

	t.Run("Decide refuses a second decision", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Creative().Create(ctx, newTestCreative())
		gt.NoError(t, err).Required()

		_, err = repo.Creative().Decide(ctx, created.ID, types.CreativeStatusApproved)
		gt.NoError(t, err).Required()

		_, err = repo.Creative().Decide(ctx, created.ID, types.CreativeStatusRejected)
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, interfaces.ErrAlreadyDecided)).True()

		// First decision wins
		retrieved, err := repo.Creative().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.Status).Equal(types.CreativeStatusApproved)
	})

	t.Run("Decide refuses a non-final status", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Creative().Create(ctx, newTestCreative())
		gt.NoError(t, err).Required()

		_, err = repo.Creative().Decide(ctx, created.ID, types.CreativeStatusPending)
		gt.Value(t, err).NotNil()
	})

	t.Run("Decide returns not found for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Creative().Decide(ctx, types.NewCreativeID(), types.CreativeStatusApproved)
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("ListByStatus filters by status", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.Creative().Create(ctx, newTestCreative())
		gt.NoError(t, err).Required()
		second, err := repo.Creative().Create(ctx, newTestCreative())
		gt.NoError(t, err).Required()
		third, err := repo.Creative().Create(ctx, newTestCreative())
		gt.NoError(t, err).Required()

		_, err = repo.Creative().Decide(ctx, second.ID, types.CreativeStatusApproved)
		gt.NoError(t, err).Required()

		pending, err := repo.Creative().ListByStatus(ctx, types.CreativeStatusPending)
		gt.NoError(t, err).Required()
		gt.Array(t, pending).Length(2)
		pendingIDs := []types.CreativeID{pending[0].ID, pending[1].ID}
		gt.Array(t, pendingIDs).Has(first.ID)
		gt.Array(t, pendingIDs).Has(third.ID)

		approved, err := repo.Creative().ListByStatus(ctx, types.CreativeStatusApproved)
		gt.NoError(t, err).Required()
		gt.Array(t, approved).Length(1)
		gt.Value(t, approved[0].ID).Equal(second.ID)

		rejected, err := repo.Creative().ListByStatus(ctx, types.CreativeStatusRejected)
		gt.NoError(t, err).Required()
		gt.Array(t, rejected).Length(0)
	})
}

func TestCreativeRepository_Memory(t *testing.T) {
	runCreativeRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestCreativeRepository_Firestore(t *testing.T) {
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("FIRESTORE_PROJECT_ID not set")
	}

	runCreativeRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		repo, err := firestore.New(context.Background(), projectID, os.Getenv("FIRESTORE_DATABASE_ID"),
			firestore.WithCollectionPrefix("test-"+uuid.NewString()))
		gt.NoError(t, err).Required()
		t.Cleanup(func() {
			gt.NoError(t, repo.Close())
		})
		return repo
	})
}
