//go:build integration
// +build integration

package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"sprintpulse/internal/models"
	"sprintpulse/internal/repository"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createTestRepository(ctx context.Context, t *testing.T, owner, name string) *models.Repository {
	t.Helper()

	repoRepo := repository.NewRepoRepository(db, trmpgx.DefaultCtxGetter, retrier)
	tracked := &models.Repository{
		OwnerName:            owner,
		RepoName:             name,
		SprintStartDayOfWeek: int(time.Saturday),
		SprintDurationWeeks:  1,
		TrackingStartDate:    time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repoRepo.Create(ctx, tracked))
	return tracked
}

func TestCollaboratorRepository(t *testing.T) {
	ctx := context.Background()
	trManager := manager.Must(trmpgx.NewDefaultFactory(db))

	repo := repository.NewCollaboratorRepository(
		db,
		trmpgx.DefaultCtxGetter,
		retrier,
	)

	_ = trManager.Do(ctx, func(ctx context.Context) error {
		tracked := createTestRepository(ctx, t, "acme", "collab-test")

		alice := &models.Collaborator{
			RepositoryID: tracked.ID,
			UserName:     "alice",
		}

		t.Run("Create", func(t *testing.T) {
			err := repo.Create(ctx, alice)
			require.NoError(t, err)
			require.NotEqual(t, uuid.Nil, alice.ID)
		})

		t.Run("Create duplicate username", func(t *testing.T) {
			err := repo.Create(ctx, &models.Collaborator{
				RepositoryID: tracked.ID,
				UserName:     "alice",
			})
			require.ErrorIs(t, err, repository.ErrDuplicate)
		})

		t.Run("GetByID", func(t *testing.T) {
			actual, err := repo.GetByID(ctx, alice.ID)
			require.NoError(t, err)
			require.Equal(t, alice, actual)
		})

		t.Run("GetByUserName", func(t *testing.T) {
			actual, err := repo.GetByUserName(ctx, tracked.ID, "alice")
			require.NoError(t, err)
			require.Equal(t, alice, actual)
		})

		t.Run("GetByUserName not found", func(t *testing.T) {
			_, err := repo.GetByUserName(ctx, tracked.ID, "ghost")
			require.ErrorIs(t, err, repository.ErrNotFound)
		})

		t.Run("Track and list", func(t *testing.T) {
			err := repo.Track(ctx, tracked.ID, alice.ID)
			require.NoError(t, err)

			// Tracking again is a no-op, not an error.
			err = repo.Track(ctx, tracked.ID, alice.ID)
			require.NoError(t, err)

			names, err := repo.ListTrackedUserNames(ctx, tracked.ID)
			require.NoError(t, err)
			require.Equal(t, []string{"alice"}, names)
		})

		t.Run("Untrack", func(t *testing.T) {
			err := repo.Untrack(ctx, tracked.ID, alice.ID)
			require.NoError(t, err)

			names, err := repo.ListTrackedUserNames(ctx, tracked.ID)
			require.NoError(t, err)
			require.Empty(t, names)
		})

		t.Run("Untrack not tracked", func(t *testing.T) {
			err := repo.Untrack(ctx, tracked.ID, alice.ID)
			require.ErrorIs(t, err, repository.ErrNotFound)
		})

		return fmt.Errorf("error for rollback")
	})
}
