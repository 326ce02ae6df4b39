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

func TestRepoRepository(t *testing.T) {
	ctx := context.Background()

	trManager := manager.Must(trmpgx.NewDefaultFactory(db))

	repo := repository.NewRepoRepository(
		db,
		trmpgx.DefaultCtxGetter,
		retrier,
	)

	_ = trManager.Do(ctx, func(ctx context.Context) error {
		tracked := &models.Repository{
			OwnerName:            "acme",
			RepoName:             "rocket",
			SprintStartDayOfWeek: int(time.Saturday),
			SprintDurationWeeks:  1,
			TrackingStartDate:    time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC),
		}

		t.Run("Create", func(t *testing.T) {
			err := repo.Create(ctx, tracked)
			require.NoError(t, err)
			require.NotEqual(t, uuid.Nil, tracked.ID)
		})

		t.Run("Create duplicate", func(t *testing.T) {
			dup := &models.Repository{
				OwnerName:            "acme",
				RepoName:             "rocket",
				SprintStartDayOfWeek: int(time.Monday),
				SprintDurationWeeks:  2,
				TrackingStartDate:    tracked.TrackingStartDate,
			}
			err := repo.Create(ctx, dup)
			require.ErrorIs(t, err, repository.ErrDuplicate)
		})

		t.Run("GetByID", func(t *testing.T) {
			actual, err := repo.GetByID(ctx, tracked.ID)
			require.NoError(t, err)
			require.Equal(t, tracked.ID, actual.ID)
			require.Equal(t, tracked.OwnerName, actual.OwnerName)
			require.Equal(t, tracked.RepoName, actual.RepoName)
			require.Equal(t, tracked.SprintStartDayOfWeek, actual.SprintStartDayOfWeek)
			require.Equal(t, tracked.SprintDurationWeeks, actual.SprintDurationWeeks)
			require.True(t, actual.TrackingStartDate.Equal(tracked.TrackingStartDate))
		})

		t.Run("List", func(t *testing.T) {
			repos, err := repo.List(ctx)
			require.NoError(t, err)
			require.Len(t, repos, 1)
			require.Equal(t, tracked.ID, repos[0].ID)
		})

		t.Run("UpdateSprintSettings", func(t *testing.T) {
			err := repo.UpdateSprintSettings(ctx, tracked.ID, int(time.Monday), 2)
			require.NoError(t, err)

			actual, err := repo.GetByID(ctx, tracked.ID)
			require.NoError(t, err)
			require.Equal(t, int(time.Monday), actual.SprintStartDayOfWeek)
			require.Equal(t, 2, actual.SprintDurationWeeks)
		})

		t.Run("UpdateSprintSettings not found", func(t *testing.T) {
			err := repo.UpdateSprintSettings(ctx, uuid.New(), int(time.Monday), 1)
			require.ErrorIs(t, err, repository.ErrNotFound)
		})

		t.Run("Not found", func(t *testing.T) {
			_, err := repo.GetByID(ctx, uuid.New())
			require.ErrorIs(t, err, repository.ErrNotFound)
		})

		return fmt.Errorf("error for rollback")
	})
}
