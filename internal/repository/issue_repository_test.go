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

func createTestCollaborator(ctx context.Context, t *testing.T, repositoryID uuid.UUID, userName string) *models.Collaborator {
	t.Helper()

	collabRepo := repository.NewCollaboratorRepository(db, trmpgx.DefaultCtxGetter, retrier)
	collab := &models.Collaborator{
		RepositoryID: repositoryID,
		UserName:     userName,
	}
	require.NoError(t, collabRepo.Create(ctx, collab))
	return collab
}

func TestIssueRepository(t *testing.T) {
	ctx := context.Background()
	trManager := manager.Must(trmpgx.NewDefaultFactory(db))

	repo := repository.NewIssueRepository(
		db,
		trmpgx.DefaultCtxGetter,
		retrier,
	)

	_ = trManager.Do(ctx, func(ctx context.Context) error {
		tracked := createTestRepository(ctx, t, "acme", "issue-test")
		alice := createTestCollaborator(ctx, t, tracked.ID, "alice")
		bob := createTestCollaborator(ctx, t, tracked.ID, "bob")

		issue := &models.Issue{
			RepositoryID:         tracked.ID,
			TrackerNumber:        7,
			Title:                "first title",
			Body:                 "body",
			State:                models.IssueStateOpen,
			AuthorCollaboratorID: alice.ID,
			SprintNumber:         3,
			TrackerCreatedAt:     time.Date(2024, time.January, 20, 10, 0, 0, 0, time.UTC),
		}

		t.Run("Upsert inserts", func(t *testing.T) {
			err := repo.Upsert(ctx, issue)
			require.NoError(t, err)
			require.NotEqual(t, uuid.Nil, issue.ID)
			require.Equal(t, 3, issue.SprintNumber)
		})

		t.Run("Upsert keeps sprint number", func(t *testing.T) {
			closedAt := time.Date(2024, time.January, 25, 9, 0, 0, 0, time.UTC)
			update := &models.Issue{
				RepositoryID:           tracked.ID,
				TrackerNumber:          7,
				Title:                  "renamed title",
				Body:                   "new body",
				State:                  models.IssueStateClosed,
				AuthorCollaboratorID:   alice.ID,
				AssigneeCollaboratorID: &bob.ID,
				SprintNumber:           99,
				TrackerCreatedAt:       issue.TrackerCreatedAt,
				TrackerClosedAt:        &closedAt,
			}

			err := repo.Upsert(ctx, update)
			require.NoError(t, err)
			require.Equal(t, issue.ID, update.ID)
			// The stored sprint number wins over the recomputed one.
			require.Equal(t, 3, update.SprintNumber)

			actual, err := repo.GetByID(ctx, issue.ID)
			require.NoError(t, err)
			require.Equal(t, "renamed title", actual.Title)
			require.Equal(t, models.IssueStateClosed, actual.State)
			require.Equal(t, 3, actual.SprintNumber)
			require.NotNil(t, actual.AssigneeCollaboratorID)
			require.Equal(t, bob.ID, *actual.AssigneeCollaboratorID)
			require.NotNil(t, actual.TrackerClosedAt)
			require.True(t, actual.TrackerClosedAt.Equal(closedAt))
		})

		t.Run("ListByRepository orders by tracker number", func(t *testing.T) {
			earlier := &models.Issue{
				RepositoryID:         tracked.ID,
				TrackerNumber:        2,
				Title:                "earlier",
				State:                models.IssueStateOpen,
				AuthorCollaboratorID: bob.ID,
				SprintNumber:         1,
				TrackerCreatedAt:     time.Date(2024, time.January, 8, 10, 0, 0, 0, time.UTC),
			}
			require.NoError(t, repo.Upsert(ctx, earlier))

			issues, err := repo.ListByRepository(ctx, tracked.ID)
			require.NoError(t, err)
			require.Len(t, issues, 2)
			require.Equal(t, 2, issues[0].TrackerNumber)
			require.Equal(t, 7, issues[1].TrackerNumber)
		})

		t.Run("GetByID not found", func(t *testing.T) {
			_, err := repo.GetByID(ctx, uuid.New())
			require.ErrorIs(t, err, repository.ErrNotFound)
		})

		return fmt.Errorf("error for rollback")
	})
}
