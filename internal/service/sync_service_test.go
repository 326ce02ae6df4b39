package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sprintpulse/internal/mocks"
	"sprintpulse/internal/models"
	"sprintpulse/internal/repository"
	"sprintpulse/internal/service"
	"sprintpulse/internal/tracker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type syncMocks struct {
	repoRepo     *mocks.MockRepoRepository
	collabRepo   *mocks.MockCollaboratorRepository
	issueRepo    *mocks.MockIssueRepository
	syncMetaRepo *mocks.MockSyncMetadataRepository
	trackerCli   *mocks.MockTrackerClient
}

func newSyncService(t *testing.T) (*service.SyncService, syncMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := syncMocks{
		repoRepo:     mocks.NewMockRepoRepository(ctrl),
		collabRepo:   mocks.NewMockCollaboratorRepository(ctrl),
		issueRepo:    mocks.NewMockIssueRepository(ctrl),
		syncMetaRepo: mocks.NewMockSyncMetadataRepository(ctrl),
		trackerCli:   mocks.NewMockTrackerClient(ctrl),
	}

	svc := service.NewSyncService(
		m.repoRepo,
		m.collabRepo,
		m.issueRepo,
		m.syncMetaRepo,
		m.trackerCli,
		service.TxManagerStub{},
		zap.NewNop(),
	)

	return svc, m
}

func testRepo() *models.Repository {
	return &models.Repository{
		ID:                   uuid.New(),
		OwnerName:            "acme",
		RepoName:             "rocket",
		SprintStartDayOfWeek: int(time.Saturday),
		SprintDurationWeeks:  1,
		TrackingStartDate:    time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC),
	}
}

// expectLazyCollaborator wires the not-found-then-create path for one
// username and returns the ID the created row gets.
func expectLazyCollaborator(m syncMocks, repoID uuid.UUID, userName string) uuid.UUID {
	id := uuid.New()
	m.collabRepo.EXPECT().
		GetByUserName(gomock.Any(), repoID, userName).
		Return(nil, repository.ErrNotFound)
	m.collabRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, collab *models.Collaborator) error {
			collab.ID = id
			return nil
		})
	return id
}

func TestSyncService_Run(t *testing.T) {
	t.Run("repository not found", func(t *testing.T) {
		svc, m := newSyncService(t)
		repoID := uuid.New()

		m.repoRepo.EXPECT().
			GetByID(gomock.Any(), repoID).
			Return(nil, repository.ErrNotFound)

		_, err := svc.Run(context.Background(), repoID, false)
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("first sync is full", func(t *testing.T) {
		svc, m := newSyncService(t)
		repo := testRepo()
		closedAt := time.Date(2024, time.January, 18, 12, 0, 0, 0, time.UTC)

		m.repoRepo.EXPECT().GetByID(gomock.Any(), repo.ID).Return(repo, nil)
		m.syncMetaRepo.EXPECT().Get(gomock.Any(), repo.ID).Return(nil, repository.ErrNotFound)
		m.collabRepo.EXPECT().ListTrackedUserNames(gomock.Any(), repo.ID).Return(nil, nil)
		m.trackerCli.EXPECT().
			ListIssues(gomock.Any(), "acme", "rocket", nil).
			Return([]*tracker.Issue{
				{
					Number:    1,
					Title:     "first",
					State:     "open",
					Creator:   "alice",
					CreatedAt: time.Date(2024, time.January, 8, 10, 0, 0, 0, time.UTC),
				},
				{
					Number:    2,
					Title:     "second",
					State:     "closed",
					Creator:   "bob",
					Assignee:  "alice",
					CreatedAt: time.Date(2024, time.January, 17, 10, 0, 0, 0, time.UTC),
					ClosedAt:  &closedAt,
				},
			}, nil)

		aliceID := expectLazyCollaborator(m, repo.ID, "alice")
		bobID := expectLazyCollaborator(m, repo.ID, "bob")

		var synced []*models.Issue
		m.issueRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, issue *models.Issue) error {
				synced = append(synced, issue)
				return nil
			}).
			Times(2)
		m.syncMetaRepo.EXPECT().Upsert(gomock.Any(), repo.ID, gomock.Any()).Return(nil)

		result, err := svc.Run(context.Background(), repo.ID, false)
		require.NoError(t, err)
		require.True(t, result.FullSync)
		require.Equal(t, 2, result.Synced)
		require.Zero(t, result.Skipped)
		require.False(t, result.LastSyncedAt.IsZero())

		require.Len(t, synced, 2)
		require.Equal(t, 1, synced[0].SprintNumber)
		require.Equal(t, aliceID, synced[0].AuthorCollaboratorID)
		require.Nil(t, synced[0].AssigneeCollaboratorID)

		// Alice is resolved once and served from the run cache after.
		require.Equal(t, 2, synced[1].SprintNumber)
		require.Equal(t, bobID, synced[1].AuthorCollaboratorID)
		require.NotNil(t, synced[1].AssigneeCollaboratorID)
		require.Equal(t, aliceID, *synced[1].AssigneeCollaboratorID)
		require.Equal(t, &closedAt, synced[1].TrackerClosedAt)
	})

	t.Run("differential sync passes last sync time", func(t *testing.T) {
		svc, m := newSyncService(t)
		repo := testRepo()
		lastSync := time.Date(2024, time.February, 1, 3, 0, 0, 0, time.UTC)

		m.repoRepo.EXPECT().GetByID(gomock.Any(), repo.ID).Return(repo, nil)
		m.syncMetaRepo.EXPECT().
			Get(gomock.Any(), repo.ID).
			Return(&models.SyncMetadata{RepositoryID: repo.ID, LastSyncAt: lastSync}, nil)
		m.collabRepo.EXPECT().ListTrackedUserNames(gomock.Any(), repo.ID).Return(nil, nil)
		m.trackerCli.EXPECT().
			ListIssues(gomock.Any(), "acme", "rocket", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, since *time.Time) ([]*tracker.Issue, error) {
				require.NotNil(t, since)
				require.True(t, since.Equal(lastSync))
				return nil, nil
			})
		m.syncMetaRepo.EXPECT().Upsert(gomock.Any(), repo.ID, gomock.Any()).Return(nil)

		result, err := svc.Run(context.Background(), repo.ID, false)
		require.NoError(t, err)
		require.False(t, result.FullSync)
		require.Zero(t, result.Synced)
	})

	t.Run("force makes the sync full", func(t *testing.T) {
		svc, m := newSyncService(t)
		repo := testRepo()

		m.repoRepo.EXPECT().GetByID(gomock.Any(), repo.ID).Return(repo, nil)
		m.syncMetaRepo.EXPECT().
			Get(gomock.Any(), repo.ID).
			Return(&models.SyncMetadata{RepositoryID: repo.ID, LastSyncAt: time.Now()}, nil)
		m.collabRepo.EXPECT().ListTrackedUserNames(gomock.Any(), repo.ID).Return(nil, nil)
		m.trackerCli.EXPECT().
			ListIssues(gomock.Any(), "acme", "rocket", nil).
			Return(nil, nil)
		m.syncMetaRepo.EXPECT().Upsert(gomock.Any(), repo.ID, gomock.Any()).Return(nil)

		result, err := svc.Run(context.Background(), repo.ID, true)
		require.NoError(t, err)
		require.True(t, result.FullSync)
	})

	t.Run("untracked creators are skipped", func(t *testing.T) {
		svc, m := newSyncService(t)
		repo := testRepo()

		m.repoRepo.EXPECT().GetByID(gomock.Any(), repo.ID).Return(repo, nil)
		m.syncMetaRepo.EXPECT().Get(gomock.Any(), repo.ID).Return(nil, repository.ErrNotFound)
		m.collabRepo.EXPECT().
			ListTrackedUserNames(gomock.Any(), repo.ID).
			Return([]string{"alice"}, nil)
		m.trackerCli.EXPECT().
			ListIssues(gomock.Any(), "acme", "rocket", nil).
			Return([]*tracker.Issue{
				{Number: 1, Creator: "bob", CreatedAt: time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)},
				{Number: 2, Creator: "alice", CreatedAt: time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC)},
			}, nil)

		expectLazyCollaborator(m, repo.ID, "alice")
		m.issueRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
		m.syncMetaRepo.EXPECT().Upsert(gomock.Any(), repo.ID, gomock.Any()).Return(nil)

		result, err := svc.Run(context.Background(), repo.ID, false)
		require.NoError(t, err)
		require.Equal(t, 1, result.Synced)
		require.Equal(t, 1, result.Skipped)
	})

	t.Run("cancellation stops between items", func(t *testing.T) {
		svc, m := newSyncService(t)
		repo := testRepo()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		m.repoRepo.EXPECT().GetByID(gomock.Any(), repo.ID).Return(repo, nil)
		m.syncMetaRepo.EXPECT().Get(gomock.Any(), repo.ID).Return(nil, repository.ErrNotFound)
		m.collabRepo.EXPECT().ListTrackedUserNames(gomock.Any(), repo.ID).Return(nil, nil)
		m.trackerCli.EXPECT().
			ListIssues(gomock.Any(), "acme", "rocket", nil).
			Return([]*tracker.Issue{
				{Number: 1, Creator: "alice", CreatedAt: time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)},
				{Number: 2, Creator: "alice", CreatedAt: time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC)},
			}, nil)

		expectLazyCollaborator(m, repo.ID, "alice")

		// The caller goes away while the first item is being written.
		// The second item must not be touched and the metadata must
		// not advance.
		m.issueRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *models.Issue) error {
				cancel()
				return nil
			})

		_, err := svc.Run(ctx, repo.ID, false)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("issue failure aborts the run", func(t *testing.T) {
		svc, m := newSyncService(t)
		repo := testRepo()

		m.repoRepo.EXPECT().GetByID(gomock.Any(), repo.ID).Return(repo, nil)
		m.syncMetaRepo.EXPECT().Get(gomock.Any(), repo.ID).Return(nil, repository.ErrNotFound)
		m.collabRepo.EXPECT().ListTrackedUserNames(gomock.Any(), repo.ID).Return(nil, nil)
		m.trackerCli.EXPECT().
			ListIssues(gomock.Any(), "acme", "rocket", nil).
			Return([]*tracker.Issue{
				{Number: 7, Creator: "alice", CreatedAt: time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)},
			}, nil)

		expectLazyCollaborator(m, repo.ID, "alice")
		m.issueRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		// Sync metadata must not advance when an item fails.
		_, err := svc.Run(context.Background(), repo.ID, false)
		require.Error(t, err)
		require.Contains(t, err.Error(), "sync issue #7")
	})
}

func TestSyncService_ComputeSprint(t *testing.T) {
	t.Run("repository not found", func(t *testing.T) {
		svc, m := newSyncService(t)
		repoID := uuid.New()

		m.repoRepo.EXPECT().
			GetByID(gomock.Any(), repoID).
			Return(nil, repository.ErrNotFound)

		_, err := svc.ComputeSprint(context.Background(), repoID, time.Now(), 0)
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("offset shifts the sprint", func(t *testing.T) {
		svc, m := newSyncService(t)
		repo := testRepo()
		at := time.Date(2024, time.January, 17, 15, 0, 0, 0, time.UTC)

		m.repoRepo.EXPECT().GetByID(gomock.Any(), repo.ID).Return(repo, nil).Times(2)

		current, err := svc.ComputeSprint(context.Background(), repo.ID, at, 0)
		require.NoError(t, err)
		require.Equal(t, 2, current.Number)
		require.True(t, current.IsCurrent)

		prev, err := svc.ComputeSprint(context.Background(), repo.ID, at, -1)
		require.NoError(t, err)
		require.Equal(t, 1, prev.Number)
		require.False(t, prev.IsCurrent)
	})
}
