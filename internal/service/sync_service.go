//go:generate mockgen -source=sync_service.go -destination=../mocks/sync_service.go -package=mocks .

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"sprintpulse/internal/models"
	"sprintpulse/internal/repository"
	"sprintpulse/internal/sprint"
	"sprintpulse/internal/tracker"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RepoRepository interface {
	// Получить репозиторий по ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Repository, error)
}

type CollaboratorRepository interface {
	// Создать коллаборатора
	Create(ctx context.Context, collab *models.Collaborator) error

	// Найти коллаборатора по имени в рамках репозитория
	GetByUserName(ctx context.Context, repositoryID uuid.UUID, userName string) (*models.Collaborator, error)

	// Список отслеживаемых имён; пустой список - отслеживаются все
	ListTrackedUserNames(ctx context.Context, repositoryID uuid.UUID) ([]string, error)
}

type IssueRepository interface {
	// Вставить или обновить issue по ключу (repository_id, tracker_number)
	Upsert(ctx context.Context, issue *models.Issue) error

	// Все issues репозитория по возрастанию номера
	ListByRepository(ctx context.Context, repositoryID uuid.UUID) ([]*models.Issue, error)
}

type SyncMetadataRepository interface {
	// Метаданные последней синхронизации
	Get(ctx context.Context, repositoryID uuid.UUID) (*models.SyncMetadata, error)

	// Записать время последней синхронизации
	Upsert(ctx context.Context, repositoryID uuid.UUID, lastSyncAt time.Time) error
}

type TrackerClient interface {
	// Список issues репозитория, при since != nil - только обновлённые после
	ListIssues(ctx context.Context, owner, repo string, since *time.Time) ([]*tracker.Issue, error)

	// Смерженные PR, закрывшие issue
	ListLinkedMergedPullRequests(ctx context.Context, owner, repo string, issueNumber int) ([]*tracker.LinkedPullRequest, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type TxManagerStub struct{}

func (TxManagerStub) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// SyncResult is what one sync run reports back to the caller.
type SyncResult struct {
	Synced       int
	Skipped      int
	FullSync     bool
	LastSyncedAt time.Time
}

// SyncService pulls issues from the tracker, tags each with its sprint
// number and upserts them. Runs for the same repository are serialized;
// different repositories sync independently.
type SyncService struct {
	repoRepo     RepoRepository
	collabRepo   CollaboratorRepository
	issueRepo    IssueRepository
	syncMetaRepo SyncMetadataRepository

	tracker   TrackerClient
	trManager TxManager

	log *zap.Logger

	mu        sync.Mutex
	repoLocks map[uuid.UUID]*sync.Mutex

	now func() time.Time
}

func NewSyncService(
	repoRepo RepoRepository,
	collabRepo CollaboratorRepository,
	issueRepo IssueRepository,
	syncMetaRepo SyncMetadataRepository,
	trackerClient TrackerClient,
	trManager TxManager,
	log *zap.Logger,
) *SyncService {
	return &SyncService{
		repoRepo:     repoRepo,
		collabRepo:   collabRepo,
		issueRepo:    issueRepo,
		syncMetaRepo: syncMetaRepo,
		tracker:      trackerClient,
		trManager:    trManager,
		log:          log,
		repoLocks:    make(map[uuid.UUID]*sync.Mutex),
		now:          time.Now,
	}
}

// Run performs one full or differential sync for the repository. A full
// sync happens when forced or when the repository has never synced.
func (s *SyncService) Run(ctx context.Context, repositoryID uuid.UUID, force bool) (*SyncResult, error) {
	lock := s.repoLock(repositoryID)
	lock.Lock()
	defer lock.Unlock()

	repo, err := s.repoRepo.GetByID(ctx, repositoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to load repository",
			zap.Error(err),
			zap.String("repository_id", repositoryID.String()),
		)
		return nil, err
	}

	var since *time.Time
	fullSync := force
	meta, err := s.syncMetaRepo.Get(ctx, repositoryID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		fullSync = true
	case err != nil:
		s.log.Error("failed to load sync metadata",
			zap.Error(err),
			zap.String("repository_id", repositoryID.String()),
		)
		return nil, err
	case !fullSync:
		t := meta.LastSyncAt
		since = &t
	}

	calc, err := sprint.NewCalculator(sprint.Config{
		StartWeekday:  time.Weekday(repo.SprintStartDayOfWeek),
		DurationWeeks: repo.SprintDurationWeeks,
		BaseDate:      repo.TrackingStartDate,
	})
	if err != nil {
		return nil, fmt.Errorf("sprint config for %s/%s: %w", repo.OwnerName, repo.RepoName, err)
	}

	trackedNames, err := s.collabRepo.ListTrackedUserNames(ctx, repositoryID)
	if err != nil {
		s.log.Error("failed to load tracked collaborators",
			zap.Error(err),
			zap.String("repository_id", repositoryID.String()),
		)
		return nil, err
	}
	trackedSet := make(map[string]bool, len(trackedNames))
	for _, name := range trackedNames {
		trackedSet[name] = true
	}

	issues, err := s.tracker.ListIssues(ctx, repo.OwnerName, repo.RepoName, since)
	if err != nil {
		s.log.Error("failed to fetch issues from tracker",
			zap.Error(err),
			zap.String("repository_id", repositoryID.String()),
		)
		return nil, err
	}

	// Collaborator resolutions are cached for this run only; a
	// process-wide cache would go stale across concurrent runs.
	cache := make(map[string]uuid.UUID)

	result := &SyncResult{FullSync: fullSync}
	for _, item := range issues {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if len(trackedSet) > 0 && !trackedSet[item.Creator] {
			result.Skipped++
			continue
		}

		if err := s.syncIssue(ctx, repo, calc, cache, item); err != nil {
			s.log.Error("failed to sync issue",
				zap.Error(err),
				zap.String("repository_id", repositoryID.String()),
				zap.Int("tracker_number", item.Number),
			)
			return nil, fmt.Errorf("sync issue #%d: %w", item.Number, err)
		}
		result.Synced++
	}

	result.LastSyncedAt = s.now()
	if err := s.syncMetaRepo.Upsert(ctx, repositoryID, result.LastSyncedAt); err != nil {
		s.log.Error("failed to update sync metadata",
			zap.Error(err),
			zap.String("repository_id", repositoryID.String()),
		)
		return nil, err
	}

	s.log.Info("sync completed",
		zap.String("repository_id", repositoryID.String()),
		zap.Bool("full_sync", result.FullSync),
		zap.Int("synced", result.Synced),
		zap.Int("skipped", result.Skipped),
	)

	return result, nil
}

// syncIssue resolves both collaborators and upserts the issue in one
// transaction. The sprint number is derived from the tracker creation
// time; the upsert keeps the stored number for already-known issues.
func (s *SyncService) syncIssue(
	ctx context.Context,
	repo *models.Repository,
	calc *sprint.Calculator,
	cache map[string]uuid.UUID,
	item *tracker.Issue,
) error {
	return s.trManager.Do(ctx, func(ctx context.Context) error {
		authorID, err := s.resolveCollaborator(ctx, cache, repo.ID, item.Creator)
		if err != nil {
			return fmt.Errorf("resolve author %q: %w", item.Creator, err)
		}

		var assigneeID *uuid.UUID
		if item.Assignee != "" {
			id, err := s.resolveCollaborator(ctx, cache, repo.ID, item.Assignee)
			if err != nil {
				return fmt.Errorf("resolve assignee %q: %w", item.Assignee, err)
			}
			assigneeID = &id
		}

		issue := &models.Issue{
			RepositoryID:           repo.ID,
			TrackerNumber:          item.Number,
			Title:                  item.Title,
			Body:                   item.Body,
			State:                  models.IssueState(item.State),
			AuthorCollaboratorID:   authorID,
			AssigneeCollaboratorID: assigneeID,
			SprintNumber:           calc.Number(item.CreatedAt),
			TrackerCreatedAt:       item.CreatedAt,
			TrackerClosedAt:        item.ClosedAt,
		}

		return s.issueRepo.Upsert(ctx, issue)
	})
}

func (s *SyncService) resolveCollaborator(ctx context.Context, cache map[string]uuid.UUID, repositoryID uuid.UUID, userName string) (uuid.UUID, error) {
	if id, ok := cache[userName]; ok {
		return id, nil
	}

	collab, err := s.collabRepo.GetByUserName(ctx, repositoryID, userName)
	if errors.Is(err, repository.ErrNotFound) {
		collab = &models.Collaborator{
			RepositoryID: repositoryID,
			UserName:     userName,
		}
		err = s.collabRepo.Create(ctx, collab)
	}
	if err != nil {
		return uuid.Nil, err
	}

	cache[userName] = collab.ID
	return collab.ID, nil
}

// ComputeSprint answers "which sprint is offset periods away from the
// one containing at" using the repository's sprint settings.
func (s *SyncService) ComputeSprint(ctx context.Context, repositoryID uuid.UUID, at time.Time, offset int) (*sprint.Sprint, error) {
	repo, err := s.repoRepo.GetByID(ctx, repositoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	calc, err := sprint.NewCalculator(sprint.Config{
		StartWeekday:  time.Weekday(repo.SprintStartDayOfWeek),
		DurationWeeks: repo.SprintDurationWeeks,
		BaseDate:      repo.TrackingStartDate,
	})
	if err != nil {
		return nil, err
	}

	sp := calc.WithOffset(at, offset)
	return &sp, nil
}

func (s *SyncService) repoLock(repositoryID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.repoLocks[repositoryID]
	if !ok {
		lock = &sync.Mutex{}
		s.repoLocks[repositoryID] = lock
	}
	return lock
}
