//go:generate mockgen -source=repo_service.go -destination=../mocks/repo_service.go -package=mocks .

package service

import (
	"context"
	"errors"
	"time"

	"sprintpulse/internal/models"
	"sprintpulse/internal/repository"
	"sprintpulse/internal/sprint"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RepoAdminRepository interface {
	// Создать репозиторий
	Create(ctx context.Context, repo *models.Repository) error

	// Получить репозиторий по ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Repository, error)

	// Все репозитории
	List(ctx context.Context) ([]*models.Repository, error)

	// Обновить настройки спринтов
	UpdateSprintSettings(ctx context.Context, id uuid.UUID, startDayOfWeek, durationWeeks int) error
}

type CollaboratorAdminRepository interface {
	CollaboratorRepository

	// Отметить коллаборатора отслеживаемым
	Track(ctx context.Context, repositoryID, collaboratorID uuid.UUID) error

	// Убрать коллаборатора из отслеживаемых
	Untrack(ctx context.Context, repositoryID, collaboratorID uuid.UUID) error
}

// RepoService manages repository settings and the tracked-collaborator
// scope that sync and reporting filter by.
type RepoService struct {
	repoRepo   RepoAdminRepository
	collabRepo CollaboratorAdminRepository

	log *zap.Logger
}

func NewRepoService(repoRepo RepoAdminRepository, collabRepo CollaboratorAdminRepository, log *zap.Logger) *RepoService {
	return &RepoService{
		repoRepo:   repoRepo,
		collabRepo: collabRepo,
		log:        log,
	}
}

// Create validates the sprint settings by building a calculator from
// them, then persists the repository.
func (s *RepoService) Create(ctx context.Context, repo *models.Repository) error {
	if _, err := sprint.NewCalculator(sprint.Config{
		StartWeekday:  time.Weekday(repo.SprintStartDayOfWeek),
		DurationWeeks: repo.SprintDurationWeeks,
		BaseDate:      repo.TrackingStartDate,
	}); err != nil {
		return err
	}

	if err := s.repoRepo.Create(ctx, repo); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.log.Warn("repository already tracked",
				zap.String("owner", repo.OwnerName),
				zap.String("repo", repo.RepoName),
			)
			return ErrRepositoryExists
		}
		s.log.Error("failed to create repository",
			zap.Error(err),
			zap.String("owner", repo.OwnerName),
			zap.String("repo", repo.RepoName),
		)
		return err
	}

	s.log.Info("repository created",
		zap.String("repository_id", repo.ID.String()),
		zap.String("owner", repo.OwnerName),
		zap.String("repo", repo.RepoName),
	)

	return nil
}

func (s *RepoService) List(ctx context.Context) ([]*models.Repository, error) {
	return s.repoRepo.List(ctx)
}

// UpdateSprintSettings changes the grid for future syncs; sprint numbers
// already written on issues stay as they are.
func (s *RepoService) UpdateSprintSettings(ctx context.Context, id uuid.UUID, startDayOfWeek, durationWeeks int) error {
	repo, err := s.repoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if _, err := sprint.NewCalculator(sprint.Config{
		StartWeekday:  time.Weekday(startDayOfWeek),
		DurationWeeks: durationWeeks,
		BaseDate:      repo.TrackingStartDate,
	}); err != nil {
		return err
	}

	return s.repoRepo.UpdateSprintSettings(ctx, id, startDayOfWeek, durationWeeks)
}

// TrackCollaborator puts a username in the repository's reporting
// scope, creating the collaborator row if sync has not seen it yet.
func (s *RepoService) TrackCollaborator(ctx context.Context, repositoryID uuid.UUID, userName string) error {
	if _, err := s.repoRepo.GetByID(ctx, repositoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
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
		return err
	}

	return s.collabRepo.Track(ctx, repositoryID, collab.ID)
}

func (s *RepoService) UntrackCollaborator(ctx context.Context, repositoryID uuid.UUID, userName string) error {
	collab, err := s.collabRepo.GetByUserName(ctx, repositoryID, userName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.collabRepo.Untrack(ctx, repositoryID, collab.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	return nil
}
