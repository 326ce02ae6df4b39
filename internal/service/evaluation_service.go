//go:generate mockgen -source=evaluation_service.go -destination=../mocks/evaluation_service.go -package=mocks .

package service

import (
	"context"
	"errors"
	"time"

	"sprintpulse/internal/ai"
	"sprintpulse/internal/models"
	"sprintpulse/internal/repository"
	"sprintpulse/internal/score"
	"sprintpulse/internal/tracker"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PullRequestRepository interface {
	// Вставить или обновить PR по ключу (repository_id, tracker_number)
	Upsert(ctx context.Context, pr *models.PullRequest) error
}

type EvaluationRepository interface {
	// Все оценки по issues репозитория
	ListByRepository(ctx context.Context, repositoryID uuid.UUID) ([]*models.Evaluation, error)

	// Частичные обновления по осям; одна ось никогда не трогает другую
	UpdateSpeed(ctx context.Context, issueID uuid.UUID, score int, grade string) error
	UpdateQuality(ctx context.Context, issueID uuid.UUID, score int, grade string, details *models.EvaluationDetails) error
	UpdateConsistency(ctx context.Context, issueID uuid.UUID, score int, grade string, details *models.EvaluationDetails) error
}

type CollaboratorReader interface {
	// Получить коллаборатора по ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Collaborator, error)
}

type AIEvaluator interface {
	// Оценка качества описания issue
	EvaluateQuality(ctx context.Context, in ai.QualityInput) (*ai.Result, error)

	// Оценка соответствия issue и закрывших его PR
	EvaluateConsistency(ctx context.Context, in ai.ConsistencyInput, prs []*tracker.LinkedPullRequest) (*ai.Result, error)
}

type Axis string

const (
	AxisQuality     Axis = "quality"
	AxisConsistency Axis = "consistency"
)

// maxBatchLimit keeps one call boundable in wall-clock time; callers
// poll with Remaining to drain the backlog.
const maxBatchLimit = 20

// BatchResult reports one bounded evaluation pass. Remaining counts
// everything still pending after this call, including items the call
// never reached.
type BatchResult struct {
	Evaluated int
	Errors    int
	Skipped   int
	Remaining int
}

// EvaluationService fills in AI-scored axes batch by batch and computes
// the deterministic speed axis. Each batch call re-derives the pending
// set from persisted state, so repeated invocation resumes safely.
type EvaluationService struct {
	repoRepo   RepoRepository
	issueRepo  IssueRepository
	prRepo     PullRequestRepository
	evalRepo   EvaluationRepository
	collabRepo CollaboratorReader

	tracker   TrackerClient
	evaluator AIEvaluator

	qualityDelay     time.Duration
	consistencyDelay time.Duration

	log *zap.Logger
}

func NewEvaluationService(
	repoRepo RepoRepository,
	issueRepo IssueRepository,
	prRepo PullRequestRepository,
	evalRepo EvaluationRepository,
	collabRepo CollaboratorReader,
	trackerClient TrackerClient,
	evaluator AIEvaluator,
	qualityDelay time.Duration,
	consistencyDelay time.Duration,
	log *zap.Logger,
) *EvaluationService {
	return &EvaluationService{
		repoRepo:         repoRepo,
		issueRepo:        issueRepo,
		prRepo:           prRepo,
		evalRepo:         evalRepo,
		collabRepo:       collabRepo,
		tracker:          trackerClient,
		evaluator:        evaluator,
		qualityDelay:     qualityDelay,
		consistencyDelay: consistencyDelay,
		log:              log,
	}
}

// RunBatch evaluates up to limit pending issues on one AI axis. A
// rate-limit answer from the provider stops the batch immediately and
// leaves the rest pending; any other per-item failure is counted and
// the batch continues.
func (s *EvaluationService) RunBatch(ctx context.Context, repositoryID uuid.UUID, axis Axis, limit int) (*BatchResult, error) {
	if axis != AxisQuality && axis != AxisConsistency {
		return nil, ErrInvalidAxis
	}
	if limit <= 0 || limit > maxBatchLimit {
		limit = maxBatchLimit
	}

	repo, err := s.repoRepo.GetByID(ctx, repositoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	pending, err := s.pendingIssues(ctx, repositoryID, axis)
	if err != nil {
		return nil, err
	}

	batch := pending
	if len(batch) > limit {
		batch = batch[:limit]
	}

	delay := s.qualityDelay
	if axis == AxisConsistency {
		delay = s.consistencyDelay
	}

	result := &BatchResult{}
	rateLimited := false
	for i, issue := range batch {
		if err := ctx.Err(); err != nil {
			break
		}

		var itemErr error
		var evaluated bool
		switch axis {
		case AxisQuality:
			evaluated, itemErr = s.evaluateQuality(ctx, issue)
		case AxisConsistency:
			var skipped bool
			evaluated, skipped, itemErr = s.evaluateConsistency(ctx, repo, issue)
			if skipped {
				result.Skipped++
			}
		}

		if itemErr != nil {
			if errors.Is(itemErr, ai.ErrRateLimited) {
				s.log.Warn("rate limited, stopping batch",
					zap.String("repository_id", repositoryID.String()),
					zap.String("axis", string(axis)),
					zap.Int("tracker_number", issue.TrackerNumber),
				)
				rateLimited = true
				break
			}

			s.log.Error("failed to evaluate issue",
				zap.Error(itemErr),
				zap.String("repository_id", repositoryID.String()),
				zap.String("axis", string(axis)),
				zap.Int("tracker_number", issue.TrackerNumber),
			)
			result.Errors++
			continue
		}

		if evaluated {
			result.Evaluated++

			// Fixed spacing between provider calls; nothing to
			// space after the final item.
			if i < len(batch)-1 && delay > 0 {
				select {
				case <-ctx.Done():
				case <-time.After(delay):
				}
			}
		}
	}

	result.Remaining = len(pending) - result.Evaluated - result.Skipped - result.Errors

	s.log.Info("evaluation batch completed",
		zap.String("repository_id", repositoryID.String()),
		zap.String("axis", string(axis)),
		zap.Int("evaluated", result.Evaluated),
		zap.Int("errors", result.Errors),
		zap.Int("skipped", result.Skipped),
		zap.Int("remaining", result.Remaining),
		zap.Bool("rate_limited", rateLimited),
	)

	return result, nil
}

// pendingIssues re-derives the work set from persisted state: issues
// with no score yet on the axis, closed-only for consistency, in
// ascending tracker number.
func (s *EvaluationService) pendingIssues(ctx context.Context, repositoryID uuid.UUID, axis Axis) ([]*models.Issue, error) {
	issues, err := s.issueRepo.ListByRepository(ctx, repositoryID)
	if err != nil {
		return nil, err
	}

	evals, err := s.evalRepo.ListByRepository(ctx, repositoryID)
	if err != nil {
		return nil, err
	}
	evalByIssue := make(map[uuid.UUID]*models.Evaluation, len(evals))
	for _, ev := range evals {
		evalByIssue[ev.IssueID] = ev
	}

	pending := make([]*models.Issue, 0, len(issues))
	for _, issue := range issues {
		if axis == AxisConsistency && issue.State != models.IssueStateClosed {
			continue
		}

		ev := evalByIssue[issue.ID]
		switch axis {
		case AxisQuality:
			if ev != nil && ev.QualityScore != nil {
				continue
			}
		case AxisConsistency:
			if ev != nil && ev.ConsistencyScore != nil {
				continue
			}
		}

		pending = append(pending, issue)
	}

	return pending, nil
}

func (s *EvaluationService) evaluateQuality(ctx context.Context, issue *models.Issue) (bool, error) {
	assignee := ""
	if issue.AssigneeCollaboratorID != nil {
		collab, err := s.collabRepo.GetByID(ctx, *issue.AssigneeCollaboratorID)
		if err != nil {
			return false, err
		}
		assignee = collab.UserName
	}

	res, err := s.evaluator.EvaluateQuality(ctx, ai.QualityInput{
		Title:    issue.Title,
		Body:     issue.Body,
		Assignee: assignee,
	})
	if err != nil {
		return false, err
	}

	total := res.TotalScore()
	grade, err := score.ForScore(total)
	if err != nil {
		return false, err
	}

	if err := s.evalRepo.UpdateQuality(ctx, issue.ID, total, string(grade), detailsFromResult(res)); err != nil {
		return false, err
	}

	return true, nil
}

func (s *EvaluationService) evaluateConsistency(ctx context.Context, repo *models.Repository, issue *models.Issue) (evaluated, skipped bool, err error) {
	prs, err := s.tracker.ListLinkedMergedPullRequests(ctx, repo.OwnerName, repo.RepoName, issue.TrackerNumber)
	if err != nil {
		return false, false, err
	}

	// No merged PR closed this issue: nothing to compare against.
	if len(prs) == 0 {
		return false, true, nil
	}

	for _, pr := range prs {
		mergedAt := pr.MergedAt
		if upsertErr := s.prRepo.Upsert(ctx, &models.PullRequest{
			RepositoryID:     repo.ID,
			TrackerNumber:    pr.Number,
			Title:            pr.Title,
			State:            models.PullRequestStateMerged,
			LinkedIssueID:    &issue.ID,
			TrackerCreatedAt: pr.CreatedAt,
			TrackerMergedAt:  &mergedAt,
		}); upsertErr != nil {
			return false, false, upsertErr
		}
	}

	res, err := s.evaluator.EvaluateConsistency(ctx, ai.ConsistencyInput{
		IssueTitle: issue.Title,
		IssueBody:  issue.Body,
	}, prs)
	if err != nil {
		return false, false, err
	}

	total := res.TotalScore()
	grade, err := score.ForScore(total)
	if err != nil {
		return false, false, err
	}

	if err := s.evalRepo.UpdateConsistency(ctx, issue.ID, total, string(grade), detailsFromResult(res)); err != nil {
		return false, false, err
	}

	return true, false, nil
}

// EvaluateSpeed computes and persists the speed axis for every closed
// issue that has both timestamps. Deterministic and cheap, so it always
// recomputes; no batching or rate limiting applies.
func (s *EvaluationService) EvaluateSpeed(ctx context.Context, repositoryID uuid.UUID) (int, error) {
	if _, err := s.repoRepo.GetByID(ctx, repositoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	issues, err := s.issueRepo.ListByRepository(ctx, repositoryID)
	if err != nil {
		return 0, err
	}

	evaluated := 0
	for _, issue := range issues {
		if issue.State != models.IssueStateClosed || issue.TrackerClosedAt == nil {
			continue
		}

		speedScore, grade := score.SpeedForDuration(issue.TrackerCreatedAt, *issue.TrackerClosedAt)
		if err := s.evalRepo.UpdateSpeed(ctx, issue.ID, speedScore, string(grade)); err != nil {
			return evaluated, err
		}
		evaluated++
	}

	s.log.Info("speed evaluation completed",
		zap.String("repository_id", repositoryID.String()),
		zap.Int("evaluated", evaluated),
	)

	return evaluated, nil
}

func detailsFromResult(res *ai.Result) *models.EvaluationDetails {
	details := &models.EvaluationDetails{
		OverallFeedback:        res.OverallFeedback,
		ImprovementSuggestions: res.ImprovementSuggestions,
	}
	for _, c := range res.Categories {
		details.Categories = append(details.Categories, models.CategoryScore{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			Score:        c.Score,
			MaxScore:     c.MaxScore,
			Feedback:     c.Feedback,
		})
	}
	return details
}
