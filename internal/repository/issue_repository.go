package repository

import (
	"context"

	"sprintpulse/internal/models"
	"sprintpulse/internal/retry"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IssueRepository struct {
	db      *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	psql    sq.StatementBuilderType
	retrier retry.Retrier
}

func NewIssueRepository(db *pgxpool.Pool, c *trmpgx.CtxGetter, r retry.Retrier) *IssueRepository {
	return &IssueRepository{
		db:      db,
		getter:  c,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		retrier: r,
	}
}

const issueColumns = "id, repository_id, tracker_number, title, body, state, author_collaborator_id, assignee_collaborator_id, sprint_number, tracker_created_at, tracker_closed_at"

// Upsert inserts or refreshes an issue keyed by (repository_id,
// tracker_number). On conflict the tracker-owned fields are replaced;
// sprint_number stays as written by the first sync, and the issue's
// evaluation row (a separate table keyed by issue id) is never touched.
func (r *IssueRepository) Upsert(ctx context.Context, issue *models.Issue) error {
	query := r.psql.Insert("issues").
		Columns("repository_id", "tracker_number", "title", "body", "state",
			"author_collaborator_id", "assignee_collaborator_id", "sprint_number",
			"tracker_created_at", "tracker_closed_at").
		Values(issue.RepositoryID, issue.TrackerNumber, issue.Title, issue.Body, issue.State,
			issue.AuthorCollaboratorID, issue.AssigneeCollaboratorID, issue.SprintNumber,
			issue.TrackerCreatedAt, issue.TrackerClosedAt).
		Suffix(`ON CONFLICT (repository_id, tracker_number) DO UPDATE SET
			title = EXCLUDED.title,
			body = EXCLUDED.body,
			state = EXCLUDED.state,
			author_collaborator_id = EXCLUDED.author_collaborator_id,
			assignee_collaborator_id = EXCLUDED.assignee_collaborator_id,
			tracker_created_at = EXCLUDED.tracker_created_at,
			tracker_closed_at = EXCLUDED.tracker_closed_at
			RETURNING id, sprint_number`)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).Scan(&issue.ID, &issue.SprintNumber)
	})

	return wrapDBError(err)
}

func (r *IssueRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Issue, error) {
	query := r.psql.Select(issueColumns).
		From("issues").
		Where(sq.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	issue := &models.Issue{}

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).Scan(
			&issue.ID,
			&issue.RepositoryID,
			&issue.TrackerNumber,
			&issue.Title,
			&issue.Body,
			&issue.State,
			&issue.AuthorCollaboratorID,
			&issue.AssigneeCollaboratorID,
			&issue.SprintNumber,
			&issue.TrackerCreatedAt,
			&issue.TrackerClosedAt,
		)
	})

	return issue, wrapDBError(err)
}

// ListByRepository returns the repository's issues in ascending tracker
// number, the stable order batch evaluation slices pending work from.
func (r *IssueRepository) ListByRepository(ctx context.Context, repositoryID uuid.UUID) ([]*models.Issue, error) {
	query := r.psql.Select(issueColumns).
		From("issues").
		Where(sq.Eq{"repository_id": repositoryID}).
		OrderBy("tracker_number ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	issues := make([]*models.Issue, 0)

	err = r.retrier.Do(ctx, func() error {
		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			issue := &models.Issue{}
			if err := rows.Scan(
				&issue.ID,
				&issue.RepositoryID,
				&issue.TrackerNumber,
				&issue.Title,
				&issue.Body,
				&issue.State,
				&issue.AuthorCollaboratorID,
				&issue.AssigneeCollaboratorID,
				&issue.SprintNumber,
				&issue.TrackerCreatedAt,
				&issue.TrackerClosedAt,
			); err != nil {
				return err
			}
			issues = append(issues, issue)
		}

		return rows.Err()
	})

	return issues, wrapDBError(err)
}
