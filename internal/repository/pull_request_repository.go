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

type PullRequestRepository struct {
	db      *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	psql    sq.StatementBuilderType
	retrier retry.Retrier
}

func NewPullRequestRepository(db *pgxpool.Pool, c *trmpgx.CtxGetter, r retry.Retrier) *PullRequestRepository {
	return &PullRequestRepository{
		db:      db,
		getter:  c,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		retrier: r,
	}
}

// Upsert inserts or refreshes a pull request keyed by (repository_id,
// tracker_number).
func (r *PullRequestRepository) Upsert(ctx context.Context, pr *models.PullRequest) error {
	query := r.psql.Insert("pull_requests").
		Columns("repository_id", "tracker_number", "title", "state",
			"author_collaborator_id", "linked_issue_id", "tracker_created_at", "tracker_merged_at").
		Values(pr.RepositoryID, pr.TrackerNumber, pr.Title, pr.State,
			pr.AuthorCollaboratorID, pr.LinkedIssueID, pr.TrackerCreatedAt, pr.TrackerMergedAt).
		Suffix(`ON CONFLICT (repository_id, tracker_number) DO UPDATE SET
			title = EXCLUDED.title,
			state = EXCLUDED.state,
			author_collaborator_id = EXCLUDED.author_collaborator_id,
			linked_issue_id = EXCLUDED.linked_issue_id,
			tracker_created_at = EXCLUDED.tracker_created_at,
			tracker_merged_at = EXCLUDED.tracker_merged_at
			RETURNING id`)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).Scan(&pr.ID)
	})

	return wrapDBError(err)
}

func (r *PullRequestRepository) ListByLinkedIssue(ctx context.Context, issueID uuid.UUID) ([]*models.PullRequest, error) {
	query := r.psql.Select("id", "repository_id", "tracker_number", "title", "state",
		"author_collaborator_id", "linked_issue_id", "tracker_created_at", "tracker_merged_at").
		From("pull_requests").
		Where(sq.Eq{"linked_issue_id": issueID}).
		OrderBy("tracker_number ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	prs := make([]*models.PullRequest, 0)

	err = r.retrier.Do(ctx, func() error {
		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			pr := &models.PullRequest{}
			if err := rows.Scan(
				&pr.ID,
				&pr.RepositoryID,
				&pr.TrackerNumber,
				&pr.Title,
				&pr.State,
				&pr.AuthorCollaboratorID,
				&pr.LinkedIssueID,
				&pr.TrackerCreatedAt,
				&pr.TrackerMergedAt,
			); err != nil {
				return err
			}
			prs = append(prs, pr)
		}

		return rows.Err()
	})

	return prs, wrapDBError(err)
}
