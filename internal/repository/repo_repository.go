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

type RepoRepository struct {
	db      *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	psql    sq.StatementBuilderType
	retrier retry.Retrier
}

func NewRepoRepository(db *pgxpool.Pool, c *trmpgx.CtxGetter, r retry.Retrier) *RepoRepository {
	return &RepoRepository{
		db:      db,
		getter:  c,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		retrier: r,
	}
}

const repoColumns = "id, owner_name, repo_name, sprint_start_day_of_week, sprint_duration_weeks, tracking_start_date"

func (r *RepoRepository) Create(ctx context.Context, repo *models.Repository) error {
	query := r.psql.Insert("repositories").
		Columns("owner_name", "repo_name", "sprint_start_day_of_week", "sprint_duration_weeks", "tracking_start_date").
		Values(repo.OwnerName, repo.RepoName, repo.SprintStartDayOfWeek, repo.SprintDurationWeeks, repo.TrackingStartDate).
		Suffix("RETURNING id")

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).Scan(&repo.ID)
	})

	return wrapDBError(err)
}

func (r *RepoRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Repository, error) {
	query := r.psql.Select(repoColumns).
		From("repositories").
		Where(sq.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	repo := &models.Repository{}

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).Scan(
			&repo.ID,
			&repo.OwnerName,
			&repo.RepoName,
			&repo.SprintStartDayOfWeek,
			&repo.SprintDurationWeeks,
			&repo.TrackingStartDate,
		)
	})

	return repo, wrapDBError(err)
}

func (r *RepoRepository) List(ctx context.Context) ([]*models.Repository, error) {
	query := r.psql.Select(repoColumns).
		From("repositories").
		OrderBy("owner_name", "repo_name")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	repos := make([]*models.Repository, 0)

	err = r.retrier.Do(ctx, func() error {
		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			repo := &models.Repository{}
			if err := rows.Scan(
				&repo.ID,
				&repo.OwnerName,
				&repo.RepoName,
				&repo.SprintStartDayOfWeek,
				&repo.SprintDurationWeeks,
				&repo.TrackingStartDate,
			); err != nil {
				return err
			}
			repos = append(repos, repo)
		}

		return rows.Err()
	})

	return repos, wrapDBError(err)
}

// UpdateSprintSettings changes the sprint grid for future syncs only;
// sprint numbers already stored on issues are left as they were.
func (r *RepoRepository) UpdateSprintSettings(ctx context.Context, id uuid.UUID, startDayOfWeek, durationWeeks int) error {
	query := r.psql.Update("repositories").
		Set("sprint_start_day_of_week", startDayOfWeek).
		Set("sprint_duration_weeks", durationWeeks).
		Where(sq.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)

	err = r.retrier.Do(ctx, func() error {
		tag, retryErr := conn.Exec(ctx, sql, args...)
		if retryErr != nil {
			return retryErr
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})

	return wrapDBError(err)
}
