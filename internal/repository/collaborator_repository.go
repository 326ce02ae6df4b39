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

type CollaboratorRepository struct {
	db      *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	psql    sq.StatementBuilderType
	retrier retry.Retrier
}

func NewCollaboratorRepository(db *pgxpool.Pool, c *trmpgx.CtxGetter, r retry.Retrier) *CollaboratorRepository {
	return &CollaboratorRepository{
		db:      db,
		getter:  c,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		retrier: r,
	}
}

func (r *CollaboratorRepository) Create(ctx context.Context, collab *models.Collaborator) error {
	query := r.psql.Insert("collaborators").
		Columns("repository_id", "user_name").
		Values(collab.RepositoryID, collab.UserName).
		Suffix("RETURNING id")

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).Scan(&collab.ID)
	})

	return wrapDBError(err)
}

func (r *CollaboratorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Collaborator, error) {
	query := r.psql.Select("id", "repository_id", "user_name").
		From("collaborators").
		Where(sq.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	collab := &models.Collaborator{}

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).
			Scan(&collab.ID, &collab.RepositoryID, &collab.UserName)
	})

	return collab, wrapDBError(err)
}

func (r *CollaboratorRepository) GetByUserName(ctx context.Context, repositoryID uuid.UUID, userName string) (*models.Collaborator, error) {
	query := r.psql.Select("id", "repository_id", "user_name").
		From("collaborators").
		Where(sq.Eq{
			"repository_id": repositoryID,
			"user_name":     userName,
		})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	collab := &models.Collaborator{}

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).
			Scan(&collab.ID, &collab.RepositoryID, &collab.UserName)
	})

	return collab, wrapDBError(err)
}

// ListTrackedUserNames returns the usernames marked in scope for the
// repository. An empty result means every collaborator is in scope.
func (r *CollaboratorRepository) ListTrackedUserNames(ctx context.Context, repositoryID uuid.UUID) ([]string, error) {
	query := r.psql.Select("c.user_name").
		From("tracked_collaborators tc").
		Join("collaborators c ON c.id = tc.collaborator_id").
		Where(sq.Eq{"tc.repository_id": repositoryID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	names := make([]string, 0)

	err = r.retrier.Do(ctx, func() error {
		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return err
			}
			names = append(names, name)
		}

		return rows.Err()
	})

	return names, wrapDBError(err)
}

func (r *CollaboratorRepository) Track(ctx context.Context, repositoryID, collaboratorID uuid.UUID) error {
	query := r.psql.Insert("tracked_collaborators").
		Columns("repository_id", "collaborator_id").
		Values(repositoryID, collaboratorID).
		Suffix("ON CONFLICT DO NOTHING")

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)

	err = r.retrier.Do(ctx, func() error {
		_, retryErr := conn.Exec(ctx, sql, args...)
		return retryErr
	})

	return wrapDBError(err)
}

func (r *CollaboratorRepository) Untrack(ctx context.Context, repositoryID, collaboratorID uuid.UUID) error {
	query := r.psql.Delete("tracked_collaborators").
		Where(sq.Eq{
			"repository_id":   repositoryID,
			"collaborator_id": collaboratorID,
		})

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
