package repository

import (
	"context"
	"time"

	"sprintpulse/internal/models"
	"sprintpulse/internal/retry"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SyncMetadataRepository struct {
	db      *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	psql    sq.StatementBuilderType
	retrier retry.Retrier
}

func NewSyncMetadataRepository(db *pgxpool.Pool, c *trmpgx.CtxGetter, r retry.Retrier) *SyncMetadataRepository {
	return &SyncMetadataRepository{
		db:      db,
		getter:  c,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		retrier: r,
	}
}

// Get returns ErrNotFound for a repository that has never synced, which
// is what makes the orchestrator pick a full sync.
func (r *SyncMetadataRepository) Get(ctx context.Context, repositoryID uuid.UUID) (*models.SyncMetadata, error) {
	query := r.psql.Select("repository_id", "last_sync_at").
		From("sync_metadata").
		Where(sq.Eq{"repository_id": repositoryID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	meta := &models.SyncMetadata{}

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).
			Scan(&meta.RepositoryID, &meta.LastSyncAt)
	})

	return meta, wrapDBError(err)
}

func (r *SyncMetadataRepository) Upsert(ctx context.Context, repositoryID uuid.UUID, lastSyncAt time.Time) error {
	query := r.psql.Insert("sync_metadata").
		Columns("repository_id", "last_sync_at").
		Values(repositoryID, lastSyncAt).
		Suffix(`ON CONFLICT (repository_id) DO UPDATE SET
			last_sync_at = EXCLUDED.last_sync_at`)

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
