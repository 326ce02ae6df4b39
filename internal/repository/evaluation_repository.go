package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"sprintpulse/internal/models"
	"sprintpulse/internal/retry"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EvaluationRepository stores per-issue evaluations. Each axis is
// written through its own partial upsert so filling in one axis can
// never null out another.
type EvaluationRepository struct {
	db      *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	psql    sq.StatementBuilderType
	retrier retry.Retrier
}

func NewEvaluationRepository(db *pgxpool.Pool, c *trmpgx.CtxGetter, r retry.Retrier) *EvaluationRepository {
	return &EvaluationRepository{
		db:      db,
		getter:  c,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		retrier: r,
	}
}

const evaluationColumns = "id, issue_id, speed_score, speed_grade, quality_score, quality_grade, quality_details, consistency_score, consistency_grade, consistency_details"

func (r *EvaluationRepository) GetByIssueID(ctx context.Context, issueID uuid.UUID) (*models.Evaluation, error) {
	query := r.psql.Select(evaluationColumns).
		From("evaluations").
		Where(sq.Eq{"issue_id": issueID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	ev := &models.Evaluation{}

	err = r.retrier.Do(ctx, func() error {
		var qualityDetails, consistencyDetails []byte
		scanErr := conn.QueryRow(ctx, sql, args...).Scan(
			&ev.ID,
			&ev.IssueID,
			&ev.SpeedScore,
			&ev.SpeedGrade,
			&ev.QualityScore,
			&ev.QualityGrade,
			&qualityDetails,
			&ev.ConsistencyScore,
			&ev.ConsistencyGrade,
			&consistencyDetails,
		)
		if scanErr != nil {
			return scanErr
		}
		return unmarshalDetails(ev, qualityDetails, consistencyDetails)
	})

	return ev, wrapDBError(err)
}

// ListByRepository returns every evaluation row belonging to the
// repository's issues.
func (r *EvaluationRepository) ListByRepository(ctx context.Context, repositoryID uuid.UUID) ([]*models.Evaluation, error) {
	query := r.psql.Select(
		"e.id", "e.issue_id",
		"e.speed_score", "e.speed_grade",
		"e.quality_score", "e.quality_grade", "e.quality_details",
		"e.consistency_score", "e.consistency_grade", "e.consistency_details",
	).From("evaluations e").
		Join("issues i ON i.id = e.issue_id").
		Where(sq.Eq{"i.repository_id": repositoryID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	evals := make([]*models.Evaluation, 0)

	err = r.retrier.Do(ctx, func() error {
		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			ev := &models.Evaluation{}
			var qualityDetails, consistencyDetails []byte
			if err := rows.Scan(
				&ev.ID,
				&ev.IssueID,
				&ev.SpeedScore,
				&ev.SpeedGrade,
				&ev.QualityScore,
				&ev.QualityGrade,
				&qualityDetails,
				&ev.ConsistencyScore,
				&ev.ConsistencyGrade,
				&consistencyDetails,
			); err != nil {
				return err
			}
			if err := unmarshalDetails(ev, qualityDetails, consistencyDetails); err != nil {
				return err
			}
			evals = append(evals, ev)
		}

		return rows.Err()
	})

	return evals, wrapDBError(err)
}

func (r *EvaluationRepository) UpdateSpeed(ctx context.Context, issueID uuid.UUID, score int, grade string) error {
	query := r.psql.Insert("evaluations").
		Columns("issue_id", "speed_score", "speed_grade").
		Values(issueID, score, grade).
		Suffix(`ON CONFLICT (issue_id) DO UPDATE SET
			speed_score = EXCLUDED.speed_score,
			speed_grade = EXCLUDED.speed_grade`)

	return r.exec(ctx, query)
}

func (r *EvaluationRepository) UpdateQuality(ctx context.Context, issueID uuid.UUID, score int, grade string, details *models.EvaluationDetails) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("marshal quality details: %w", err)
	}

	query := r.psql.Insert("evaluations").
		Columns("issue_id", "quality_score", "quality_grade", "quality_details").
		Values(issueID, score, grade, payload).
		Suffix(`ON CONFLICT (issue_id) DO UPDATE SET
			quality_score = EXCLUDED.quality_score,
			quality_grade = EXCLUDED.quality_grade,
			quality_details = EXCLUDED.quality_details`)

	return r.exec(ctx, query)
}

func (r *EvaluationRepository) UpdateConsistency(ctx context.Context, issueID uuid.UUID, score int, grade string, details *models.EvaluationDetails) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("marshal consistency details: %w", err)
	}

	query := r.psql.Insert("evaluations").
		Columns("issue_id", "consistency_score", "consistency_grade", "consistency_details").
		Values(issueID, score, grade, payload).
		Suffix(`ON CONFLICT (issue_id) DO UPDATE SET
			consistency_score = EXCLUDED.consistency_score,
			consistency_grade = EXCLUDED.consistency_grade,
			consistency_details = EXCLUDED.consistency_details`)

	return r.exec(ctx, query)
}

func (r *EvaluationRepository) exec(ctx context.Context, query sq.InsertBuilder) error {
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

func unmarshalDetails(ev *models.Evaluation, quality, consistency []byte) error {
	if len(quality) > 0 {
		ev.QualityDetails = &models.EvaluationDetails{}
		if err := json.Unmarshal(quality, ev.QualityDetails); err != nil {
			return fmt.Errorf("unmarshal quality details: %w", err)
		}
	}
	if len(consistency) > 0 {
		ev.ConsistencyDetails = &models.EvaluationDetails{}
		if err := json.Unmarshal(consistency, ev.ConsistencyDetails); err != nil {
			return fmt.Errorf("unmarshal consistency details: %w", err)
		}
	}
	return nil
}
