package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/stresscheck/backend/pkg/model"
)

// ResultRepository owns the append-only assessment history. Rows are never
// updated after insertion except for the one-shot ai_feedback attachment.
type ResultRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(db *pgxpool.Pool, logger *zap.Logger) *ResultRepository {
	return &ResultRepository{
		db:     db,
		logger: logger,
	}
}

// Insert appends a completed assessment result
func (r *ResultRepository) Insert(ctx context.Context, result *model.Result) error {
	query := `
		INSERT INTO results (id, user_id, date, answers, score, max_score, stress_level, ai_feedback, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`

	_, err := r.db.Exec(ctx, query,
		result.ID,
		result.UserID,
		result.Date,
		result.Answers,
		result.Score,
		result.MaxScore,
		result.StressLevel,
		result.AIFeedback,
	)

	if err != nil {
		r.logger.Error("failed to insert result",
			zap.Error(err),
			zap.String("result_id", result.ID),
			zap.String("user_id", result.UserID),
		)
		return fmt.Errorf("failed to insert result: %w", err)
	}

	return nil
}

// GetByID retrieves a single result
func (r *ResultRepository) GetByID(ctx context.Context, id string) (*model.Result, error) {
	query := `
		SELECT id, user_id, date, answers, score, max_score, stress_level, ai_feedback, created_at
		FROM results
		WHERE id = $1
	`

	var result model.Result
	err := r.db.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.UserID,
		&result.Date,
		&result.Answers,
		&result.Score,
		&result.MaxScore,
		&result.StressLevel,
		&result.AIFeedback,
		&result.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("result %s: %w", id, ErrNotFound)
		}
		r.logger.Error("failed to get result", zap.Error(err), zap.String("result_id", id))
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	return &result, nil
}

// ListByUser retrieves a respondent's results ascending by date. The seq
// column breaks ties in insertion order, which keeps trend charts and
// "most recent result" selection stable when two appends share a date.
func (r *ResultRepository) ListByUser(ctx context.Context, userID string) ([]model.Result, error) {
	query := `
		SELECT id, user_id, date, answers, score, max_score, stress_level, ai_feedback, created_at
		FROM results
		WHERE user_id = $1
		ORDER BY date ASC, seq ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to list results", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		var result model.Result
		err := rows.Scan(
			&result.ID,
			&result.UserID,
			&result.Date,
			&result.Answers,
			&result.Score,
			&result.MaxScore,
			&result.StressLevel,
			&result.AIFeedback,
			&result.CreatedAt,
		)
		if err != nil {
			r.logger.Error("failed to scan result", zap.Error(err))
			continue
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating results", zap.Error(err))
		return nil, fmt.Errorf("error iterating results: %w", err)
	}

	return results, nil
}

// UpdateFeedback attaches narrative feedback to an existing result.
// Concurrent attachments are last-write-wins.
func (r *ResultRepository) UpdateFeedback(ctx context.Context, resultID, feedback string) error {
	query := `UPDATE results SET ai_feedback = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, resultID, feedback)
	if err != nil {
		r.logger.Error("failed to update feedback", zap.Error(err), zap.String("result_id", resultID))
		return fmt.Errorf("failed to update feedback: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("result %s: %w", resultID, ErrNotFound)
	}

	return nil
}
