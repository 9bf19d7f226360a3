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

// QuestionnaireRepository manages questionnaire templates
type QuestionnaireRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewQuestionnaireRepository creates a new QuestionnaireRepository
func NewQuestionnaireRepository(db *pgxpool.Pool, logger *zap.Logger) *QuestionnaireRepository {
	return &QuestionnaireRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new questionnaire template
func (r *QuestionnaireRepository) Create(ctx context.Context, q *model.Questionnaire) error {
	query := `
		INSERT INTO questionnaires (id, name, description, question_ids, is_active, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`

	_, err := r.db.Exec(ctx, query,
		q.ID,
		q.Name,
		q.Description,
		q.QuestionIDs,
		q.IsActive,
		q.IsDefault,
	)

	if err != nil {
		r.logger.Error("failed to create questionnaire", zap.Error(err), zap.String("questionnaire_id", q.ID))
		return fmt.Errorf("failed to create questionnaire: %w", err)
	}

	return nil
}

// GetByID retrieves a questionnaire by id
func (r *QuestionnaireRepository) GetByID(ctx context.Context, id string) (*model.Questionnaire, error) {
	query := `
		SELECT id, name, description, question_ids, is_active, is_default, created_at, updated_at
		FROM questionnaires
		WHERE id = $1
	`

	var q model.Questionnaire
	err := r.db.QueryRow(ctx, query, id).Scan(
		&q.ID,
		&q.Name,
		&q.Description,
		&q.QuestionIDs,
		&q.IsActive,
		&q.IsDefault,
		&q.CreatedAt,
		&q.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("questionnaire %s: %w", id, ErrNotFound)
		}
		r.logger.Error("failed to get questionnaire", zap.Error(err), zap.String("questionnaire_id", id))
		return nil, fmt.Errorf("failed to get questionnaire: %w", err)
	}

	return &q, nil
}

// List retrieves all questionnaire templates in creation order
func (r *QuestionnaireRepository) List(ctx context.Context) ([]model.Questionnaire, error) {
	query := `
		SELECT id, name, description, question_ids, is_active, is_default, created_at, updated_at
		FROM questionnaires
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list questionnaires", zap.Error(err))
		return nil, fmt.Errorf("failed to list questionnaires: %w", err)
	}
	defer rows.Close()

	var questionnaires []model.Questionnaire
	for rows.Next() {
		var q model.Questionnaire
		err := rows.Scan(
			&q.ID,
			&q.Name,
			&q.Description,
			&q.QuestionIDs,
			&q.IsActive,
			&q.IsDefault,
			&q.CreatedAt,
			&q.UpdatedAt,
		)
		if err != nil {
			r.logger.Error("failed to scan questionnaire", zap.Error(err))
			continue
		}
		questionnaires = append(questionnaires, q)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating questionnaires", zap.Error(err))
		return nil, fmt.Errorf("error iterating questionnaires: %w", err)
	}

	return questionnaires, nil
}

// GetActive retrieves the currently active questionnaire, if any
func (r *QuestionnaireRepository) GetActive(ctx context.Context) (*model.Questionnaire, error) {
	query := `
		SELECT id, name, description, question_ids, is_active, is_default, created_at, updated_at
		FROM questionnaires
		WHERE is_active = TRUE
	`

	var q model.Questionnaire
	err := r.db.QueryRow(ctx, query).Scan(
		&q.ID,
		&q.Name,
		&q.Description,
		&q.QuestionIDs,
		&q.IsActive,
		&q.IsDefault,
		&q.CreatedAt,
		&q.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("active questionnaire: %w", ErrNotFound)
		}
		r.logger.Error("failed to get active questionnaire", zap.Error(err))
		return nil, fmt.Errorf("failed to get active questionnaire: %w", err)
	}

	return &q, nil
}

// Activate marks the target questionnaire active and every other one
// inactive in a single transaction, so no interleaving can observe two
// active templates or none.
func (r *QuestionnaireRepository) Activate(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin activation: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE questionnaires SET is_active = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to activate questionnaire", zap.Error(err), zap.String("questionnaire_id", id))
		return fmt.Errorf("failed to activate questionnaire: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("questionnaire %s: %w", id, ErrNotFound)
	}

	if _, err := tx.Exec(ctx, `UPDATE questionnaires SET is_active = FALSE, updated_at = NOW() WHERE id <> $1 AND is_active = TRUE`, id); err != nil {
		r.logger.Error("failed to deactivate other questionnaires", zap.Error(err), zap.String("questionnaire_id", id))
		return fmt.Errorf("failed to deactivate other questionnaires: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit activation: %w", err)
	}

	return nil
}

// Delete removes a questionnaire unless it is default or active. The guard
// is part of the statement, so the policy check and the delete cannot race.
// Returns false without error when nothing was removed.
func (r *QuestionnaireRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `
		DELETE FROM questionnaires
		WHERE id = $1 AND is_default = FALSE AND is_active = FALSE
	`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete questionnaire", zap.Error(err), zap.String("questionnaire_id", id))
		return false, fmt.Errorf("failed to delete questionnaire: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
