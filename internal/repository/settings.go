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

// SettingsRepository manages the AI settings singleton row
type SettingsRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool, logger *zap.Logger) *SettingsRepository {
	return &SettingsRepository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves the AI settings
func (r *SettingsRepository) Get(ctx context.Context) (*model.AISettings, error) {
	query := `SELECT persona, custom_prompt, logo_url, updated_at FROM ai_settings WHERE id = 1`

	var settings model.AISettings
	err := r.db.QueryRow(ctx, query).Scan(
		&settings.Persona,
		&settings.CustomPrompt,
		&settings.LogoURL,
		&settings.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ai settings: %w", ErrNotFound)
		}
		r.logger.Error("failed to get AI settings", zap.Error(err))
		return nil, fmt.Errorf("failed to get AI settings: %w", err)
	}

	return &settings, nil
}

// Save replaces the AI settings
func (r *SettingsRepository) Save(ctx context.Context, settings *model.AISettings) error {
	query := `
		INSERT INTO ai_settings (id, persona, custom_prompt, logo_url, updated_at)
		VALUES (1, $1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE
		SET persona = EXCLUDED.persona,
			custom_prompt = EXCLUDED.custom_prompt,
			logo_url = EXCLUDED.logo_url,
			updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, settings.Persona, settings.CustomPrompt, settings.LogoURL)
	if err != nil {
		r.logger.Error("failed to save AI settings", zap.Error(err))
		return fmt.Errorf("failed to save AI settings: %w", err)
	}

	return nil
}
