package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/stresscheck/backend/pkg/model"
)

// Schema statements are idempotent so Bootstrap can run on every startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		role VARCHAR(16) NOT NULL,
		assigned_staff_id VARCHAR(64),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id INTEGER PRIMARY KEY,
		text TEXT NOT NULL,
		category VARCHAR(64) NOT NULL,
		section VARCHAR(32) NOT NULL,
		inverted BOOLEAN NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS questionnaires (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		question_ids INTEGER[] NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT FALSE,
		is_default BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS results (
		id VARCHAR(64) PRIMARY KEY,
		seq BIGSERIAL UNIQUE,
		user_id VARCHAR(64) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date TIMESTAMPTZ NOT NULL,
		answers JSONB NOT NULL,
		score INTEGER NOT NULL,
		max_score INTEGER NOT NULL,
		stress_level VARCHAR(8) NOT NULL,
		ai_feedback TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_results_user_date ON results (user_id, date, seq)`,
	`CREATE TABLE IF NOT EXISTS ai_settings (
		id SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		persona TEXT NOT NULL,
		custom_prompt TEXT NOT NULL DEFAULT '',
		logo_url TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Bootstrap creates the schema and seeds reference data: the question
// catalog is mirrored into the questions table, the two stock questionnaire
// templates are created when the table is empty, and the AI settings
// singleton row is created with the default persona.
func Bootstrap(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger, questions []model.Question, defaultPersona string) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	if err := seedQuestions(ctx, db, questions); err != nil {
		return err
	}

	if err := seedQuestionnaires(ctx, db, questions); err != nil {
		return err
	}

	if err := seedSettings(ctx, db, defaultPersona); err != nil {
		return err
	}

	logger.Info("database schema ready", zap.Int("catalog_size", len(questions)))
	return nil
}

// seedQuestions mirrors the in-code catalog into the questions table. The
// in-process catalog stays authoritative at runtime; the table exists for
// reporting joins and external tooling.
func seedQuestions(ctx context.Context, db *pgxpool.Pool, questions []model.Question) error {
	query := `
		INSERT INTO questions (id, text, category, section, inverted)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET text = EXCLUDED.text,
			category = EXCLUDED.category,
			section = EXCLUDED.section,
			inverted = EXCLUDED.inverted
	`

	for _, q := range questions {
		if _, err := db.Exec(ctx, query, q.ID, q.Text, q.Category, q.Section, q.Inverted); err != nil {
			return fmt.Errorf("failed to seed question %d: %w", q.ID, err)
		}
	}
	return nil
}

func seedQuestionnaires(ctx context.Context, db *pgxpool.Pool, questions []model.Question) error {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM questionnaires`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count questionnaires: %w", err)
	}
	if count > 0 {
		return nil
	}

	allIDs := make([]int, 0, len(questions))
	shortIDs := make([]int, 0)
	for _, q := range questions {
		allIDs = append(allIDs, q.ID)
		if q.ID >= 18 && q.ID <= 40 {
			shortIDs = append(shortIDs, q.ID)
		}
	}

	query := `
		INSERT INTO questionnaires (id, name, description, question_ids, is_active, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`

	if _, err := db.Exec(ctx, query,
		"q1", "標準57項目", "厚生労働省の「職業性ストレス簡易調査票」に基づきます。", allIDs, true, true,
	); err != nil {
		return fmt.Errorf("failed to seed standard questionnaire: %w", err)
	}

	if _, err := db.Exec(ctx, query,
		"q2", "簡易23項目版", "ストレス反応を中心に測定する短縮版です。", shortIDs, false, true,
	); err != nil {
		return fmt.Errorf("failed to seed short questionnaire: %w", err)
	}

	return nil
}

func seedSettings(ctx context.Context, db *pgxpool.Pool, defaultPersona string) error {
	query := `
		INSERT INTO ai_settings (id, persona, custom_prompt, logo_url, updated_at)
		VALUES (1, $1, '', '', NOW())
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := db.Exec(ctx, query, defaultPersona); err != nil {
		return fmt.Errorf("failed to seed AI settings: %w", err)
	}
	return nil
}
