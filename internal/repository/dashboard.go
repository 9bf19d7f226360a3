package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// TrendPoint is one assessment in a respondent's trend window
type TrendPoint struct {
	Date        time.Time `json:"date"`
	Score       int       `json:"score"`
	MaxScore    int       `json:"max_score"`
	StressLevel string    `json:"stress_level"`
}

// TrendAggregates summarizes a respondent's assessments over a window
type TrendAggregates struct {
	ResultCount       int            `json:"result_count"`
	AveragePercentage float64        `json:"average_percentage"`
	LevelDistribution map[string]int `json:"level_distribution"`
}

// DashboardRepository computes trend aggregates for staff views
type DashboardRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db *pgxpool.Pool, logger *zap.Logger) *DashboardRepository {
	return &DashboardRepository{
		db:     db,
		logger: logger,
	}
}

// GetTrendAggregates returns summary metrics for a respondent over the last
// N days. Percentage uses NULLIF so results with maxScore 0 count as 0.
func (r *DashboardRepository) GetTrendAggregates(ctx context.Context, userID string, days int) (*TrendAggregates, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(AVG(COALESCE(score::float / NULLIF(max_score, 0) * 100, 0)), 0)
		FROM results
		WHERE user_id = $1 AND date >= NOW() - ($2 || ' days')::interval
	`

	aggregates := &TrendAggregates{
		LevelDistribution: make(map[string]int),
	}

	err := r.db.QueryRow(ctx, query, userID, days).Scan(
		&aggregates.ResultCount,
		&aggregates.AveragePercentage,
	)
	if err != nil {
		r.logger.Error("failed to get trend aggregates", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get trend aggregates: %w", err)
	}

	distQuery := `
		SELECT stress_level, COUNT(*)
		FROM results
		WHERE user_id = $1 AND date >= NOW() - ($2 || ' days')::interval
		GROUP BY stress_level
	`

	rows, err := r.db.Query(ctx, distQuery, userID, days)
	if err != nil {
		r.logger.Error("failed to get level distribution", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get level distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			r.logger.Error("failed to scan level distribution", zap.Error(err))
			continue
		}
		aggregates.LevelDistribution[level] = count
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating level distribution", zap.Error(err))
		return nil, fmt.Errorf("error iterating level distribution: %w", err)
	}

	return aggregates, nil
}

// GetTrendPoints returns the per-assessment series backing the stress chart,
// ascending by date with insertion-order tie-breaks.
func (r *DashboardRepository) GetTrendPoints(ctx context.Context, userID string, days int) ([]TrendPoint, error) {
	query := `
		SELECT date, score, max_score, stress_level
		FROM results
		WHERE user_id = $1 AND date >= NOW() - ($2 || ' days')::interval
		ORDER BY date ASC, seq ASC
	`

	rows, err := r.db.Query(ctx, query, userID, days)
	if err != nil {
		r.logger.Error("failed to get trend points", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get trend points: %w", err)
	}
	defer rows.Close()

	var points []TrendPoint
	for rows.Next() {
		var p TrendPoint
		if err := rows.Scan(&p.Date, &p.Score, &p.MaxScore, &p.StressLevel); err != nil {
			r.logger.Error("failed to scan trend point", zap.Error(err))
			continue
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating trend points", zap.Error(err))
		return nil, fmt.Errorf("error iterating trend points: %w", err)
	}

	return points, nil
}
