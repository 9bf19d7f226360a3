package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/stresscheck/backend/internal/repository"
)

// TrendStore is the aggregate capability backing staff dashboards
type TrendStore interface {
	GetTrendAggregates(ctx context.Context, userID string, days int) (*repository.TrendAggregates, error)
	GetTrendPoints(ctx context.Context, userID string, days int) ([]repository.TrendPoint, error)
}

// TrendSummary is the dashboard payload for one respondent
type TrendSummary struct {
	Period            string                  `json:"period"`
	ResultCount       int                     `json:"result_count"`
	AveragePercentage float64                 `json:"average_percentage"`
	LevelDistribution map[string]int          `json:"level_distribution"`
	Points            []repository.TrendPoint `json:"points"`
}

// DashboardService aggregates assessment trends for staff views
type DashboardService struct {
	store  TrendStore
	logger *zap.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(store TrendStore, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		store:  store,
		logger: logger,
	}
}

// GetTrend returns the stress trend of one respondent over the last N days
func (s *DashboardService) GetTrend(ctx context.Context, userID string, days int) (*TrendSummary, error) {
	if userID == "" {
		return nil, validationErrorf("user id is required")
	}
	if days <= 0 {
		return nil, validationErrorf("days must be positive")
	}

	aggregates, err := s.store.GetTrendAggregates(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	points, err := s.store.GetTrendPoints(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	return &TrendSummary{
		Period:            fmt.Sprintf("%d days", days),
		ResultCount:       aggregates.ResultCount,
		AveragePercentage: aggregates.AveragePercentage,
		LevelDistribution: aggregates.LevelDistribution,
		Points:            points,
	}, nil
}
