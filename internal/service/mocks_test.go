package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stresscheck/backend/internal/report"
	"github.com/stresscheck/backend/internal/repository"
	"github.com/stresscheck/backend/pkg/model"
)

// Mock implementations for testing

type MockQuestionnaireStore struct {
	mock.Mock
}

func (m *MockQuestionnaireStore) Create(ctx context.Context, q *model.Questionnaire) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuestionnaireStore) GetByID(ctx context.Context, id string) (*model.Questionnaire, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Questionnaire), args.Error(1)
}

func (m *MockQuestionnaireStore) GetActive(ctx context.Context) (*model.Questionnaire, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Questionnaire), args.Error(1)
}

func (m *MockQuestionnaireStore) List(ctx context.Context) ([]model.Questionnaire, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Questionnaire), args.Error(1)
}

func (m *MockQuestionnaireStore) Activate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionnaireStore) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockResultStore struct {
	mock.Mock
}

func (m *MockResultStore) Insert(ctx context.Context, result *model.Result) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultStore) GetByID(ctx context.Context, id string) (*model.Result, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

func (m *MockResultStore) ListByUser(ctx context.Context, userID string) ([]model.Result, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Result), args.Error(1)
}

func (m *MockResultStore) UpdateFeedback(ctx context.Context, resultID, feedback string) error {
	args := m.Called(ctx, resultID, feedback)
	return args.Error(0)
}

type MockSettingsStore struct {
	mock.Mock
}

func (m *MockSettingsStore) Get(ctx context.Context) (*model.AISettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AISettings), args.Error(1)
}

func (m *MockSettingsStore) Save(ctx context.Context, settings *model.AISettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserStore) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockTrendStore struct {
	mock.Mock
}

func (m *MockTrendStore) GetTrendAggregates(ctx context.Context, userID string, days int) (*repository.TrendAggregates, error) {
	args := m.Called(ctx, userID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TrendAggregates), args.Error(1)
}

func (m *MockTrendStore) GetTrendPoints(ctx context.Context, userID string, days int) ([]repository.TrendPoint, error) {
	args := m.Called(ctx, userID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TrendPoint), args.Error(1)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateIndividualFeedback(ctx context.Context, payload *report.IndividualContext) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) GenerateHistoryReport(ctx context.Context, payload *report.HistoryContext) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}
