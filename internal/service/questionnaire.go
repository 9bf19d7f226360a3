package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stresscheck/backend/internal/catalog"
	"github.com/stresscheck/backend/pkg/model"
)

// QuestionnaireStore is the persistence capability the service needs.
// Activate must flip all active flags as one atomic step.
type QuestionnaireStore interface {
	Create(ctx context.Context, q *model.Questionnaire) error
	GetByID(ctx context.Context, id string) (*model.Questionnaire, error)
	GetActive(ctx context.Context) (*model.Questionnaire, error)
	List(ctx context.Context) ([]model.Questionnaire, error)
	Activate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) (bool, error)
}

// QuestionnaireService manages the questionnaire template lifecycle
type QuestionnaireService struct {
	store   QuestionnaireStore
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewQuestionnaireService creates a new QuestionnaireService
func NewQuestionnaireService(store QuestionnaireStore, cat *catalog.Catalog, logger *zap.Logger) *QuestionnaireService {
	return &QuestionnaireService{
		store:   store,
		catalog: cat,
		logger:  logger,
	}
}

// List returns all questionnaire templates
func (s *QuestionnaireService) List(ctx context.Context) ([]model.Questionnaire, error) {
	return s.store.List(ctx)
}

// Create adds a new template. The name must be non-empty and every
// question id must exist in the catalog. New templates start inactive and
// non-default.
func (s *QuestionnaireService) Create(ctx context.Context, name, description string, questionIDs []int) (*model.Questionnaire, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationErrorf("questionnaire name is required")
	}
	if len(questionIDs) == 0 {
		return nil, validationErrorf("questionnaire needs at least one question")
	}
	for _, id := range questionIDs {
		if !s.catalog.Contains(id) {
			return nil, validationErrorf("unknown question id: %d", id)
		}
	}

	q := &model.Questionnaire{
		ID:          "q_" + uuid.New().String(),
		Name:        name,
		Description: description,
		QuestionIDs: questionIDs,
		IsActive:    false,
		IsDefault:   false,
	}

	if err := s.store.Create(ctx, q); err != nil {
		return nil, err
	}

	s.logger.Info("questionnaire created",
		zap.String("questionnaire_id", q.ID),
		zap.String("name", q.Name),
		zap.Int("question_count", len(q.QuestionIDs)),
	)

	return q, nil
}

// Activate makes the target template the single active one. Idempotent
// when the target is already active; ErrNotFound when the id is unknown.
func (s *QuestionnaireService) Activate(ctx context.Context, id string) error {
	if err := s.store.Activate(ctx, id); err != nil {
		return err
	}

	s.logger.Info("questionnaire activated", zap.String("questionnaire_id", id))
	return nil
}

// Delete removes a template unless it is default or active. The false
// return is a policy outcome for callers to surface as a soft warning,
// not an error.
func (s *QuestionnaireService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Info("questionnaire deleted", zap.String("questionnaire_id", id))
	} else {
		s.logger.Warn("questionnaire delete refused", zap.String("questionnaire_id", id))
	}

	return deleted, nil
}

// ActiveQuestionSet returns the active template and its questions resolved
// against the catalog in template-declared order.
func (s *QuestionnaireService) ActiveQuestionSet(ctx context.Context) (*model.Questionnaire, []model.Question, error) {
	active, err := s.store.GetActive(ctx)
	if err != nil {
		return nil, nil, err
	}

	return active, s.catalog.Resolve(active.QuestionIDs), nil
}
