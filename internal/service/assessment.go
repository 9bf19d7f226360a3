package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stresscheck/backend/internal/ai"
	"github.com/stresscheck/backend/internal/catalog"
	"github.com/stresscheck/backend/internal/report"
	"github.com/stresscheck/backend/internal/scoring"
	"github.com/stresscheck/backend/pkg/model"
)

// Placeholder texts returned when the text-generation collaborator fails.
// The underlying result stays valid with empty stored feedback.
const (
	feedbackUnavailableText = "AIによるフィードバックの生成中にエラーが発生しました。しばらくしてからもう一度お試しください。"
	reportUnavailableText   = "AIによるレポート生成中にエラーが発生しました。"
	noHistoryText           = "分析対象のデータがありません。"
)

// ResultStore is the append-only result ledger capability
type ResultStore interface {
	Insert(ctx context.Context, result *model.Result) error
	GetByID(ctx context.Context, id string) (*model.Result, error)
	ListByUser(ctx context.Context, userID string) ([]model.Result, error)
	UpdateFeedback(ctx context.Context, resultID, feedback string) error
}

// SettingsStore reads the AI settings singleton
type SettingsStore interface {
	Get(ctx context.Context) (*model.AISettings, error)
}

// UserReader looks up respondents for staff reports
type UserReader interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// AssessmentService scores submissions, keeps the per-respondent history
// and drives narrative feedback generation.
type AssessmentService struct {
	results   ResultStore
	settings  SettingsStore
	users     UserReader
	catalog   *catalog.Catalog
	builder   *report.Builder
	generator ai.Generator
	logger    *zap.Logger
}

// NewAssessmentService creates a new AssessmentService
func NewAssessmentService(
	results ResultStore,
	settings SettingsStore,
	users UserReader,
	cat *catalog.Catalog,
	builder *report.Builder,
	generator ai.Generator,
	logger *zap.Logger,
) *AssessmentService {
	return &AssessmentService{
		results:   results,
		settings:  settings,
		users:     users,
		catalog:   cat,
		builder:   builder,
		generator: generator,
		logger:    logger,
	}
}

// Submit scores an answer set and appends the result to the respondent's
// history. Duplicate question ids are last-write-wins; the stored answers
// are the normalized set the score was computed from. Unknown question ids
// are kept in the stored answers but excluded from the score.
func (s *AssessmentService) Submit(ctx context.Context, userID string, answers []model.Answer) (*model.Result, error) {
	if userID == "" {
		return nil, validationErrorf("user id is required")
	}
	if len(answers) == 0 {
		return nil, validationErrorf("at least one answer is required")
	}
	for _, a := range answers {
		if a.Value < scoring.MinAnswerValue || a.Value > scoring.MaxAnswerValue {
			return nil, validationErrorf("answer value %d for question %d is outside the %d-%d scale",
				a.Value, a.QuestionID, scoring.MinAnswerValue, scoring.MaxAnswerValue)
		}
	}

	normalized := scoring.Normalize(answers)
	outcome := scoring.Compute(s.catalog, normalized)

	result := &model.Result{
		ID:          "res_" + uuid.New().String(),
		UserID:      userID,
		Date:        time.Now(),
		Answers:     normalized,
		Score:       outcome.Score,
		MaxScore:    outcome.MaxScore,
		StressLevel: outcome.StressLevel,
		AIFeedback:  "",
	}

	if err := s.results.Insert(ctx, result); err != nil {
		return nil, err
	}

	s.logger.Info("assessment submitted",
		zap.String("result_id", result.ID),
		zap.String("user_id", userID),
		zap.Int("score", result.Score),
		zap.Int("max_score", result.MaxScore),
		zap.String("stress_level", string(result.StressLevel)),
	)

	return result, nil
}

// History returns a respondent's results ascending by date
func (s *AssessmentService) History(ctx context.Context, userID string) ([]model.Result, error) {
	return s.results.ListByUser(ctx, userID)
}

// AttachFeedback sets the narrative feedback of an existing result.
// ErrNotFound when the result id is unknown.
func (s *AssessmentService) AttachFeedback(ctx context.Context, resultID, feedback string) error {
	return s.results.UpdateFeedback(ctx, resultID, feedback)
}

// GenerateFeedback produces narrative feedback for one result and attaches
// it on success. Generation failure degrades to placeholder text; it never
// invalidates the result.
func (s *AssessmentService) GenerateFeedback(ctx context.Context, resultID string) (string, error) {
	result, err := s.results.GetByID(ctx, resultID)
	if err != nil {
		return "", err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return "", err
	}

	payload := s.builder.BuildIndividualContext(result, settings)

	feedback, err := s.generator.GenerateIndividualFeedback(ctx, payload)
	if err != nil {
		s.logger.Warn("feedback generation degraded",
			zap.Error(err),
			zap.String("result_id", resultID),
		)
		return feedbackUnavailableText, nil
	}

	if err := s.results.UpdateFeedback(ctx, resultID, feedback); err != nil {
		s.logger.Error("failed to attach generated feedback",
			zap.Error(err),
			zap.String("result_id", resultID),
		)
		return "", err
	}

	return feedback, nil
}

// GenerateStaffReport produces a staff-facing analysis over a respondent's
// whole history. An empty history and generation failures both degrade to
// placeholder text.
func (s *AssessmentService) GenerateStaffReport(ctx context.Context, userID string) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	results, err := s.results.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return noHistoryText, nil
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return "", err
	}

	payload := s.builder.BuildHistoryContext(user, results, settings)

	text, err := s.generator.GenerateHistoryReport(ctx, payload)
	if err != nil {
		s.logger.Warn("staff report generation degraded",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return reportUnavailableText, nil
	}

	return text, nil
}
