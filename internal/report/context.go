package report

import (
	"math"
	"time"

	"github.com/stresscheck/backend/internal/catalog"
	"github.com/stresscheck/backend/pkg/model"
)

// AnswerDetail is one resolved answer for narrative consumption. Value is
// the raw respondent answer; inversion is a scoring concern and is not
// applied here, so the narrative sees what the respondent actually said.
type AnswerDetail struct {
	QuestionID int    `json:"question_id"`
	Question   string `json:"question"`
	Category   string `json:"category"`
	Value      int    `json:"value"`
}

// IndividualContext is the payload for feedback on a single assessment
type IndividualContext struct {
	Instruction string            `json:"instruction"`
	StressLevel model.StressLevel `json:"stress_level"`
	Score       int               `json:"score"`
	MaxScore    int               `json:"max_score"`
	Answers     []AnswerDetail    `json:"answers"`
}

// HistorySummary is one line of a respondent's assessment history
type HistorySummary struct {
	Date        time.Time         `json:"date"`
	StressLevel model.StressLevel `json:"stress_level"`
	Score       int               `json:"score"`
	MaxScore    int               `json:"max_score"`
	Percentage  int               `json:"percentage"`
}

// HistoryContext is the payload for a staff report over a respondent's
// history. Only the most recent result carries a full answer breakdown.
type HistoryContext struct {
	Instruction      string           `json:"instruction"`
	UserID           string           `json:"user_id"`
	History          []HistorySummary `json:"history"`
	LatestDate       time.Time        `json:"latest_date"`
	LatestScore      int              `json:"latest_score"`
	LatestMaxScore   int              `json:"latest_max_score"`
	LatestPercentage int              `json:"latest_percentage"`
	LatestAnswers    []AnswerDetail   `json:"latest_answers"`
}

// Builder assembles prompt payloads from results and settings. It is pure
// and safe for concurrent use.
type Builder struct {
	catalog *catalog.Catalog
}

// NewBuilder creates a Builder over the question catalog
func NewBuilder(cat *catalog.Catalog) *Builder {
	return &Builder{catalog: cat}
}

// Instruction resolves the persona instruction: the custom prompt is used
// verbatim when non-empty, otherwise the persona. No merging.
func (b *Builder) Instruction(settings *model.AISettings) string {
	if settings == nil {
		return ""
	}
	if settings.CustomPrompt != "" {
		return settings.CustomPrompt
	}
	return settings.Persona
}

// BuildIndividualContext assembles the payload for single-result feedback.
// Answers referencing unknown question ids are dropped, never failed on.
func (b *Builder) BuildIndividualContext(result *model.Result, settings *model.AISettings) *IndividualContext {
	return &IndividualContext{
		Instruction: b.Instruction(settings),
		StressLevel: result.StressLevel,
		Score:       result.Score,
		MaxScore:    result.MaxScore,
		Answers:     b.resolveAnswers(result.Answers),
	}
}

// BuildHistoryContext assembles the payload for a staff history report.
// Results must be in ascending date order and non-empty; the last element
// is the most recent assessment.
func (b *Builder) BuildHistoryContext(user *model.User, results []model.Result, settings *model.AISettings) *HistoryContext {
	history := make([]HistorySummary, 0, len(results))
	for _, r := range results {
		history = append(history, HistorySummary{
			Date:        r.Date,
			StressLevel: r.StressLevel,
			Score:       r.Score,
			MaxScore:    r.MaxScore,
			Percentage:  percentage(r.Score, r.MaxScore),
		})
	}

	latest := results[len(results)-1]

	return &HistoryContext{
		Instruction:      b.Instruction(settings),
		UserID:           user.ID,
		History:          history,
		LatestDate:       latest.Date,
		LatestScore:      latest.Score,
		LatestMaxScore:   latest.MaxScore,
		LatestPercentage: percentage(latest.Score, latest.MaxScore),
		LatestAnswers:    b.resolveAnswers(latest.Answers),
	}
}

func (b *Builder) resolveAnswers(answers []model.Answer) []AnswerDetail {
	details := make([]AnswerDetail, 0, len(answers))
	for _, answer := range answers {
		question, ok := b.catalog.Get(answer.QuestionID)
		if !ok {
			continue
		}
		details = append(details, AnswerDetail{
			QuestionID: answer.QuestionID,
			Question:   question.Text,
			Category:   question.Category,
			Value:      answer.Value,
		})
	}
	return details
}

func percentage(score, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(maxScore) * 100))
}
