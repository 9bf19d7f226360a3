package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stresscheck/backend/internal/catalog"
	"github.com/stresscheck/backend/pkg/model"
)

func TestInstruction_CustomPromptOverridesPersona(t *testing.T) {
	builder := NewBuilder(catalog.New())

	assert.Equal(t, "ペルソナ", builder.Instruction(&model.AISettings{Persona: "ペルソナ"}))
	assert.Equal(t, "カスタム", builder.Instruction(&model.AISettings{Persona: "ペルソナ", CustomPrompt: "カスタム"}))
	assert.Equal(t, "", builder.Instruction(nil))
}

func TestBuildIndividualContext_DropsUnknownQuestions(t *testing.T) {
	builder := NewBuilder(catalog.New())

	result := &model.Result{
		Answers: []model.Answer{
			{QuestionID: 18, Value: 4},
			{QuestionID: 9999, Value: 2},
		},
		Score:       1,
		MaxScore:    4,
		StressLevel: model.StressLevelLow,
	}

	payload := builder.BuildIndividualContext(result, &model.AISettings{Persona: "支援員"})

	assert.Len(t, payload.Answers, 1)
	assert.Equal(t, 18, payload.Answers[0].QuestionID)
	assert.Equal(t, "支援員", payload.Instruction)
}

func TestBuildIndividualContext_KeepsRawAnswerValues(t *testing.T) {
	builder := NewBuilder(catalog.New())

	// Question 18 is inverted for scoring; the narrative payload must still
	// carry what the respondent actually answered.
	result := &model.Result{
		Answers:     []model.Answer{{QuestionID: 18, Value: 4}},
		Score:       1,
		MaxScore:    4,
		StressLevel: model.StressLevelLow,
	}

	payload := builder.BuildIndividualContext(result, nil)

	assert.Equal(t, 4, payload.Answers[0].Value)
}

func TestBuildHistoryContext_LatestGetsFullBreakdown(t *testing.T) {
	builder := NewBuilder(catalog.New())

	user := &model.User{ID: "AB12", Role: model.RoleUser}
	results := []model.Result{
		{
			Date:        time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
			Answers:     []model.Answer{{QuestionID: 21, Value: 1}},
			Score:       1,
			MaxScore:    4,
			StressLevel: model.StressLevelLow,
		},
		{
			Date:        time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
			Answers:     []model.Answer{{QuestionID: 21, Value: 4}, {QuestionID: 22, Value: 4}},
			Score:       8,
			MaxScore:    8,
			StressLevel: model.StressLevelHigh,
		},
	}

	payload := builder.BuildHistoryContext(user, results, &model.AISettings{Persona: "支援員"})

	assert.Equal(t, "AB12", payload.UserID)
	assert.Len(t, payload.History, 2)
	assert.Equal(t, 25, payload.History[0].Percentage)
	assert.Equal(t, 100, payload.History[1].Percentage)

	assert.Equal(t, results[1].Date, payload.LatestDate)
	assert.Equal(t, 8, payload.LatestScore)
	assert.Equal(t, 100, payload.LatestPercentage)
	assert.Len(t, payload.LatestAnswers, 2)
}

func TestBuildHistoryContext_ZeroMaxScorePercentage(t *testing.T) {
	builder := NewBuilder(catalog.New())

	results := []model.Result{
		{
			Date:        time.Now(),
			Answers:     []model.Answer{{QuestionID: 1, Value: 2}},
			Score:       0,
			MaxScore:    0,
			StressLevel: model.StressLevelLow,
		},
	}

	payload := builder.BuildHistoryContext(&model.User{ID: "AB12"}, results, nil)

	assert.Equal(t, 0, payload.History[0].Percentage)
	assert.Equal(t, 0, payload.LatestPercentage)
}
