package scoring

import (
	"github.com/stresscheck/backend/internal/catalog"
	"github.com/stresscheck/backend/pkg/model"
)

// Likert scale bounds for every question
const (
	MinAnswerValue = 1
	MaxAnswerValue = 4
)

// Classification thresholds as inclusive lower bounds on the score
// percentage. Calibrated against the standard 29-item stress-reaction
// subscale (77/116 and 60/116).
const (
	HighThresholdPercent   = 66.0
	MediumThresholdPercent = 52.0
)

// Outcome is the result of scoring one answer set
type Outcome struct {
	Score       int
	MaxScore    int
	StressLevel model.StressLevel
}

// Normalize applies the last-write-wins rule for duplicate question ids:
// the position of the first occurrence is kept, the value of the last one
// wins. The returned slice is what gets scored and persisted, so stored
// answers always match the score computed from them.
func Normalize(answers []model.Answer) []model.Answer {
	out := make([]model.Answer, 0, len(answers))
	index := make(map[int]int, len(answers))
	for _, a := range answers {
		if i, ok := index[a.QuestionID]; ok {
			out[i].Value = a.Value
			continue
		}
		index[a.QuestionID] = len(out)
		out = append(out, a)
	}
	return out
}

// Compute scores an answer set against the catalog.
//
// Only answers to stress-reaction questions contribute. Inverted questions
// contribute 5 - value so that a high raw answer on a positively phrased
// item still maps to low stress. Answers whose question id is not in the
// catalog are skipped; this is deliberate tolerance, not an error.
// MaxScore is 4 times the number of answers actually matched, so the
// denominator follows however many in-scope questions were answered.
//
// Compute is pure and total: no I/O, deterministic, never fails.
func Compute(cat *catalog.Catalog, answers []model.Answer) Outcome {
	score := 0
	matched := 0

	for _, answer := range Normalize(answers) {
		question, ok := cat.Get(answer.QuestionID)
		if !ok || question.Section != model.SectionStressReaction {
			continue
		}
		if question.Inverted {
			score += (MaxAnswerValue + 1) - answer.Value
		} else {
			score += answer.Value
		}
		matched++
	}

	maxScore := matched * MaxAnswerValue

	return Outcome{
		Score:       score,
		MaxScore:    maxScore,
		StressLevel: Classify(score, maxScore),
	}
}

// Percentage returns score/maxScore as a percentage, 0 when maxScore is 0
func Percentage(score, maxScore int) float64 {
	if maxScore <= 0 {
		return 0
	}
	return float64(score) / float64(maxScore) * 100
}

// Classify maps a score pair to a stress level. Total: any pair of ints
// yields a level, with maxScore <= 0 classified LOW.
func Classify(score, maxScore int) model.StressLevel {
	percentage := Percentage(score, maxScore)
	switch {
	case percentage >= HighThresholdPercent:
		return model.StressLevelHigh
	case percentage >= MediumThresholdPercent:
		return model.StressLevelMedium
	default:
		return model.StressLevelLow
	}
}
