package integration_tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stresscheck/backend/pkg/model"
)

// TestAssessmentFlowIntegration covers the full respondent journey: user
// creation, questionnaire submission, history retrieval and feedback
// generation with a disabled generator.
func TestAssessmentFlowIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	db, cleanup := setupTestDatabase(t, ctx)
	defer cleanup()

	router := setupRouter(db)

	t.Run("Complete assessment flow", func(t *testing.T) {
		// Step 1: Create a respondent
		t.Log("Step 1: Creating respondent")
		userID := createUser(t, router, "田中太郎", model.RoleUser)
		require.Len(t, userID, 4)

		// Step 2: Fetch the active questionnaire
		t.Log("Step 2: Fetching active questionnaire")
		w := performRequest(router, http.MethodGet, "/api/v1/questionnaires/active", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var active struct {
			Questionnaire model.Questionnaire `json:"questionnaire"`
			Questions     []model.Question    `json:"questions"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &active))
		assert.Equal(t, "q1", active.Questionnaire.ID)
		assert.Len(t, active.Questions, 57)

		// Step 3: Submit answers for every question
		t.Log("Step 3: Submitting assessment")
		answers := make([]model.Answer, 0, len(active.Questions))
		for _, q := range active.Questions {
			answers = append(answers, model.Answer{QuestionID: q.ID, Value: 2})
		}

		result := submitAssessment(t, router, userID, answers)
		assert.Equal(t, 116, result.MaxScore, "29 stress-reaction items at 4 points each")
		assert.Equal(t, userID, result.UserID)
		assert.NotEmpty(t, result.ID)

		// Step 4: Submit a second, higher-stress assessment
		t.Log("Step 4: Submitting second assessment")
		highAnswers := make([]model.Answer, 0, len(active.Questions))
		for _, q := range active.Questions {
			value := 2
			if q.Section == model.SectionStressReaction && !q.Inverted {
				value = 4
			}
			if q.Inverted {
				value = 1
			}
			highAnswers = append(highAnswers, model.Answer{QuestionID: q.ID, Value: value})
		}

		highResult := submitAssessment(t, router, userID, highAnswers)
		assert.Equal(t, model.StressLevelHigh, highResult.StressLevel)
		assert.Equal(t, 116, highResult.Score)

		// Step 5: History is ascending and complete
		t.Log("Step 5: Verifying history")
		w = performRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/users/%s/results", userID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var history []model.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
		require.Len(t, history, 2)
		assert.Equal(t, result.ID, history[0].ID)
		assert.Equal(t, highResult.ID, history[1].ID)
		assert.False(t, history[1].Date.Before(history[0].Date))

		// Step 6: Feedback degrades to placeholder with generation disabled
		t.Log("Step 6: Generating feedback")
		w = performRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/results/%s/feedback", result.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var feedback struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feedback))
		assert.Contains(t, feedback.Text, "エラーが発生しました")

		// Step 7: Staff report also degrades to placeholder
		t.Log("Step 7: Generating staff report")
		w = performRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/users/%s/report", userID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feedback))
		assert.Contains(t, feedback.Text, "レポート生成中にエラー")

		// Step 8: Dashboard trend reflects both assessments
		t.Log("Step 8: Checking dashboard trend")
		w = performRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/users/%s/dashboard?days=90", userID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var trend struct {
			Period      string `json:"period"`
			ResultCount int    `json:"result_count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trend))
		assert.Equal(t, "90 days", trend.Period)
		assert.Equal(t, 2, trend.ResultCount)
	})

	t.Run("Invalid submissions are rejected", func(t *testing.T) {
		userID := createUser(t, router, "検証用", model.RoleUser)

		body, _ := json.Marshal(map[string]any{
			"user_id": userID,
			"answers": []model.Answer{{QuestionID: 1, Value: 9}},
		})
		w := performRequest(router, http.MethodPost, "/api/v1/assessments", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		body, _ = json.Marshal(map[string]any{
			"user_id": userID,
			"answers": []model.Answer{},
		})
		w = performRequest(router, http.MethodPost, "/api/v1/assessments", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Staff report for empty history", func(t *testing.T) {
		userID := createUser(t, router, "履歴なし", model.RoleUser)

		w := performRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/users/%s/report", userID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var feedback struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feedback))
		assert.Equal(t, "分析対象のデータがありません。", feedback.Text)
	})

	t.Run("User deletion cascades to results", func(t *testing.T) {
		userID := createUser(t, router, "削除対象", model.RoleUser)
		submitAssessment(t, router, userID, []model.Answer{{QuestionID: 21, Value: 3}})

		w := performRequest(router, http.MethodDelete, fmt.Sprintf("/api/v1/users/%s", userID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var count int
		err := db.QueryRow(ctx, `SELECT COUNT(*) FROM results WHERE user_id = $1`, userID).Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count, "results should be removed with their user")
	})
}

func performRequest(router http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createUser(t *testing.T, router http.Handler, name string, role model.Role) string {
	body, err := json.Marshal(map[string]any{
		"name": name,
		"role": role,
	})
	require.NoError(t, err)

	w := performRequest(router, http.MethodPost, "/api/v1/users", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var user model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	require.NotEmpty(t, user.ID)
	return user.ID
}

func submitAssessment(t *testing.T, router http.Handler, userID string, answers []model.Answer) model.Result {
	body, err := json.Marshal(map[string]any{
		"user_id": userID,
		"answers": answers,
	})
	require.NoError(t, err)

	w := performRequest(router, http.MethodPost, "/api/v1/assessments", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var result model.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return result
}
