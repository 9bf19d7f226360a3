package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"go.uber.org/zap"

	"github.com/stresscheck/backend/internal/report"
	"github.com/stresscheck/backend/pkg/model"
)

// ErrUnavailable is returned when no text-generation backend is configured
var ErrUnavailable = errors.New("text generation unavailable")

// Temperatures tuned per prompt: feedback stays warmer and more varied,
// staff reports stay factual.
const (
	feedbackTemperature = 0.7
	reportTemperature   = 0.5
)

// Generator produces narrative text from report payloads. Failures are the
// caller's to degrade; a result with empty feedback stays valid.
type Generator interface {
	GenerateIndividualFeedback(ctx context.Context, payload *report.IndividualContext) (string, error)
	GenerateHistoryReport(ctx context.Context, payload *report.HistoryContext) (string, error)
}

// CompletionClient is the chat-completion capability the generator needs
type CompletionClient interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion, temperature float64) (string, error)
}

// OpenAIGenerator renders report payloads into prompts and sends them to a
// chat-completion backend.
type OpenAIGenerator struct {
	client CompletionClient
	logger *zap.Logger
}

// NewOpenAIGenerator creates a new OpenAIGenerator
func NewOpenAIGenerator(client CompletionClient, logger *zap.Logger) *OpenAIGenerator {
	return &OpenAIGenerator{
		client: client,
		logger: logger,
	}
}

// GenerateIndividualFeedback produces short self-care feedback for one
// assessment result.
func (g *OpenAIGenerator) GenerateIndividualFeedback(ctx context.Context, payload *report.IndividualContext) (string, error) {
	prompt := renderIndividualPrompt(payload)

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage(prompt),
	}

	text, err := g.client.Complete(ctx, messages, feedbackTemperature)
	if err != nil {
		g.logger.Error("individual feedback generation failed", zap.Error(err))
		return "", fmt.Errorf("individual feedback generation failed: %w", err)
	}

	return text, nil
}

// GenerateHistoryReport produces a structured staff report over a
// respondent's assessment history.
func (g *OpenAIGenerator) GenerateHistoryReport(ctx context.Context, payload *report.HistoryContext) (string, error) {
	prompt := renderHistoryPrompt(payload)

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage(prompt),
	}

	text, err := g.client.Complete(ctx, messages, reportTemperature)
	if err != nil {
		g.logger.Error("history report generation failed", zap.Error(err))
		return "", fmt.Errorf("history report generation failed: %w", err)
	}

	return text, nil
}

func renderIndividualPrompt(payload *report.IndividualContext) string {
	var details strings.Builder
	for _, answer := range payload.Answers {
		details.WriteString(fmt.Sprintf("- %s: %d\n", answer.Question, answer.Value))
	}

	return fmt.Sprintf(`以下のストレスチェック結果に対して、利用者が自己理解を深め、安心できるようなフィードバックを提供してください。
結果をポジティブに捉え直し、具体的なセルフケアのヒントを1つか2つ提案してください。

あなたのペルソナ: %s

ストレスレベル: %s
合計スコア: %d / %d

回答詳細:
%s
フィードバックは、200字程度で簡潔にお願いします。
`, payload.Instruction, levelLabel(payload.StressLevel), payload.Score, payload.MaxScore, details.String())
}

func renderHistoryPrompt(payload *report.HistoryContext) string {
	var history strings.Builder
	for _, entry := range payload.History {
		history.WriteString(fmt.Sprintf("日付: %s, ストレスレベル: %s, スコア: %d/%d (%d%%)\n",
			entry.Date.Format("2006/01/02"), levelLabel(entry.StressLevel), entry.Score, entry.MaxScore, entry.Percentage))
	}

	var details strings.Builder
	for _, answer := range payload.LatestAnswers {
		details.WriteString(fmt.Sprintf("- %s「%s」: %d\n", answer.Category, answer.Question, answer.Value))
	}

	return fmt.Sprintf(`あなたは経験豊富な産業カウンセラーです。就労支援施設の担当者向けに、以下のデータから利用者の状況を分析し、支援のヒントとなるレポートを作成してください。レポートは個人が特定されないよう、IDのみを使用してください。

**利用者情報:**
- 利用者ID: %s

**ストレスレベル履歴:**
%s
**最新の回答内容 (日付: %s, スコア: %d/%d, %d%%):**
%s
**レポート作成指示:**
厚生労働省の指針を参考に、以下の4つの観点について、専門的かつ構造化された分析と具体的なアドバイスを提供してください。担当者が次のアクションを考えやすくなるように、客観的な事実と専門的な洞察を組み合わせて記述してください。

1.  **仕事の負担:**
    仕事の量的・質的負担、裁量権、対人関係など、仕事に関連するストレス要因を分析してください。特に注意すべき項目を指摘してください。

2.  **心身の反応:**
    心理的なストレス反応（イライラ、不安、抑うつなど）と身体的な愁訴（疲労感、不眠、痛みなど）の両面から、現在の心身の状態を評価してください。

3.  **周囲のサポート:**
    職場の上司や同僚、そして家族や友人からのサポートがどの程度得られているかを評価してください。サポートリソースの活用状況について考察してください。

4.  **具体的なアドバイス:**
    上記1〜3の分析に基づき、担当者がこの利用者に対して行うべき具体的な支援や面談での質問事項などを提案してください。短期的な介入と中長期的な視点の両方からアドバイスをお願いします。
`, payload.UserID, history.String(), payload.LatestDate.Format("2006/01/02"), payload.LatestScore, payload.LatestMaxScore, payload.LatestPercentage, details.String())
}

func levelLabel(level model.StressLevel) string {
	switch level {
	case model.StressLevelHigh:
		return "高"
	case model.StressLevelMedium:
		return "中"
	default:
		return "低"
	}
}

// DisabledGenerator is used when no API key is configured. Every call
// fails with ErrUnavailable, which callers degrade to placeholder text.
type DisabledGenerator struct{}

// GenerateIndividualFeedback always fails with ErrUnavailable
func (DisabledGenerator) GenerateIndividualFeedback(ctx context.Context, payload *report.IndividualContext) (string, error) {
	return "", ErrUnavailable
}

// GenerateHistoryReport always fails with ErrUnavailable
func (DisabledGenerator) GenerateHistoryReport(ctx context.Context, payload *report.HistoryContext) (string, error) {
	return "", ErrUnavailable
}
