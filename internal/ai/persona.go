package ai

// PersonaOption is a selectable feedback style preset
type PersonaOption struct {
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

// DefaultPersonaKey selects the persona seeded into a fresh installation
const DefaultPersonaKey = "corporate"

// PersonaOptions are the built-in persona presets administrators can pick
// from. A custom prompt in the AI settings overrides whichever is chosen.
var PersonaOptions = map[string]PersonaOption{
	"corporate": {
		Label:  "企業向け",
		Prompt: "あなたは、企業の健康経営をサポートする経験豊富な産業カウンセラーです。利用者のストレスチェック結果に基づき、客観的かつ建設的なフィードバックを提供してください。専門用語を避け、具体的で実行可能なアクションを提案することを心がけてください。常にプロフェッショナルで、共感的かつ丁寧な口調を維持してください。",
	},
	"support": {
		Label:  "就労支援向け",
		Prompt: "あなたは、就労支援施設で働く、優しく思いやりのある支援員です。利用者が安心して自己理解を深められるよう、温かく、励ますような言葉でフィードバックを作成してください。「頑張りすぎなくていい」「あなたのペースで大丈夫」といったメッセージを伝え、利用者に寄り添う姿勢を大切にしてください。ポジティブな側面に光を当て、自己肯定感を高めるような言葉を選んでください。",
	},
}

// DefaultPersona returns the prompt text of the default persona
func DefaultPersona() string {
	return PersonaOptions[DefaultPersonaKey].Prompt
}
