package catalog

import (
	"github.com/stresscheck/backend/pkg/model"
)

// Catalog is the immutable registry of all stress-check questions.
// It is built once at startup and never mutated afterwards, so it is safe
// for concurrent readers without locking.
type Catalog struct {
	questions []model.Question
	byID      map[int]model.Question
}

// New creates a Catalog with the standard 57-item question set
// (厚生労働省「職業性ストレス簡易調査票」).
func New() *Catalog {
	return newCatalog(standardQuestions())
}

// NewWithQuestions creates a Catalog from an explicit question set.
// Used by tests that need a reduced catalog.
func NewWithQuestions(questions []model.Question) *Catalog {
	return newCatalog(questions)
}

func newCatalog(questions []model.Question) *Catalog {
	byID := make(map[int]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &Catalog{
		questions: questions,
		byID:      byID,
	}
}

// Get returns the question with the given id
func (c *Catalog) Get(id int) (model.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Contains reports whether the catalog defines a question with the given id
func (c *Catalog) Contains(id int) bool {
	_, ok := c.byID[id]
	return ok
}

// All returns the full question set in catalog order.
// The returned slice is a copy; callers may not mutate catalog state.
func (c *Catalog) All() []model.Question {
	out := make([]model.Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// Resolve maps question ids to questions, preserving the given order.
// Ids not present in the catalog are dropped.
func (c *Catalog) Resolve(ids []int) []model.Question {
	out := make([]model.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := c.byID[id]; ok {
			out = append(out, q)
		}
	}
	return out
}

// Len returns the number of questions in the catalog
func (c *Catalog) Len() int {
	return len(c.questions)
}

// standardQuestions returns the 57 items of the Brief Job Stress
// Questionnaire. Section tags replace the id-range arithmetic the survey is
// usually described with, so scoring does not depend on id ordering.
func standardQuestions() []model.Question {
	return []model.Question{
		// A: 仕事のストレス要因
		{ID: 1, Text: "非常にたくさんの仕事をしなければならない", Category: "量", Section: model.SectionStressFactor, Inverted: false},
		{ID: 2, Text: "時間内に仕事が処理しきれない", Category: "量", Section: model.SectionStressFactor, Inverted: false},
		{ID: 3, Text: "一生懸命働かなければならない", Category: "量", Section: model.SectionStressFactor, Inverted: false},
		{ID: 4, Text: "かなり注意を集中する必要がある", Category: "質", Section: model.SectionStressFactor, Inverted: false},
		{ID: 5, Text: "高度の知識や技術が必要なむずかしい仕事だ", Category: "質", Section: model.SectionStressFactor, Inverted: false},
		{ID: 6, Text: "勤務時間中はいつも仕事のことを考えていなければならない", Category: "質", Section: model.SectionStressFactor, Inverted: false},
		{ID: 7, Text: "からだを大変よく使う仕事だ", Category: "身体", Section: model.SectionStressFactor, Inverted: false},
		{ID: 8, Text: "自分のペースで仕事ができる", Category: "裁量", Section: model.SectionStressFactor, Inverted: true},
		{ID: 9, Text: "自分で仕事の順番・やり方を決めることができる", Category: "裁量", Section: model.SectionStressFactor, Inverted: true},
		{ID: 10, Text: "職場の仕事の方針に自分の意見を反映できる", Category: "裁量", Section: model.SectionStressFactor, Inverted: true},
		{ID: 11, Text: "自分の技能や知識を仕事で使うことが少ない", Category: "技能", Section: model.SectionStressFactor, Inverted: false},
		{ID: 12, Text: "私の部署内で意見のくい違いがある", Category: "対人", Section: model.SectionStressFactor, Inverted: false},
		{ID: 13, Text: "私の部署と他の部署とはうまが合わない", Category: "対人", Section: model.SectionStressFactor, Inverted: false},
		{ID: 14, Text: "私の職場の雰囲気は友好的ではない", Category: "対人", Section: model.SectionStressFactor, Inverted: false},
		{ID: 15, Text: "私の職場の作業環境（騒音、照明、温度、換気など）はよくない", Category: "環境", Section: model.SectionStressFactor, Inverted: false},
		{ID: 16, Text: "仕事の内容は自分にあっている", Category: "適合", Section: model.SectionStressFactor, Inverted: true},
		{ID: 17, Text: "働きがいのある仕事だ", Category: "やりがい", Section: model.SectionStressFactor, Inverted: true},

		// B: 心身のストレス反応
		{ID: 18, Text: "活気がわいてくる", Category: "心理", Section: model.SectionStressReaction, Inverted: true},
		{ID: 19, Text: "元気がいっぱいだ", Category: "心理", Section: model.SectionStressReaction, Inverted: true},
		{ID: 20, Text: "生き生きする", Category: "心理", Section: model.SectionStressReaction, Inverted: true},
		{ID: 21, Text: "怒りを感じる", Category: "心理", Section: model.SectionStressReaction, Inverted: false},
		{ID: 22, Text: "内心腹立たしい", Category: "心理", Section: model.SectionStressReaction, Inverted: false},
		{ID: 23, Text: "イライラしている", Category: "心理", Section: model.SectionStressReaction, Inverted: false},
		{ID: 24, Text: "ひどく疲れた", Category: "心理", Section: model.SectionStressReaction, Inverted: false},
		{ID: 25, Text: "へとへとだ", Category: "心理", Section: model.SectionStressReaction, Inverted: false},
		{ID: 26, Text: "だるい", Category: "心理", Section: model.SectionStressReaction, Inverted: false},
		{ID: 27, Text: "気がはりつめている", Category: "心理", Section: model.SectionStressReaction, Inverted: false},
		{ID: 28, Text: "不安だ", Category: "心理", Section: model.SectionStressReaction, Inverted: false},
		{ID: 29, Text: "落着かない", Category: "心理", Section: model.SectionStressReaction, Inverted: false},
		{ID: 30, Text: "ゆううつだ", Category: "心理", Section: model.SectionStressReaction, Inverted: false},
		{ID: 31, Text: "何をするのも面倒だ", Category: "心理", Section: model.SectionStressReaction, Inverted: false},
		{ID: 32, Text: "物事に集中できない", Category: "心理", Section: model.SectionStressReaction, Inverted: false},
		{ID: 33, Text: "気分が晴れない", Category: "心理", Section: model.SectionStressReaction, Inverted: false},
		{ID: 34, Text: "仕事が手につかない", Category: "心理", Section: model.SectionStressReaction, Inverted: false},
		{ID: 35, Text: "悲しいと感じる", Category: "心理", Section: model.SectionStressReaction, Inverted: false},
		{ID: 36, Text: "めまいがする", Category: "身体", Section: model.SectionStressReaction, Inverted: false},
		{ID: 37, Text: "体のふしぶしが痛む", Category: "身体", Section: model.SectionStressReaction, Inverted: false},
		{ID: 38, Text: "頭が重かったり頭痛がする", Category: "身体", Section: model.SectionStressReaction, Inverted: false},
		{ID: 39, Text: "首筋や肩がこる", Category: "身体", Section: model.SectionStressReaction, Inverted: false},
		{ID: 40, Text: "腰が痛い", Category: "身体", Section: model.SectionStressReaction, Inverted: false},
		{ID: 41, Text: "目が疲れる", Category: "身体", Section: model.SectionStressReaction, Inverted: false},
		{ID: 42, Text: "動悸や息切れがする", Category: "身体", Section: model.SectionStressReaction, Inverted: false},
		{ID: 43, Text: "胃腸の具合が悪い", Category: "身体", Section: model.SectionStressReaction, Inverted: false},
		{ID: 44, Text: "食欲がない", Category: "身体", Section: model.SectionStressReaction, Inverted: false},
		{ID: 45, Text: "便秘や下痢をする", Category: "身体", Section: model.SectionStressReaction, Inverted: false},
		{ID: 46, Text: "よく眠れない", Category: "身体", Section: model.SectionStressReaction, Inverted: false},

		// C: 周囲のサポート
		{ID: 47, Text: "上司にどのくらい気軽に話ができますか", Category: "上司", Section: model.SectionSupport, Inverted: true},
		{ID: 48, Text: "上司は、あなたが困った時にどのくらい頼りになりますか", Category: "上司", Section: model.SectionSupport, Inverted: true},
		{ID: 49, Text: "上司は、あなたの個人的な問題をどのくらい聞いてくれますか", Category: "上司", Section: model.SectionSupport, Inverted: true},
		{ID: 50, Text: "職場の同僚にどのくらい気軽に話ができますか", Category: "同僚", Section: model.SectionSupport, Inverted: true},
		{ID: 51, Text: "職場の同僚は、あなたが困った時にどのくらい頼りになりますか", Category: "同僚", Section: model.SectionSupport, Inverted: true},
		{ID: 52, Text: "職場の同僚は、あなたの個人的な問題をどのくらい聞いてくれますか", Category: "同僚", Section: model.SectionSupport, Inverted: true},
		{ID: 53, Text: "配偶者、家族、友人にどのくらい気軽に話ができますか", Category: "家族", Section: model.SectionSupport, Inverted: true},
		{ID: 54, Text: "配偶者、家族、友人は、あなたが困った時にどのくらい頼りになりますか", Category: "家族", Section: model.SectionSupport, Inverted: true},
		{ID: 55, Text: "配偶者、家族、友人は、あなたの個人的な問題をどのくらい聞いてくれますか", Category: "家族", Section: model.SectionSupport, Inverted: true},

		// D: 満足度
		{ID: 56, Text: "仕事に満足だ", Category: "満足度", Section: model.SectionSatisfaction, Inverted: true},
		{ID: 57, Text: "家庭生活に満足だ", Category: "満足度", Section: model.SectionSatisfaction, Inverted: true},
	}
}
