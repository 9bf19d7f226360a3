package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stresscheck/backend/pkg/model"
)

func TestNew_StandardCatalog(t *testing.T) {
	cat := New()

	assert.Equal(t, 57, cat.Len())

	// The stress-reaction subscale covers 29 items, three of them inverted.
	reaction := 0
	inverted := 0
	for _, q := range cat.All() {
		if q.Section == model.SectionStressReaction {
			reaction++
			if q.Inverted {
				inverted++
			}
		}
	}
	assert.Equal(t, 29, reaction)
	assert.Equal(t, 3, inverted)
}

func TestGet(t *testing.T) {
	cat := New()

	q, ok := cat.Get(18)
	assert.True(t, ok)
	assert.Equal(t, "活気がわいてくる", q.Text)
	assert.True(t, q.Inverted)
	assert.Equal(t, model.SectionStressReaction, q.Section)

	_, ok = cat.Get(9999)
	assert.False(t, ok)
}

func TestResolve_PreservesOrderAndDropsUnknown(t *testing.T) {
	cat := New()

	questions := cat.Resolve([]int{21, 9999, 18})

	assert.Len(t, questions, 2)
	assert.Equal(t, 21, questions[0].ID)
	assert.Equal(t, 18, questions[1].ID)
}

func TestAll_ReturnsCopy(t *testing.T) {
	cat := New()

	all := cat.All()
	all[0].Text = "mutated"

	fresh, _ := cat.Get(all[0].ID)
	assert.NotEqual(t, "mutated", fresh.Text)
}
