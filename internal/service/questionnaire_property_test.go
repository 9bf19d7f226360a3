package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"

	"github.com/stresscheck/backend/internal/catalog"
	"github.com/stresscheck/backend/internal/repository"
	"github.com/stresscheck/backend/pkg/model"
)

// fakeQuestionnaireStore is an in-memory store that mirrors the
// single-active semantics of the SQL implementation.
type fakeQuestionnaireStore struct {
	mu             sync.Mutex
	questionnaires map[string]*model.Questionnaire
}

func newFakeQuestionnaireStore() *fakeQuestionnaireStore {
	return &fakeQuestionnaireStore{questionnaires: make(map[string]*model.Questionnaire)}
}

func (s *fakeQuestionnaireStore) Create(ctx context.Context, q *model.Questionnaire) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *q
	s.questionnaires[q.ID] = &copied
	return nil
}

func (s *fakeQuestionnaireStore) GetByID(ctx context.Context, id string) (*model.Questionnaire, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questionnaires[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *q
	return &copied, nil
}

func (s *fakeQuestionnaireStore) GetActive(ctx context.Context) (*model.Questionnaire, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.questionnaires {
		if q.IsActive {
			copied := *q
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeQuestionnaireStore) List(ctx context.Context) ([]model.Questionnaire, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Questionnaire, 0, len(s.questionnaires))
	for _, q := range s.questionnaires {
		out = append(out, *q)
	}
	return out, nil
}

func (s *fakeQuestionnaireStore) Activate(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok := s.questionnaires[id]
	if !ok {
		return repository.ErrNotFound
	}
	for _, q := range s.questionnaires {
		q.IsActive = false
	}
	target.IsActive = true
	return nil
}

func (s *fakeQuestionnaireStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questionnaires[id]
	if !ok || q.IsDefault || q.IsActive {
		return false, nil
	}
	delete(s.questionnaires, id)
	return true, nil
}

// TestProperty_SingleActiveQuestionnaire verifies that after any sequence
// of activations exactly one questionnaire is active, and it is the last
// one activated.
func TestProperty_SingleActiveQuestionnaire(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("exactly one active after activation sequence", prop.ForAll(
		func(activations []int) bool {
			store := newFakeQuestionnaireStore()
			service := NewQuestionnaireService(store, catalog.New(), zap.NewNop())
			ctx := context.Background()

			const templates = 5
			ids := make([]string, 0, templates)
			for i := 0; i < templates; i++ {
				q, err := service.Create(ctx, fmt.Sprintf("テンプレート%d", i), "", []int{1, 2, 3})
				if err != nil {
					return false
				}
				ids = append(ids, q.ID)
			}

			if len(activations) == 0 {
				return true
			}

			var lastActivated string
			for _, pick := range activations {
				id := ids[pick%templates]
				if err := service.Activate(ctx, id); err != nil {
					return false
				}
				lastActivated = id
			}

			all, err := service.List(ctx)
			if err != nil {
				return false
			}

			activeCount := 0
			var activeID string
			for _, q := range all {
				if q.IsActive {
					activeCount++
					activeID = q.ID
				}
			}

			return activeCount == 1 && activeID == lastActivated
		},
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.Property("activation is idempotent", prop.ForAll(
		func(repeats int) bool {
			store := newFakeQuestionnaireStore()
			service := NewQuestionnaireService(store, catalog.New(), zap.NewNop())
			ctx := context.Background()

			q, err := service.Create(ctx, "標準", "", []int{1})
			if err != nil {
				return false
			}

			for i := 0; i < repeats; i++ {
				if err := service.Activate(ctx, q.ID); err != nil {
					return false
				}
			}

			active, err := store.GetActive(ctx)
			if repeats == 0 {
				return err != nil
			}
			return err == nil && active.ID == q.ID
		},
		gen.IntRange(0, 10),
	))

	properties.TestingRun(t)
}
