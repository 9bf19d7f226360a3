package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/stresscheck/backend/pkg/model"
)

// SettingsWriter is the persistence capability for the settings singleton
type SettingsWriter interface {
	Get(ctx context.Context) (*model.AISettings, error)
	Save(ctx context.Context, settings *model.AISettings) error
}

// SettingsService manages the administrator-owned AI settings
type SettingsService struct {
	store  SettingsWriter
	logger *zap.Logger
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(store SettingsWriter, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		store:  store,
		logger: logger,
	}
}

// Get returns the current AI settings
func (s *SettingsService) Get(ctx context.Context) (*model.AISettings, error) {
	return s.store.Get(ctx)
}

// Update replaces the AI settings. The persona must stay non-empty so the
// custom-prompt override always has a fallback.
func (s *SettingsService) Update(ctx context.Context, persona, customPrompt, logoURL string) (*model.AISettings, error) {
	if strings.TrimSpace(persona) == "" {
		return nil, validationErrorf("persona is required")
	}

	settings := &model.AISettings{
		Persona:      persona,
		CustomPrompt: customPrompt,
		LogoURL:      logoURL,
	}

	if err := s.store.Save(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.Info("ai settings updated",
		zap.Bool("custom_prompt_set", customPrompt != ""),
	)

	return settings, nil
}
