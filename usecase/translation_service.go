package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/satriahrh/suara/domain"
	"github.com/satriahrh/suara/domain/repositories"
)

// TranslationService validates translation requests and forwards them to the
// configured translator
type TranslationService struct {
	translator repositories.Translator
	logger     *zap.Logger
}

// NewTranslationService creates a new translation service
func NewTranslationService(translator repositories.Translator, logger *zap.Logger) *TranslationService {
	return &TranslationService{
		translator: translator,
		logger:     logger,
	}
}

// Translate translates req.Text into req.TargetLanguage, letting the
// translator detect the source language. Validation failures return
// domain.ErrEmptyText or domain.ErrEmptyTargetLanguage without calling out.
func (s *TranslationService) Translate(ctx context.Context, req domain.TranslationRequest) (*domain.TranslationResponse, error) {
	if req.Text == "" {
		return nil, domain.ErrEmptyText
	}
	if req.TargetLanguage == "" {
		return nil, domain.ErrEmptyTargetLanguage
	}

	s.logger.Info("Translating text",
		zap.String("translator", s.translator.Name()),
		zap.String("target", req.TargetLanguage),
		zap.Int("textLength", len(req.Text)))

	translated, err := s.translator.Translate(ctx, req.Text, domain.AutoDetect, req.TargetLanguage)
	if err != nil {
		if domain.IsUnsupportedLanguage(err) {
			return nil, &domain.UnsupportedLanguageError{Code: req.TargetLanguage}
		}
		return nil, err
	}

	if translated == "" {
		return nil, domain.ErrEmptyTranslation
	}

	return &domain.TranslationResponse{TranslatedText: translated}, nil
}

// SupportedLanguages returns the target languages of the translator
func (s *TranslationService) SupportedLanguages(ctx context.Context) (domain.LanguageSet, error) {
	return s.translator.SupportedLanguages(ctx)
}
