package usecase

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/satriahrh/suara/domain"
	"github.com/satriahrh/suara/domain/repositories"
)

const mpegContentType = "audio/mpeg"

// SpeechService turns text into speech in the language it is written in
type SpeechService struct {
	detector     repositories.LanguageDetector
	textToSpeech repositories.TextToSpeech
	fallbackLang string
	logger       *zap.Logger
}

// NewSpeechService creates a new speech service. fallbackLang is spoken when
// the detected language is not supported; empty means
// domain.DefaultSpeechLanguage.
func NewSpeechService(
	detector repositories.LanguageDetector,
	tts repositories.TextToSpeech,
	fallbackLang string,
	logger *zap.Logger,
) *SpeechService {
	if fallbackLang == "" {
		fallbackLang = domain.DefaultSpeechLanguage
	}
	return &SpeechService{
		detector:     detector,
		textToSpeech: tts,
		fallbackLang: fallbackLang,
		logger:       logger,
	}
}

// Synthesize detects the language of req.Text and returns the full MP3 audio
func (s *SpeechService) Synthesize(ctx context.Context, req domain.SpeechRequest) (*domain.SpeechResult, error) {
	if req.Text == "" {
		return nil, domain.ErrEmptyText
	}

	// Step 1: detect and reduce to the primary subtag
	detected, err := s.detector.DetectLanguage(ctx, req.Text)
	if err != nil {
		return nil, fmt.Errorf("language detection failed: %w", err)
	}
	lang := domain.PrimarySubtag(detected)

	// Step 2: make sure the engine can speak it
	supported, err := s.textToSpeech.SupportedLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list speech languages: %w", err)
	}
	if !supported.Contains(lang) {
		s.logger.Info("Detected language not supported, using fallback",
			zap.String("detected", detected),
			zap.String("fallback", s.fallbackLang))
		lang = s.fallbackLang
	}

	// Step 3: synthesize into memory
	var buf bytes.Buffer
	opts := repositories.SynthesisOptions{Language: lang, Slow: false}
	if err := s.textToSpeech.Synthesize(ctx, &buf, req.Text, opts); err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}

	s.logger.Info("TTS completed",
		zap.String("detected", detected),
		zap.String("language", lang),
		zap.Int("audioSize", buf.Len()))

	return &domain.SpeechResult{
		Audio:       buf.Bytes(),
		Language:    lang,
		ContentType: mpegContentType,
	}, nil
}

// SupportedLanguages returns the languages the speech engine can speak
func (s *SpeechService) SupportedLanguages(ctx context.Context) (domain.LanguageSet, error) {
	return s.textToSpeech.SupportedLanguages(ctx)
}
