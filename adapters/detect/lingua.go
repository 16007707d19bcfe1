package detect

import (
	"context"
	"strings"

	lingua "github.com/pemistahl/lingua-go"
	"go.uber.org/zap"

	"github.com/satriahrh/suara/domain"
	"github.com/satriahrh/suara/domain/repositories"
)

// LinguaDetector detects languages offline with lingua-go.
// Building the underlying detector loads language models; share one instance.
type LinguaDetector struct {
	detector lingua.LanguageDetector
	logger   *zap.Logger
}

var _ repositories.LanguageDetector = (*LinguaDetector)(nil)

// NewLinguaDetector builds a detector over all languages lingua knows
func NewLinguaDetector(logger *zap.Logger) *LinguaDetector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()

	return &LinguaDetector{detector: detector, logger: logger}
}

// NewLinguaDetectorFor builds a detector restricted to the given languages,
// which is faster and more accurate when the input is known to be narrow
func NewLinguaDetectorFor(logger *zap.Logger, languages ...lingua.Language) *LinguaDetector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		Build()

	return &LinguaDetector{detector: detector, logger: logger}
}

// DetectLanguage implements repositories.LanguageDetector
func (d *LinguaDetector) DetectLanguage(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrLanguageNotDetected
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", domain.ErrLanguageNotDetected
	}

	code := strings.ToLower(lang.IsoCode639_1().String())
	d.logger.Debug("Detected language",
		zap.String("language", lang.String()),
		zap.String("code", code))

	return code, nil
}
