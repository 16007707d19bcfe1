package repositories

import (
	"context"

	"github.com/satriahrh/suara/domain"
)

// Translator abstracts any machine translation provider
type Translator interface {
	// Name identifies the provider in logs
	Name() string
	// Translate converts text from source into target. source may be
	// domain.AutoDetect to let the provider detect it.
	Translate(ctx context.Context, text, source, target string) (string, error)
	// SupportedLanguages returns the target languages the provider accepts
	SupportedLanguages(ctx context.Context) (domain.LanguageSet, error)
}
