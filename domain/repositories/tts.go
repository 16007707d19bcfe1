package repositories

import (
	"context"
	"io"

	"github.com/satriahrh/suara/domain"
)

// SynthesisOptions controls how text is spoken
type SynthesisOptions struct {
	Language string `json:"language"`
	Slow     bool   `json:"slow"`
}

// TextToSpeech abstracts speech synthesis services
type TextToSpeech interface {
	// SupportedLanguages returns the language codes the engine can speak
	SupportedLanguages(ctx context.Context) (domain.LanguageSet, error)
	// Synthesize writes MP3 audio for text to w
	Synthesize(ctx context.Context, w io.Writer, text string, opts SynthesisOptions) error
}
