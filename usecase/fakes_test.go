package usecase

import (
	"context"
	"io"

	"github.com/satriahrh/suara/domain"
	"github.com/satriahrh/suara/domain/repositories"
)

type fakeTranslator struct {
	result string
	err    error
	calls  int
	source string
	target string
}

func (f *fakeTranslator) Name() string { return "fake" }

func (f *fakeTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	f.calls++
	f.source = source
	f.target = target
	return f.result, f.err
}

func (f *fakeTranslator) SupportedLanguages(ctx context.Context) (domain.LanguageSet, error) {
	return domain.LanguageSet{"en": "English", "es": "Spanish"}, nil
}

type fakeDetector struct {
	tag   string
	err   error
	calls int
}

func (f *fakeDetector) DetectLanguage(ctx context.Context, text string) (string, error) {
	f.calls++
	return f.tag, f.err
}

type fakeTTS struct {
	supported  domain.LanguageSet
	listErr    error
	synthErr   error
	audio      []byte
	listCalls  int
	synthCalls int
	opts       repositories.SynthesisOptions
}

func (f *fakeTTS) SupportedLanguages(ctx context.Context) (domain.LanguageSet, error) {
	f.listCalls++
	return f.supported, f.listErr
}

func (f *fakeTTS) Synthesize(ctx context.Context, w io.Writer, text string, opts repositories.SynthesisOptions) error {
	f.synthCalls++
	f.opts = opts
	if f.synthErr != nil {
		return f.synthErr
	}
	_, err := w.Write(f.audio)
	return err
}

var (
	_ repositories.Translator       = (*fakeTranslator)(nil)
	_ repositories.LanguageDetector = (*fakeDetector)(nil)
	_ repositories.TextToSpeech     = (*fakeTTS)(nil)
)
