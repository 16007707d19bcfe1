package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/satriahrh/suara/domain"
)

func TestTranslationService_Translate(t *testing.T) {
	tests := []struct {
		name       string
		req        domain.TranslationRequest
		translator *fakeTranslator
		want       string
		wantErr    error
		wantCalls  int
	}{
		{
			name:       "success",
			req:        domain.TranslationRequest{Text: "Hello", TargetLanguage: "es"},
			translator: &fakeTranslator{result: "Hola"},
			want:       "Hola",
			wantCalls:  1,
		},
		{
			name:       "empty text",
			req:        domain.TranslationRequest{Text: "", TargetLanguage: "es"},
			translator: &fakeTranslator{result: "Hola"},
			wantErr:    domain.ErrEmptyText,
		},
		{
			name:       "empty target",
			req:        domain.TranslationRequest{Text: "Hello", TargetLanguage: ""},
			translator: &fakeTranslator{result: "Hola"},
			wantErr:    domain.ErrEmptyTargetLanguage,
		},
		{
			name:       "both empty reports text first",
			req:        domain.TranslationRequest{},
			translator: &fakeTranslator{},
			wantErr:    domain.ErrEmptyText,
		},
		{
			name:       "empty result",
			req:        domain.TranslationRequest{Text: "Hello", TargetLanguage: "es"},
			translator: &fakeTranslator{result: ""},
			wantErr:    domain.ErrEmptyTranslation,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewTranslationService(tt.translator, zap.NewNop())

			resp, err := svc.Translate(context.Background(), tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Translate() error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("Translate() unexpected error: %v", err)
				}
				if resp.TranslatedText != tt.want {
					t.Errorf("Translate() = %q, want %q", resp.TranslatedText, tt.want)
				}
			}
			if tt.translator.calls != tt.wantCalls {
				t.Errorf("expected %d translator calls, got %d", tt.wantCalls, tt.translator.calls)
			}
		})
	}
}

func TestTranslationService_Translate_AutoDetectsSource(t *testing.T) {
	translator := &fakeTranslator{result: "Bonjour"}
	svc := NewTranslationService(translator, zap.NewNop())

	if _, err := svc.Translate(context.Background(), domain.TranslationRequest{Text: "Hello", TargetLanguage: "fr"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if translator.source != domain.AutoDetect {
		t.Errorf("expected source %q, got %q", domain.AutoDetect, translator.source)
	}
	if translator.target != "fr" {
		t.Errorf("expected target fr, got %q", translator.target)
	}
}

func TestTranslationService_Translate_UnsupportedLanguage(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"typed error", &domain.UnsupportedLanguageError{Code: "xx"}},
		{"message only", errors.New("Invalid destination language: xx")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewTranslationService(&fakeTranslator{err: tt.err}, zap.NewNop())

			_, err := svc.Translate(context.Background(), domain.TranslationRequest{Text: "Hello", TargetLanguage: "xx"})
			var ule *domain.UnsupportedLanguageError
			if !errors.As(err, &ule) {
				t.Fatalf("expected UnsupportedLanguageError, got %v", err)
			}
			if ule.Code != "xx" {
				t.Errorf("expected code xx, got %q", ule.Code)
			}
		})
	}
}

func TestTranslationService_Translate_BackendError(t *testing.T) {
	backendErr := errors.New("connection reset by peer")
	svc := NewTranslationService(&fakeTranslator{err: backendErr}, zap.NewNop())

	_, err := svc.Translate(context.Background(), domain.TranslationRequest{Text: "Hello", TargetLanguage: "es"})
	if !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if domain.IsUnsupportedLanguage(err) {
		t.Error("backend error must not be reported as an unsupported language")
	}
}

func TestTranslationService_Translate_Idempotent(t *testing.T) {
	svc := NewTranslationService(&fakeTranslator{result: "Hola"}, zap.NewNop())
	req := domain.TranslationRequest{Text: "Hello", TargetLanguage: "es"}

	first, err := svc.Translate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Translate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.TranslatedText != second.TranslatedText {
		t.Errorf("expected identical translations, got %q and %q", first.TranslatedText, second.TranslatedText)
	}
}
