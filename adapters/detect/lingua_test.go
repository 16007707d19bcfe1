package detect

import (
	"context"
	"errors"
	"testing"

	lingua "github.com/pemistahl/lingua-go"
	"go.uber.org/zap"

	"github.com/satriahrh/suara/domain"
)

func TestLinguaDetector_DetectLanguage(t *testing.T) {
	d := NewLinguaDetectorFor(zap.NewNop(),
		lingua.English, lingua.Spanish, lingua.German, lingua.French, lingua.Ukrainian)

	tests := []struct {
		name     string
		text     string
		wantCode string
		wantErr  error
	}{
		{
			name:    "empty text",
			text:    "",
			wantErr: domain.ErrLanguageNotDetected,
		},
		{
			name:    "whitespace",
			text:    "   ",
			wantErr: domain.ErrLanguageNotDetected,
		},
		{
			name:     "english text",
			text:     "Hello, this is a test in English.",
			wantCode: "en",
		},
		{
			name:     "spanish text",
			text:     "Hola, esto es una prueba en español.",
			wantCode: "es",
		},
		{
			name:     "german text",
			text:     "Hallo, das ist ein Test auf Deutsch.",
			wantCode: "de",
		},
		{
			name:     "ukrainian text",
			text:     "Привіт, це тест українською мовою.",
			wantCode: "uk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := d.DetectLanguage(context.Background(), tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("DetectLanguage(%q) error = %v, want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectLanguage(%q) unexpected error: %v", tt.text, err)
			}
			if code != tt.wantCode {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tt.text, code, tt.wantCode)
			}
		})
	}
}

func TestLinguaDetector_NoLetters(t *testing.T) {
	d := NewLinguaDetectorFor(zap.NewNop(), lingua.English, lingua.Spanish)

	_, err := d.DetectLanguage(context.Background(), "12345 !!!")
	if !errors.Is(err, domain.ErrLanguageNotDetected) {
		t.Errorf("expected ErrLanguageNotDetected, got %v", err)
	}
}
