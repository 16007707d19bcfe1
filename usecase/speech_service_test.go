package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/satriahrh/suara/domain"
)

func newTestTTS() *fakeTTS {
	return &fakeTTS{
		supported: domain.LanguageSet{"en": "English", "es": "Spanish", "fr": "French"},
		audio:     []byte("ID3-mp3-bytes"),
	}
}

func TestSpeechService_Synthesize_SupportedLanguage(t *testing.T) {
	detector := &fakeDetector{tag: "es-MX"}
	tts := newTestTTS()
	svc := NewSpeechService(detector, tts, "", zaptest.NewLogger(t))

	result, err := svc.Synthesize(context.Background(), domain.SpeechRequest{Text: "Hola, ¿cómo estás?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Language != "es" {
		t.Errorf("expected language es, got %q", result.Language)
	}
	if result.Filename() != "tts_es.mp3" {
		t.Errorf("expected filename tts_es.mp3, got %q", result.Filename())
	}
	if result.ContentType != "audio/mpeg" {
		t.Errorf("expected audio/mpeg, got %q", result.ContentType)
	}
	if !bytes.Equal(result.Audio, tts.audio) {
		t.Errorf("expected audio %q, got %q", tts.audio, result.Audio)
	}
	if tts.opts.Language != "es" || tts.opts.Slow {
		t.Errorf("expected normal-speed es synthesis, got %+v", tts.opts)
	}
	if detector.calls != 1 || tts.listCalls != 1 || tts.synthCalls != 1 {
		t.Errorf("expected one call each, got detect=%d list=%d synth=%d",
			detector.calls, tts.listCalls, tts.synthCalls)
	}
}

func TestSpeechService_Synthesize_FallbackLanguage(t *testing.T) {
	tts := newTestTTS()
	svc := NewSpeechService(&fakeDetector{tag: "sw"}, tts, "", zap.NewNop())

	result, err := svc.Synthesize(context.Background(), domain.SpeechRequest{Text: "Habari ya asubuhi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Language != domain.DefaultSpeechLanguage {
		t.Errorf("expected fallback %q, got %q", domain.DefaultSpeechLanguage, result.Language)
	}
	if result.Filename() != "tts_en.mp3" {
		t.Errorf("expected filename tts_en.mp3, got %q", result.Filename())
	}
	if tts.opts.Language != "en" {
		t.Errorf("expected synthesis in en, got %q", tts.opts.Language)
	}
}

func TestSpeechService_Synthesize_CustomFallback(t *testing.T) {
	tts := newTestTTS()
	svc := NewSpeechService(&fakeDetector{tag: "sw-KE"}, tts, "fr", zap.NewNop())

	result, err := svc.Synthesize(context.Background(), domain.SpeechRequest{Text: "Habari"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Language != "fr" {
		t.Errorf("expected configured fallback fr, got %q", result.Language)
	}
}

func TestSpeechService_Synthesize_EmptyText(t *testing.T) {
	detector := &fakeDetector{tag: "en"}
	tts := newTestTTS()
	svc := NewSpeechService(detector, tts, "", zap.NewNop())

	_, err := svc.Synthesize(context.Background(), domain.SpeechRequest{Text: ""})
	if !errors.Is(err, domain.ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if detector.calls != 0 || tts.listCalls != 0 || tts.synthCalls != 0 {
		t.Errorf("expected no downstream calls, got detect=%d list=%d synth=%d",
			detector.calls, tts.listCalls, tts.synthCalls)
	}
}

func TestSpeechService_Synthesize_Failures(t *testing.T) {
	detectErr := errors.New("no features in text")
	listErr := errors.New("voices unavailable")
	synthErr := errors.New("upstream timeout")

	tests := []struct {
		name     string
		detector *fakeDetector
		tts      *fakeTTS
		wantErr  error
	}{
		{
			name:     "detection fails",
			detector: &fakeDetector{err: detectErr},
			tts:      newTestTTS(),
			wantErr:  detectErr,
		},
		{
			name:     "language list fails",
			detector: &fakeDetector{tag: "en"},
			tts:      &fakeTTS{listErr: listErr},
			wantErr:  listErr,
		},
		{
			name:     "synthesis fails",
			detector: &fakeDetector{tag: "en"},
			tts:      &fakeTTS{supported: domain.LanguageSet{"en": "English"}, synthErr: synthErr},
			wantErr:  synthErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSpeechService(tt.detector, tt.tts, "", zap.NewNop())

			result, err := svc.Synthesize(context.Background(), domain.SpeechRequest{Text: "Hello"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if result != nil {
				t.Errorf("expected no result, got %+v", result)
			}
		})
	}
}
