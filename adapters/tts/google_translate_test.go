package tts

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"go.uber.org/zap/zaptest"

	"github.com/satriahrh/suara/domain/repositories"
)

func TestChunkText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		max        int
		wantChunks []string
	}{
		{
			name:       "empty",
			text:       "   ",
			max:        10,
			wantChunks: nil,
		},
		{
			name:       "fits in one chunk",
			text:       "Hello world",
			max:        100,
			wantChunks: []string{"Hello world"},
		},
		{
			name:       "splits on words",
			text:       "one two three four",
			max:        9,
			wantChunks: []string{"one two", "three", "four"},
		},
		{
			name:       "prefers punctuation breaks",
			text:       "Hi, there.Bye",
			max:        100,
			wantChunks: []string{"Hi, there. Bye"},
		},
		{
			name:       "long word is hard split",
			text:       "abcdefghij",
			max:        4,
			wantChunks: []string{"abcd", "efgh", "ij"},
		},
		{
			name:       "cjk punctuation",
			text:       "你好世界。今天天气很好。",
			max:        5,
			wantChunks: []string{"你好世界。", "今天天气很", "好。"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chunkText(tt.text, tt.max)
			if len(got) != len(tt.wantChunks) {
				t.Fatalf("chunkText(%q) = %q, want %q", tt.text, got, tt.wantChunks)
			}
			for i := range got {
				if got[i] != tt.wantChunks[i] {
					t.Errorf("chunk %d = %q, want %q", i, got[i], tt.wantChunks[i])
				}
			}
		})
	}
}

func TestChunkText_RespectsLimit(t *testing.T) {
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20)

	chunks := chunkText(text, maxChunkRunes)
	if len(chunks) < 2 {
		t.Fatalf("expected several chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if n := utf8.RuneCountInString(c); n > maxChunkRunes || n == 0 {
			t.Errorf("chunk %d has %d runes", i, n)
		}
	}
	if got := strings.Join(chunks, " "); strings.Join(strings.Fields(got), " ") != strings.Join(strings.Fields(text), " ") {
		t.Error("expected chunks to preserve every word")
	}
}

func TestGoogleTranslateTTS_Synthesize(t *testing.T) {
	var mu sync.Mutex
	var langs, speeds []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		langs = append(langs, r.URL.Query().Get("tl"))
		speeds = append(speeds, r.URL.Query().Get("ttsspeed"))
		mu.Unlock()
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3:" + r.URL.Query().Get("idx") + ";"))
	}))
	defer server.Close()

	tts := NewGoogleTranslateTTS(server.URL, 0, zaptest.NewLogger(t))

	text := strings.Repeat("Shalom olam. ", 12)
	var buf bytes.Buffer
	if err := tts.Synthesize(context.Background(), &buf, text, repositories.SynthesisOptions{Language: "he"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(langs) != 2 {
		t.Fatalf("expected 2 chunk requests, got %d", len(langs))
	}
	for i := range langs {
		if langs[i] != "iw" {
			t.Errorf("expected legacy code iw, got %q", langs[i])
		}
		if speeds[i] != "1" {
			t.Errorf("expected normal speed, got %q", speeds[i])
		}
	}
	if buf.String() != "mp3:0;mp3:1;" {
		t.Errorf("expected chunks in order, got %q", buf.String())
	}
}

func TestGoogleTranslateTTS_Synthesize_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	tts := NewGoogleTranslateTTS(server.URL, 0, zaptest.NewLogger(t))

	var buf bytes.Buffer
	err := tts.Synthesize(context.Background(), &buf, "Hello", repositories.SynthesisOptions{Language: "en"})
	if err == nil {
		t.Fatal("expected error for non-OK status")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("expected status in error, got %v", err)
	}
}

func TestGoogleTranslateTTS_Synthesize_EmptyText(t *testing.T) {
	tts := NewGoogleTranslateTTS("http://127.0.0.1:0", 0, zaptest.NewLogger(t))

	var buf bytes.Buffer
	if err := tts.Synthesize(context.Background(), &buf, " ", repositories.SynthesisOptions{Language: "en"}); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestGoogleTranslateTTS_SupportedLanguages(t *testing.T) {
	tts := NewGoogleTranslateTTS("", 0, zaptest.NewLogger(t))

	langs, err := tts.SupportedLanguages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, code := range []string{"en", "es", "fr", "de"} {
		if !langs.Contains(code) {
			t.Errorf("expected %q to be supported", code)
		}
	}
}
