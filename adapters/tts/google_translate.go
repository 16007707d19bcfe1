package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/satriahrh/suara/domain"
	"github.com/satriahrh/suara/domain/repositories"
	"github.com/satriahrh/suara/internal/languages"
)

const (
	defaultTranslateTTSURL = "https://translate.google.com/translate_tts"
	// maxChunkRunes is the longest text the endpoint voices in one request
	maxChunkRunes = 100
)

// GoogleTranslateTTS speaks text through the keyless Google Translate voice
// endpoint. Long text is split into chunks whose MP3 frames are written to the
// output back to back.
type GoogleTranslateTTS struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

var _ repositories.TextToSpeech = (*GoogleTranslateTTS)(nil)

// NewGoogleTranslateTTS creates the adapter. An empty baseURL selects the
// production endpoint.
func NewGoogleTranslateTTS(baseURL string, timeout time.Duration, logger *zap.Logger) *GoogleTranslateTTS {
	if baseURL == "" {
		baseURL = defaultTranslateTTSURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &GoogleTranslateTTS{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// SupportedLanguages implements repositories.TextToSpeech
func (g *GoogleTranslateTTS) SupportedLanguages(ctx context.Context) (domain.LanguageSet, error) {
	return languages.Speech(), nil
}

// Synthesize implements repositories.TextToSpeech
func (g *GoogleTranslateTTS) Synthesize(ctx context.Context, w io.Writer, text string, opts repositories.SynthesisOptions) error {
	chunks := chunkText(text, maxChunkRunes)
	if len(chunks) == 0 {
		return fmt.Errorf("text cannot be empty")
	}

	lang := languages.SpeechCode(opts.Language)
	speed := "1"
	if opts.Slow {
		speed = "0.3"
	}

	g.logger.Info("Converting text to speech",
		zap.String("language", lang),
		zap.Int("chunks", len(chunks)),
		zap.Bool("slow", opts.Slow))

	for i, chunk := range chunks {
		if err := g.fetchChunk(ctx, w, chunk, lang, speed, i, len(chunks)); err != nil {
			return fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
	}
	return nil
}

func (g *GoogleTranslateTTS) fetchChunk(ctx context.Context, w io.Writer, chunk, lang, speed string, idx, total int) error {
	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("client", "tw-ob")
	query.Set("tl", lang)
	query.Set("q", chunk)
	query.Set("ttsspeed", speed)
	query.Set("total", strconv.Itoa(total))
	query.Set("idx", strconv.Itoa(idx))
	query.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Accept", "audio/mpeg")
	httpReq.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("speech API returned error %d: %s", resp.StatusCode, strings.TrimSpace(string(errorBody)))
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to copy audio: %w", err)
	}

	g.logger.Debug("Received audio chunk",
		zap.Int("chunk", idx+1),
		zap.Int64("bytes", n))
	return nil
}

// breakAfter are the runes a chunk prefers to end on
const breakAfter = ".!?;:,。！？；：、，"

// chunkText splits text into pieces of at most max runes, breaking on
// whitespace and punctuation where possible and mid-word only when a single
// word is longer than max.
func chunkText(text string, max int) []string {
	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			chunks = append(chunks, s)
		}
		current.Reset()
		currentLen = 0
	}

	for _, token := range tokenize(text, max) {
		n := utf8.RuneCountInString(strings.TrimRightFunc(token, unicode.IsSpace))
		if currentLen > 0 && currentLen+n > max {
			flush()
		}
		current.WriteString(token)
		currentLen += utf8.RuneCountInString(token)
	}
	flush()

	return chunks
}

// tokenize returns words and punctuation-terminated runs, each no longer than
// max runes, with their trailing space preserved
func tokenize(text string, max int) []string {
	var tokens []string
	var word []rune

	emit := func(trailing string) {
		for len(word) > max {
			tokens = append(tokens, string(word[:max]))
			word = word[max:]
		}
		if len(word) > 0 {
			tokens = append(tokens, string(word)+trailing)
		}
		word = word[:0]
	}

	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			emit(" ")
		case strings.ContainsRune(breakAfter, r):
			word = append(word, r)
			emit(" ")
		default:
			word = append(word, r)
		}
	}
	emit("")

	return tokens
}
