package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/satriahrh/suara/domain"
	"github.com/satriahrh/suara/domain/repositories"
	"github.com/satriahrh/suara/internal/languages"
)

const (
	defaultWebBaseURL = "https://translate.googleapis.com/translate_a/single"
	defaultWebTimeout = 30 * time.Second
	// maxWebTextLength is the longest input the public endpoint translates in one call
	maxWebTextLength = 5000
)

// GoogleWebTranslator calls the keyless Google Translate web endpoint
type GoogleWebTranslator struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

var _ repositories.Translator = (*GoogleWebTranslator)(nil)

// NewGoogleWebTranslator creates a translator for the public Google endpoint.
// An empty baseURL selects the production endpoint.
func NewGoogleWebTranslator(baseURL string, timeout time.Duration, logger *zap.Logger) *GoogleWebTranslator {
	if baseURL == "" {
		baseURL = defaultWebBaseURL
	}
	if timeout <= 0 {
		timeout = defaultWebTimeout
	}
	return &GoogleWebTranslator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (g *GoogleWebTranslator) Name() string {
	return "google"
}

// Translate implements repositories.Translator
func (g *GoogleWebTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	targetCode, ok := languages.Resolve(target)
	if !ok {
		return "", &domain.UnsupportedLanguageError{Code: target}
	}

	sourceCode := domain.AutoDetect
	if source != "" && source != domain.AutoDetect {
		sourceCode, ok = languages.Resolve(source)
		if !ok {
			return "", fmt.Errorf("invalid source language: %q", source)
		}
	}

	if n := utf8.RuneCountInString(text); n > maxWebTextLength {
		return "", fmt.Errorf("text is %d characters long, the limit is %d", n, maxWebTextLength)
	}

	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", sourceCode)
	query.Set("tl", targetCode)
	query.Set("dt", "t")

	form := url.Values{}
	form.Set("q", text)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"?"+query.Encode(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")

	g.logger.Debug("Sending translation request",
		zap.String("source", sourceCode),
		zap.String("target", targetCode),
		zap.Int("textLength", len(text)))

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("translation API returned error %d: %s", resp.StatusCode, strings.TrimSpace(string(errorBody)))
	}

	translated, err := parseWebResponse(resp.Body)
	if err != nil {
		return "", err
	}

	return translated, nil
}

// parseWebResponse joins the translated segments of a gtx response. The body
// is a positional JSON array whose first element lists segments as
// [translated, original, ...].
func parseWebResponse(r io.Reader) (string, error) {
	var body []json.RawMessage
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(body) == 0 {
		return "", nil
	}

	var segments [][]interface{}
	if err := json.Unmarshal(body[0], &segments); err != nil {
		// null when nothing was translated
		return "", nil
	}

	var sb strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		if s, ok := segment[0].(string); ok {
			sb.WriteString(s)
		}
	}
	return sb.String(), nil
}

// SupportedLanguages implements repositories.Translator
func (g *GoogleWebTranslator) SupportedLanguages(ctx context.Context) (domain.LanguageSet, error) {
	return languages.Translation(), nil
}
