package translate

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/satriahrh/suara/domain"
	"github.com/satriahrh/suara/domain/repositories"
	"github.com/satriahrh/suara/internal/languages"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiConfig holds configuration for the Gemini translator
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string // Optional: overrides the Gemini API endpoint
}

// GeminiTranslator translates text by prompting a Gemini model
type GeminiTranslator struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

var _ repositories.Translator = (*GeminiTranslator)(nil)

// NewGeminiTranslator creates a new Gemini-backed translator
func NewGeminiTranslator(ctx context.Context, config GeminiConfig, logger *zap.Logger) (*GeminiTranslator, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = defaultGeminiModel
		logger.Info("Using default Gemini model", zap.String("model", model))
	}

	return &GeminiTranslator{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (g *GeminiTranslator) Name() string {
	return "gemini"
}

// Translate implements repositories.Translator
func (g *GeminiTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	targetCode, ok := languages.Resolve(target)
	if !ok {
		return "", &domain.UnsupportedLanguageError{Code: target}
	}

	prompt := buildTranslationPrompt(text, source, targetCode)
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	}

	response, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		g.logger.Warn("No content generated for translation", zap.String("target", targetCode))
		return "", nil
	}

	var sb strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

// SupportedLanguages implements repositories.Translator
func (g *GeminiTranslator) SupportedLanguages(ctx context.Context) (domain.LanguageSet, error) {
	return languages.Translation(), nil
}

func buildTranslationPrompt(text, source, targetCode string) string {
	targetName := languages.Translation()[targetCode]

	var sb strings.Builder
	sb.WriteString("You are a professional translator. ")
	if source == "" || source == domain.AutoDetect {
		sb.WriteString("Detect the language of the text below and translate it")
	} else {
		fmt.Fprintf(&sb, "Translate the text below from %s", source)
	}
	fmt.Fprintf(&sb, " into %s (%s). ", targetName, targetCode)
	sb.WriteString("Reply with the translation only, without quotes, notes or explanations.\n\n")
	sb.WriteString(text)
	return sb.String()
}
