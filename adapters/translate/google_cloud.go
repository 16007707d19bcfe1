package translate

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	translate "cloud.google.com/go/translate"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/satriahrh/suara/domain"
	"github.com/satriahrh/suara/domain/repositories"
	"github.com/satriahrh/suara/internal/languages"
)

// GoogleCloudTranslator implements Translator with the Cloud Translation API
type GoogleCloudTranslator struct {
	client *translate.Client
	logger *zap.Logger
}

var _ repositories.Translator = (*GoogleCloudTranslator)(nil)

// NewGoogleCloudClient creates a Cloud Translation client. credentialsFile may
// be empty to use application default credentials.
func NewGoogleCloudClient(ctx context.Context, credentialsFile string) (*translate.Client, error) {
	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}
	return client, nil
}

// NewGoogleCloudTranslator wraps an existing Cloud Translation client
func NewGoogleCloudTranslator(client *translate.Client, logger *zap.Logger) *GoogleCloudTranslator {
	return &GoogleCloudTranslator{
		client: client,
		logger: logger,
	}
}

func (g *GoogleCloudTranslator) Name() string {
	return "google-cloud"
}

// Translate implements repositories.Translator
func (g *GoogleCloudTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	targetTag, err := parseTarget(target)
	if err != nil {
		return "", err
	}

	var opts *translate.Options
	if source != "" && source != domain.AutoDetect {
		sourceTag, err := language.Parse(source)
		if err != nil {
			return "", fmt.Errorf("invalid source language %q: %w", source, err)
		}
		opts = &translate.Options{Source: sourceTag, Format: translate.Text}
	} else {
		opts = &translate.Options{Format: translate.Text}
	}

	translations, err := g.client.Translate(ctx, []string{text}, targetTag, opts)
	if err != nil {
		if isInvalidTarget(err) {
			return "", &domain.UnsupportedLanguageError{Code: target}
		}
		return "", fmt.Errorf("translation failed: %w", err)
	}

	if len(translations) == 0 {
		return "", nil
	}

	g.logger.Debug("Cloud translation completed",
		zap.String("detectedSource", translations[0].Source.String()),
		zap.String("target", targetTag.String()))

	return translations[0].Text, nil
}

// SupportedLanguages implements repositories.Translator
func (g *GoogleCloudTranslator) SupportedLanguages(ctx context.Context) (domain.LanguageSet, error) {
	langs, err := g.client.SupportedLanguages(ctx, language.English)
	if err != nil {
		return nil, fmt.Errorf("failed to list supported languages: %w", err)
	}

	set := make(domain.LanguageSet, len(langs))
	for _, l := range langs {
		set[l.Tag.String()] = l.Name
	}
	return set, nil
}

// parseTarget accepts a BCP 47 tag or an English language name
func parseTarget(target string) (language.Tag, error) {
	if code, ok := languages.Resolve(target); ok {
		target = code
	}
	tag, err := language.Parse(target)
	if err != nil {
		return language.Und, &domain.UnsupportedLanguageError{Code: target}
	}
	return tag, nil
}

// isInvalidTarget recognises the API's 400 "Invalid Value" response for an
// unknown target language
func isInvalidTarget(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) || apiErr.Code != http.StatusBadRequest {
		return false
	}
	for _, item := range apiErr.Errors {
		if item.Reason == "invalid" {
			return true
		}
	}
	return false
}
