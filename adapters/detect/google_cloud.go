package detect

import (
	"context"
	"fmt"

	translate "cloud.google.com/go/translate"
	"go.uber.org/zap"

	"github.com/satriahrh/suara/domain"
	"github.com/satriahrh/suara/domain/repositories"
)

// GoogleCloudDetector detects languages with the Cloud Translation API. The
// returned tags may carry a region, e.g. "zh-CN".
type GoogleCloudDetector struct {
	client *translate.Client
	logger *zap.Logger
}

var _ repositories.LanguageDetector = (*GoogleCloudDetector)(nil)

// NewGoogleCloudDetector wraps an existing Cloud Translation client
func NewGoogleCloudDetector(client *translate.Client, logger *zap.Logger) *GoogleCloudDetector {
	return &GoogleCloudDetector{client: client, logger: logger}
}

// DetectLanguage implements repositories.LanguageDetector
func (d *GoogleCloudDetector) DetectLanguage(ctx context.Context, text string) (string, error) {
	detections, err := d.client.DetectLanguage(ctx, []string{text})
	if err != nil {
		return "", fmt.Errorf("language detection failed: %w", err)
	}
	if len(detections) == 0 {
		return "", domain.ErrLanguageNotDetected
	}

	best, ok := bestDetection(detections[0])
	if !ok {
		return "", domain.ErrLanguageNotDetected
	}

	d.logger.Debug("Detected language",
		zap.String("code", best.Language.String()),
		zap.Float64("confidence", best.Confidence),
		zap.Bool("reliable", best.IsReliable))

	return best.Language.String(), nil
}

func bestDetection(candidates []translate.Detection) (translate.Detection, bool) {
	var best translate.Detection
	found := false
	for _, c := range candidates {
		if !found || c.Confidence > best.Confidence {
			best = c
			found = true
		}
	}
	return best, found
}
