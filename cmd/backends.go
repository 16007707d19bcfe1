package main

import (
	"context"
	"fmt"
	"io"

	cloudtranslate "cloud.google.com/go/translate"
	"go.uber.org/zap"

	"github.com/satriahrh/suara/adapters/detect"
	"github.com/satriahrh/suara/adapters/translate"
	"github.com/satriahrh/suara/adapters/tts"
	"github.com/satriahrh/suara/domain/repositories"
	"github.com/satriahrh/suara/internal/config"
)

// backends holds the process-wide collaborator handles
type backends struct {
	translator   repositories.Translator
	detector     repositories.LanguageDetector
	textToSpeech repositories.TextToSpeech
	closers      []io.Closer
	logger       *zap.Logger
}

func newBackends(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*backends, error) {
	b := &backends{logger: logger}

	// Translator and detector share one Cloud Translation client
	var cloudTranslate *cloudtranslate.Client
	if cfg.UsesGoogleCloudTranslate() {
		client, err := translate.NewGoogleCloudClient(ctx, cfg.GoogleCredentialsFile)
		if err != nil {
			return nil, err
		}
		cloudTranslate = client
		b.closers = append(b.closers, client)
	}

	switch cfg.TranslatorProvider {
	case config.TranslatorGoogle:
		b.translator = translate.NewGoogleWebTranslator("", cfg.UpstreamTimeout, logger)
	case config.TranslatorGoogleCloud:
		b.translator = translate.NewGoogleCloudTranslator(cloudTranslate, logger)
	case config.TranslatorGemini:
		gemini, err := translate.NewGeminiTranslator(ctx, translate.GeminiConfig{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		}, logger)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.translator = gemini
	default:
		b.Close()
		return nil, fmt.Errorf("unknown translator provider %q", cfg.TranslatorProvider)
	}

	switch cfg.DetectorProvider {
	case config.DetectorLingua:
		b.detector = detect.NewLinguaDetector(logger)
	case config.DetectorGoogleCloud:
		b.detector = detect.NewGoogleCloudDetector(cloudTranslate, logger)
	default:
		b.Close()
		return nil, fmt.Errorf("unknown detector provider %q", cfg.DetectorProvider)
	}

	switch cfg.TTSProvider {
	case config.TTSGoogle:
		b.textToSpeech = tts.NewGoogleTranslateTTS("", cfg.UpstreamTimeout, logger)
	case config.TTSElevenLabs:
		elevenLabs, err := tts.NewElevenLabsTTS(tts.ElevenLabsConfig{
			APIKey:     cfg.ElevenLabsAPIKey,
			APIBaseURL: cfg.ElevenLabsBaseURL,
			VoiceID:    cfg.ElevenLabsVoiceID,
			ModelID:    cfg.ElevenLabsModelID,
			Timeout:    cfg.UpstreamTimeout,
		}, logger)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.textToSpeech = elevenLabs
	case config.TTSGoogleCloud:
		cloudTTS, err := tts.NewGoogleCloudTTS(ctx, cfg.GoogleCredentialsFile, logger)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.textToSpeech = cloudTTS
		b.closers = append(b.closers, cloudTTS)
	default:
		b.Close()
		return nil, fmt.Errorf("unknown tts provider %q", cfg.TTSProvider)
	}

	return b, nil
}

// Close releases every client opened by newBackends
func (b *backends) Close() {
	for _, c := range b.closers {
		if err := c.Close(); err != nil {
			b.logger.Warn("Failed to close backend client", zap.Error(err))
		}
	}
	b.closers = nil
}
