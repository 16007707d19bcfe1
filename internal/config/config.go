package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Translator providers
const (
	TranslatorGoogle      = "google"
	TranslatorGoogleCloud = "google-cloud"
	TranslatorGemini      = "gemini"
)

// Detector providers
const (
	DetectorLingua      = "lingua"
	DetectorGoogleCloud = "google-cloud"
)

// TTS providers
const (
	TTSGoogle      = "google"
	TTSElevenLabs  = "elevenlabs"
	TTSGoogleCloud = "google-cloud"
)

// Config holds the server configuration
type Config struct {
	Port                string
	TranslatorProvider  string
	DetectorProvider    string
	TTSProvider         string
	TTSFallbackLanguage string
	UpstreamTimeout     time.Duration
	DocsFile            string
	LogDevelopment      bool

	GoogleCredentialsFile string

	GeminiAPIKey string
	GeminiModel  string

	ElevenLabsAPIKey  string
	ElevenLabsBaseURL string
	ElevenLabsVoiceID string
	ElevenLabsModelID string
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("TRANSLATOR_PROVIDER", TranslatorGoogle)
	v.SetDefault("DETECTOR_PROVIDER", DetectorLingua)
	v.SetDefault("TTS_PROVIDER", TTSGoogle)
	v.SetDefault("TTS_FALLBACK_LANGUAGE", "en")
	v.SetDefault("UPSTREAM_TIMEOUT", "30s")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("ELEVEN_LABS_API_BASE_URL", "https://api.elevenlabs.io/v1")
	v.SetDefault("ELEVEN_LABS_VOICE_ID", "21m00Tcm4TlvDq8ikWAM")
	v.SetDefault("ELEVEN_LABS_MODEL_ID", "eleven_multilingual_v2")
}

// Load reads .env (if present), the optional config file and the
// environment into a Config. configFile may be empty.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	SetDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("UPSTREAM_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Port:                  v.GetString("PORT"),
		TranslatorProvider:    strings.ToLower(v.GetString("TRANSLATOR_PROVIDER")),
		DetectorProvider:      strings.ToLower(v.GetString("DETECTOR_PROVIDER")),
		TTSProvider:           strings.ToLower(v.GetString("TTS_PROVIDER")),
		TTSFallbackLanguage:   v.GetString("TTS_FALLBACK_LANGUAGE"),
		UpstreamTimeout:       timeout,
		DocsFile:              v.GetString("DOCS_FILE"),
		LogDevelopment:        v.GetBool("LOG_DEVELOPMENT"),
		GoogleCredentialsFile: v.GetString("GOOGLE_CREDENTIALS_FILE"),
		GeminiAPIKey:          v.GetString("GEMINI_API_KEY"),
		GeminiModel:           v.GetString("GEMINI_MODEL"),
		ElevenLabsAPIKey:      v.GetString("ELEVEN_LABS_API_KEY"),
		ElevenLabsBaseURL:     v.GetString("ELEVEN_LABS_API_BASE_URL"),
		ElevenLabsVoiceID:     v.GetString("ELEVEN_LABS_VOICE_ID"),
		ElevenLabsModelID:     v.GetString("ELEVEN_LABS_MODEL_ID"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown providers and missing credentials for the
// selected providers
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.UpstreamTimeout <= 0 {
		errs = append(errs, errors.New("UPSTREAM_TIMEOUT must be positive"))
	}

	switch c.TranslatorProvider {
	case TranslatorGoogle, TranslatorGoogleCloud:
	case TranslatorGemini:
		if c.GeminiAPIKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required for the gemini translator"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown TRANSLATOR_PROVIDER %q", c.TranslatorProvider))
	}

	switch c.DetectorProvider {
	case DetectorLingua, DetectorGoogleCloud:
	default:
		errs = append(errs, fmt.Errorf("unknown DETECTOR_PROVIDER %q", c.DetectorProvider))
	}

	switch c.TTSProvider {
	case TTSGoogle, TTSGoogleCloud:
	case TTSElevenLabs:
		if c.ElevenLabsAPIKey == "" {
			errs = append(errs, errors.New("ELEVEN_LABS_API_KEY is required for the elevenlabs TTS"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown TTS_PROVIDER %q", c.TTSProvider))
	}

	return errors.Join(errs...)
}

// UsesGoogleCloudTranslate reports whether a Cloud Translation client is needed
func (c *Config) UsesGoogleCloudTranslate() bool {
	return c.TranslatorProvider == TranslatorGoogleCloud || c.DetectorProvider == DetectorGoogleCloud
}
