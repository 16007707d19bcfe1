package tts

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"google.golang.org/api/option"

	"github.com/satriahrh/suara/domain"
	"github.com/satriahrh/suara/domain/repositories"
)

// GoogleCloudTTS implements TextToSpeech with Google Cloud Text-to-Speech
type GoogleCloudTTS struct {
	client *texttospeech.Client
	logger *zap.Logger

	mu sync.Mutex
	// locales maps a primary language subtag to the voice locale used for it
	locales map[string]string
}

var _ repositories.TextToSpeech = (*GoogleCloudTTS)(nil)

// NewGoogleCloudTTS creates a Cloud Text-to-Speech client. credentialsFile may
// be empty to use application default credentials.
func NewGoogleCloudTTS(ctx context.Context, credentialsFile string, logger *zap.Logger) (*GoogleCloudTTS, error) {
	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}

	return &GoogleCloudTTS{client: client, logger: logger}, nil
}

// Close releases the underlying gRPC connection
func (g *GoogleCloudTTS) Close() error {
	return g.client.Close()
}

// SupportedLanguages implements repositories.TextToSpeech. The voice list is
// fetched once and kept for the life of the adapter.
func (g *GoogleCloudTTS) SupportedLanguages(ctx context.Context) (domain.LanguageSet, error) {
	locales, err := g.voiceLocales(ctx)
	if err != nil {
		return nil, err
	}

	set := make(domain.LanguageSet, len(locales))
	for code := range locales {
		set[code] = languageName(code)
	}
	return set, nil
}

// Synthesize implements repositories.TextToSpeech
func (g *GoogleCloudTTS) Synthesize(ctx context.Context, w io.Writer, text string, opts repositories.SynthesisOptions) error {
	locales, err := g.voiceLocales(ctx)
	if err != nil {
		return err
	}

	locale, ok := locales[domain.PrimarySubtag(opts.Language)]
	if !ok {
		locale = opts.Language
	}

	rate := 1.0
	if opts.Slow {
		rate = 0.75
	}

	g.logger.Info("Converting text to speech",
		zap.String("language", opts.Language),
		zap.String("locale", locale),
		zap.Int("textLength", len(text)))

	resp, err := g.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: locale,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  rate,
		},
	})
	if err != nil {
		return fmt.Errorf("SynthesizeSpeech: %w", err)
	}

	if _, err := w.Write(resp.AudioContent); err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}
	return nil
}

func (g *GoogleCloudTTS) voiceLocales(ctx context.Context) (map[string]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.locales != nil {
		return g.locales, nil
	}

	resp, err := g.client.ListVoices(ctx, &texttospeechpb.ListVoicesRequest{})
	if err != nil {
		return nil, fmt.Errorf("ListVoices: %w", err)
	}

	var codes []string
	for _, voice := range resp.GetVoices() {
		codes = append(codes, voice.GetLanguageCodes()...)
	}
	g.locales = pickLocales(codes)

	g.logger.Info("Loaded text-to-speech voices",
		zap.Int("voices", len(resp.GetVoices())),
		zap.Int("languages", len(g.locales)))

	return g.locales, nil
}

// voiceAliases maps voice language subtags that are not ISO 639-1 to the codes
// language detectors report for them
var voiceAliases = map[string][]string{
	"cmn": {"zh"},
	"fil": {"tl"},
	"nb":  {"no"},
}

// pickLocales chooses one voice locale per primary subtag. The locale whose
// region repeats the language ("de-DE") wins, then en-US for English, then the
// alphabetically first. Subtags in voiceAliases are also published under
// their ISO 639-1 code.
func pickLocales(codes []string) map[string]string {
	sort.Strings(codes)

	locales := make(map[string]string)
	for _, code := range codes {
		primary := domain.PrimarySubtag(code)
		if primary == "" {
			continue
		}
		current, seen := locales[primary]
		if !seen || localeRank(code) < localeRank(current) {
			locales[primary] = code
		}
	}

	for primary, aliases := range voiceAliases {
		locale, ok := locales[primary]
		if !ok {
			continue
		}
		for _, alias := range aliases {
			if _, taken := locales[alias]; !taken {
				locales[alias] = locale
			}
		}
	}
	return locales
}

func localeRank(code string) int {
	primary, region, _ := strings.Cut(code, "-")
	switch {
	case code == "en-US":
		return 0
	case strings.EqualFold(primary, region):
		return 1
	default:
		return 2
	}
}

func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return display.English.Languages().Name(tag)
}
