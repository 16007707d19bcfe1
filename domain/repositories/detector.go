package repositories

import "context"

// LanguageDetector guesses the language a text is written in
type LanguageDetector interface {
	// DetectLanguage returns a language tag such as "en" or "zh-CN"
	DetectLanguage(ctx context.Context, text string) (string, error)
}
