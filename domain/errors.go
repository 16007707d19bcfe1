package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyText           = errors.New("input text cannot be empty")
	ErrEmptyTargetLanguage = errors.New("target language cannot be empty")
	ErrEmptyTranslation    = errors.New("translator returned an empty result")
	ErrLanguageNotDetected = errors.New("language could not be detected")
)

// UnsupportedLanguageError is returned by collaborators that reject a language code
type UnsupportedLanguageError struct {
	Code string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("invalid destination language: %q", e.Code)
}

// invalidDestinationText is the phrase some translation backends put in their
// error text instead of returning a typed error.
const invalidDestinationText = "invalid destination language"

// IsUnsupportedLanguage reports whether err signals a rejected target language.
// The typed error is checked first; the message match covers backends that
// only report the condition as text.
func IsUnsupportedLanguage(err error) bool {
	if err == nil {
		return false
	}
	var ule *UnsupportedLanguageError
	if errors.As(err, &ule) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), invalidDestinationText)
}
