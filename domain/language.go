package domain

import (
	"sort"
	"strings"
)

// DefaultSpeechLanguage is used when the detected language cannot be spoken
const DefaultSpeechLanguage = "en"

// AutoDetect asks a translator to work out the source language itself
const AutoDetect = "auto"

// LanguageSet maps a language code to its English display name
type LanguageSet map[string]string

// Contains reports whether code is part of the set
func (s LanguageSet) Contains(code string) bool {
	_, ok := s[code]
	return ok
}

// Codes returns the codes in the set, sorted
func (s LanguageSet) Codes() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// PrimarySubtag returns the leading subtag of a language tag, lower-cased.
// "en-US" and "en_US" both yield "en".
func PrimarySubtag(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}
