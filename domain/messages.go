package domain

// TranslationRequest represents an incoming translation request
type TranslationRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}

// TranslationResponse represents the translated text returned to the caller
type TranslationResponse struct {
	TranslatedText string `json:"translated_text"`
}

// SpeechRequest represents an incoming text-to-speech request
type SpeechRequest struct {
	Text string `json:"text"`
}

// SpeechResult holds synthesized audio and the language it was spoken in
type SpeechResult struct {
	Audio       []byte
	Language    string
	ContentType string
}

// Filename returns the attachment name used when the audio is downloaded
func (r *SpeechResult) Filename() string {
	return "tts_" + r.Language + ".mp3"
}

// LanguagesResponse lists the languages each configured backend accepts
type LanguagesResponse struct {
	Translation LanguageSet `json:"translation"`
	TTS         LanguageSet `json:"tts"`
}
