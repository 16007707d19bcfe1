// Package languages holds the language tables of the Google web backends.
package languages

import (
	"strings"

	"github.com/satriahrh/suara/domain"
)

// translateNames maps Google Translate language names to their codes
var translateNames = map[string]string{
	"afrikaans":             "af",
	"albanian":              "sq",
	"amharic":               "am",
	"arabic":                "ar",
	"armenian":              "hy",
	"assamese":              "as",
	"aymara":                "ay",
	"azerbaijani":           "az",
	"bambara":               "bm",
	"basque":                "eu",
	"belarusian":            "be",
	"bengali":               "bn",
	"bhojpuri":              "bho",
	"bosnian":               "bs",
	"bulgarian":             "bg",
	"catalan":               "ca",
	"cebuano":               "ceb",
	"chichewa":              "ny",
	"chinese (simplified)":  "zh-CN",
	"chinese (traditional)": "zh-TW",
	"corsican":              "co",
	"croatian":              "hr",
	"czech":                 "cs",
	"danish":                "da",
	"dhivehi":               "dv",
	"dogri":                 "doi",
	"dutch":                 "nl",
	"english":               "en",
	"esperanto":             "eo",
	"estonian":              "et",
	"ewe":                   "ee",
	"filipino":              "tl",
	"finnish":               "fi",
	"french":                "fr",
	"frisian":               "fy",
	"galician":              "gl",
	"georgian":              "ka",
	"german":                "de",
	"greek":                 "el",
	"guarani":               "gn",
	"gujarati":              "gu",
	"haitian creole":        "ht",
	"hausa":                 "ha",
	"hawaiian":              "haw",
	"hebrew":                "iw",
	"hindi":                 "hi",
	"hmong":                 "hmn",
	"hungarian":             "hu",
	"icelandic":             "is",
	"igbo":                  "ig",
	"ilocano":               "ilo",
	"indonesian":            "id",
	"irish":                 "ga",
	"italian":               "it",
	"japanese":              "ja",
	"javanese":              "jw",
	"kannada":               "kn",
	"kazakh":                "kk",
	"khmer":                 "km",
	"kinyarwanda":           "rw",
	"konkani":               "gom",
	"korean":                "ko",
	"krio":                  "kri",
	"kurdish (kurmanji)":    "ku",
	"kurdish (sorani)":      "ckb",
	"kyrgyz":                "ky",
	"lao":                   "lo",
	"latin":                 "la",
	"latvian":               "lv",
	"lingala":               "ln",
	"lithuanian":            "lt",
	"luganda":               "lg",
	"luxembourgish":         "lb",
	"macedonian":            "mk",
	"maithili":              "mai",
	"malagasy":              "mg",
	"malay":                 "ms",
	"malayalam":             "ml",
	"maltese":               "mt",
	"maori":                 "mi",
	"marathi":               "mr",
	"meiteilon (manipuri)":  "mni-Mtei",
	"mizo":                  "lus",
	"mongolian":             "mn",
	"myanmar":               "my",
	"nepali":                "ne",
	"norwegian":             "no",
	"odia (oriya)":          "or",
	"oromo":                 "om",
	"pashto":                "ps",
	"persian":               "fa",
	"polish":                "pl",
	"portuguese":            "pt",
	"punjabi":               "pa",
	"quechua":               "qu",
	"romanian":              "ro",
	"russian":               "ru",
	"samoan":                "sm",
	"sanskrit":              "sa",
	"scots gaelic":          "gd",
	"sepedi":                "nso",
	"serbian":               "sr",
	"sesotho":               "st",
	"shona":                 "sn",
	"sindhi":                "sd",
	"sinhala":               "si",
	"slovak":                "sk",
	"slovenian":             "sl",
	"somali":                "so",
	"spanish":               "es",
	"sundanese":             "su",
	"swahili":               "sw",
	"swedish":               "sv",
	"tajik":                 "tg",
	"tamil":                 "ta",
	"tatar":                 "tt",
	"telugu":                "te",
	"thai":                  "th",
	"tigrinya":              "ti",
	"tsonga":                "ts",
	"turkish":               "tr",
	"turkmen":               "tk",
	"twi":                   "ak",
	"ukrainian":             "uk",
	"urdu":                  "ur",
	"uyghur":                "ug",
	"uzbek":                 "uz",
	"vietnamese":            "vi",
	"welsh":                 "cy",
	"xhosa":                 "xh",
	"yiddish":               "yi",
	"yoruba":                "yo",
	"zulu":                  "zu",
}

// translateAliases accepts the ISO codes Google replaced with legacy ones
var translateAliases = map[string]string{
	"he":  "iw",
	"jv":  "jw",
	"zh":  "zh-CN",
	"fil": "tl",
	"nb":  "no",
}

// speechLanguages is the set the Google Translate speech endpoint can voice
var speechLanguages = domain.LanguageSet{
	"af":    "Afrikaans",
	"am":    "Amharic",
	"ar":    "Arabic",
	"bg":    "Bulgarian",
	"bn":    "Bengali",
	"bs":    "Bosnian",
	"ca":    "Catalan",
	"cs":    "Czech",
	"cy":    "Welsh",
	"da":    "Danish",
	"de":    "German",
	"el":    "Greek",
	"en":    "English",
	"es":    "Spanish",
	"et":    "Estonian",
	"eu":    "Basque",
	"fi":    "Finnish",
	"fr":    "French",
	"fr-CA": "French (Canada)",
	"gl":    "Galician",
	"gu":    "Gujarati",
	"ha":    "Hausa",
	"hi":    "Hindi",
	"hr":    "Croatian",
	"hu":    "Hungarian",
	"id":    "Indonesian",
	"is":    "Icelandic",
	"it":    "Italian",
	"iw":    "Hebrew",
	"ja":    "Japanese",
	"jw":    "Javanese",
	"km":    "Khmer",
	"kn":    "Kannada",
	"ko":    "Korean",
	"la":    "Latin",
	"lt":    "Lithuanian",
	"lv":    "Latvian",
	"ml":    "Malayalam",
	"mr":    "Marathi",
	"ms":    "Malay",
	"my":    "Myanmar (Burmese)",
	"ne":    "Nepali",
	"nl":    "Dutch",
	"no":    "Norwegian",
	"pa":    "Punjabi (Gurmukhi)",
	"pl":    "Polish",
	"pt":    "Portuguese (Brazil)",
	"pt-PT": "Portuguese (Portugal)",
	"ro":    "Romanian",
	"ru":    "Russian",
	"si":    "Sinhala",
	"sk":    "Slovak",
	"sq":    "Albanian",
	"sr":    "Serbian",
	"su":    "Sundanese",
	"sv":    "Swedish",
	"sw":    "Swahili",
	"ta":    "Tamil",
	"te":    "Telugu",
	"th":    "Thai",
	"tl":    "Filipino",
	"tr":    "Turkish",
	"uk":    "Ukrainian",
	"ur":    "Urdu",
	"vi":    "Vietnamese",
	"yue":   "Cantonese",
	"zh":    "Chinese (Mandarin)",
	"zh-CN": "Chinese (Simplified)",
	"zh-TW": "Chinese (Mandarin/Taiwan)",
}

// speechAliases maps detector output to the code the speech endpoint expects
var speechAliases = map[string]string{
	"he":  "iw",
	"jv":  "jw",
	"fil": "tl",
	"nb":  "no",
}

// Translation returns the Google Translate target languages keyed by code
func Translation() domain.LanguageSet {
	set := make(domain.LanguageSet, len(translateNames))
	for name, code := range translateNames {
		set[code] = displayName(name)
	}
	return set
}

// Resolve turns a language code or English language name into the code
// Google Translate expects. Matching is case-insensitive.
func Resolve(nameOrCode string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(nameOrCode))
	if key == "" {
		return "", false
	}
	if code, ok := translateNames[key]; ok {
		return code, true
	}
	if code, ok := translateAliases[key]; ok {
		return code, true
	}
	for _, code := range translateNames {
		if strings.ToLower(code) == key {
			return code, true
		}
	}
	return "", false
}

// Speech returns the languages the Google speech endpoint accepts, including
// the ISO codes that alias Google's legacy ones.
func Speech() domain.LanguageSet {
	set := make(domain.LanguageSet, len(speechLanguages)+len(speechAliases))
	for code, name := range speechLanguages {
		set[code] = name
	}
	for alias, code := range speechAliases {
		set[alias] = speechLanguages[code]
	}
	return set
}

// SpeechCode maps an accepted speech language to the code sent upstream
func SpeechCode(code string) string {
	if legacy, ok := speechAliases[code]; ok {
		return legacy
	}
	return code
}

func displayName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		if strings.HasPrefix(w, "(") && len(w) > 1 {
			words[i] = "(" + strings.ToUpper(w[1:2]) + w[2:]
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
