package i18n

import (
	"regexp"
	"strings"
)

// Lang is a supported narrative language code.
type Lang string

const (
	EN Lang = "en"
	TR Lang = "tr"
	ES Lang = "es"
	PT Lang = "pt"
	VI Lang = "vi"
	RU Lang = "ru"
	UK Lang = "uk"
	AR Lang = "ar"
	ZH Lang = "zh"
	KO Lang = "ko"
)

// Config carries a locale's display zone label and its fixed UTC offset
// in hours. Narrative times shift by this offset; there is no IANA
// timezone handling anywhere.
type Config struct {
	Label  string
	Offset int
}

var configs = map[Lang]Config{
	EN: {Label: "UTC+0", Offset: 0},
	TR: {Label: "UTC+3", Offset: 3},
	ES: {Label: "UTC+0", Offset: 0},
	PT: {Label: "UTC+0", Offset: 0},
	VI: {Label: "UTC+7", Offset: 7},
	RU: {Label: "UTC+3", Offset: 3},
	UK: {Label: "UTC+2", Offset: 2},
	AR: {Label: "UTC+3", Offset: 3},
	ZH: {Label: "UTC+8", Offset: 8},
	KO: {Label: "UTC+9", Offset: 9},
}

// ConfigFor resolves a locale config, falling back to English for
// unknown codes.
func ConfigFor(l Lang) Config {
	if c, ok := configs[l]; ok {
		return c
	}
	return configs[EN]
}

// TextsFor resolves the sentence templates for a language, falling back
// to English.
func TextsFor(l Lang) Texts {
	if t, ok := texts[l]; ok {
		return t
	}
	return texts[EN]
}

// Languages lists the supported codes.
func Languages() []Lang {
	return []Lang{EN, TR, ES, PT, VI, RU, UK, AR, ZH, KO}
}

var placeholderRE = regexp.MustCompile(`\{(\w+)\}`)

// Format substitutes {NAME} placeholders in a sentence template. Unknown
// names expand to the empty string.
func Format(tmpl string, vars map[string]string) string {
	return placeholderRE.ReplaceAllStringFunc(tmpl, func(m string) string {
		return vars[m[1:len(m)-1]]
	})
}

var wordStartRE = regexp.MustCompile(`\b[a-z]`)

// Humanize turns an upstream type key into a display label:
// "REALIZED_PNL" becomes "Realized Pnl". Unknown categories keep working
// this way without a label table entry.
func Humanize(typ string) string {
	s := strings.ReplaceAll(strings.ToLower(typ), "_", " ")
	return wordStartRE.ReplaceAllStringFunc(s, strings.ToUpper)
}

// FriendlyLabel localizes a transaction type for narrative display.
// Lookup order: the language's own table, then English, then the
// humanized key itself.
func FriendlyLabel(typ string, l Lang) string {
	if typ == "" {
		return "(unknown)"
	}
	if m, ok := labels[l]; ok {
		if s, ok := m[typ]; ok {
			return s
		}
	}
	if s, ok := labels[EN][typ]; ok {
		return s
	}
	return Humanize(typ)
}
