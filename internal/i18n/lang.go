// Package i18n holds the typed English and Spanish text catalogs.
package i18n

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported interface language.
type Lang string

const (
	English Lang = "en"
	Spanish Lang = "es"
)

// Default is used when nothing else matches.
const Default = English

// All returns the supported languages.
func All() []Lang {
	return []Lang{English, Spanish}
}

// DisplayName returns the language's own name.
func (l Lang) DisplayName() string {
	switch l {
	case Spanish:
		return "Español"
	default:
		return "English"
	}
}

func (l Lang) String() string { return string(l) }

// Parse accepts "en" or "es" (case-insensitive, region suffixes allowed).
func Parse(s string) (Lang, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("parse language %q: %w", s, err)
	}
	base, _ := tag.Base()
	for _, l := range All() {
		if base.String() == string(l) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Spanish})

// Detect picks the closest supported language for the given preferences,
// e.g. "es-MX" or POSIX locale values like "es_ES.UTF-8".
func Detect(prefs ...string) Lang {
	var cleaned []string
	for _, p := range prefs {
		p = strings.TrimSpace(p)
		if p == "" || p == "C" || p == "POSIX" {
			continue
		}
		if i := strings.IndexAny(p, ".@"); i >= 0 {
			p = p[:i]
		}
		cleaned = append(cleaned, strings.ReplaceAll(p, "_", "-"))
	}
	if len(cleaned) == 0 {
		return Default
	}
	_, idx := language.MatchStrings(matcher, cleaned...)
	if idx == 1 {
		return Spanish
	}
	return English
}

// DetectEnv detects the language from the usual locale environment variables.
func DetectEnv() Lang {
	return Detect(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
}
