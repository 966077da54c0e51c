package sheets

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Config holds configuration for the translation spreadsheet.
type Config struct {
	// SpreadsheetID is the id of the spreadsheet (from its URL).
	SpreadsheetID string `mapstructure:"spreadsheet_id" default:""`
	// Languages maps language codes to sheet tabs, e.g. "en:EN,de:DE,pl:PL".
	Languages string `mapstructure:"languages" default:"en:EN,de:DE,pl:PL"`
	// BaseLanguage is the code of the source language.
	BaseLanguage string `mapstructure:"base_language" default:"pl"`
	// TimeoutSeconds is the HTTP timeout per API call. Zero disables it.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Language is a language code bound to its sheet tab.
type Language struct {
	// Code is the short language code (e.g. "en").
	Code string
	// Tab is the sheet tab name (e.g. "EN").
	Tab string
}

// LanguageSet is the fixed set of languages kept in the spreadsheet.
type LanguageSet struct {
	// Base is the source language.
	Base Language
	// Secondary lists the languages that need translation, in config order.
	Secondary []Language
}

// Codes returns every language code, base first.
func (s LanguageSet) Codes() []string {
	codes := []string{s.Base.Code}
	for _, l := range s.Secondary {
		codes = append(codes, l.Code)
	}
	return codes
}

// LanguageSet parses and validates the configured languages.
func (c Config) LanguageSet() (LanguageSet, error) {
	return ParseLanguages(c.Languages, c.BaseLanguage)
}

// Validate checks that the configuration is usable for a sync.
func (c Config) Validate() error {
	if strings.TrimSpace(c.SpreadsheetID) == "" {
		return fmt.Errorf("sheets: spreadsheet_id is required")
	}
	_, err := c.LanguageSet()
	return err
}

// ParseLanguages parses a "code:TAB,code:TAB" list. Codes must be valid
// BCP 47 tags and unique; base must be one of them.
func ParseLanguages(list, base string) (LanguageSet, error) {
	var set LanguageSet
	seen := make(map[string]struct{})
	foundBase := false

	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		code, tab, ok := strings.Cut(entry, ":")
		code = strings.TrimSpace(code)
		tab = strings.TrimSpace(tab)
		if !ok || code == "" || tab == "" {
			return LanguageSet{}, fmt.Errorf("sheets: invalid language entry %q (want code:TAB)", entry)
		}
		if _, err := language.Parse(code); err != nil {
			return LanguageSet{}, fmt.Errorf("sheets: invalid language code %q: %w", code, err)
		}
		if _, dup := seen[code]; dup {
			return LanguageSet{}, fmt.Errorf("sheets: language %q configured twice", code)
		}
		seen[code] = struct{}{}

		lang := Language{Code: code, Tab: tab}
		if code == base {
			set.Base = lang
			foundBase = true
			continue
		}
		set.Secondary = append(set.Secondary, lang)
	}

	if len(seen) == 0 {
		return LanguageSet{}, fmt.Errorf("sheets: no languages configured")
	}
	if !foundBase {
		return LanguageSet{}, fmt.Errorf("sheets: base language %q is not in the language list", base)
	}

	return set, nil
}
