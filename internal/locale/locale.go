// Package locale renders all user-facing strings. String tables are
// embedded YAML files, one per language, with {name} placeholders.
// English is the fallback for unknown languages and missing keys.
package locale

import (
	"embed"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tablesFS embed.FS

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Italian,
}

var matcher = language.NewMatcher(supported)

// Args carries placeholder values for template substitution.
type Args map[string]string

// Table resolves message keys for one active language.
type Table struct {
	strings  map[string]string
	fallback map[string]string
}

// New loads the table best matching the given language code. Codes are
// matched per BCP 47, so "it-CH" resolves to Italian and anything
// unsupported to English.
func New(lang string) (*Table, error) {
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()

	fallback, err := loadTable("en")
	if err != nil {
		return nil, err
	}

	active := fallback
	if base.String() != "en" {
		active, err = loadTable(base.String())
		if err != nil {
			return nil, err
		}
	}

	return &Table{strings: active, fallback: fallback}, nil
}

func loadTable(code string) (map[string]string, error) {
	raw, err := tablesFS.ReadFile("tables/" + code + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("load string table %q: %w", code, err)
	}
	table := make(map[string]string)
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("parse string table %q: %w", code, err)
	}
	return table, nil
}

// Get returns the localized string for key with placeholders
// substituted. Missing keys fall back to English; a key absent there
// too is returned verbatim so the omission is visible.
func (t *Table) Get(key string, args Args) string {
	template, ok := t.strings[key]
	if !ok {
		template, ok = t.fallback[key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return template
	}

	pairs := make([]string, 0, len(args)*2)
	for name, value := range args {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// LanguageName returns the display name of the active language, used
// in the system prompt.
func (t *Table) LanguageName() string {
	return t.Get("lang_name", nil)
}
