// Package i18n loads the portal's translation dictionaries and resolves
// message keys per language.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Bundle holds one flat key to text dictionary per language
type Bundle struct {
	defaultLang string
	messages    map[string]map[string]string
}

// Load reads every embedded locale. The default language must be one of them.
func Load(defaultLang string) (*Bundle, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}

	b := &Bundle{messages: make(map[string]map[string]string)}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".yaml" {
			continue
		}
		raw, err := localeFS.ReadFile(path.Join("locales", name))
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", name, err)
		}
		dict := make(map[string]string)
		if err := yaml.Unmarshal(raw, &dict); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", name, err)
		}
		b.messages[strings.TrimSuffix(name, ".yaml")] = dict
	}

	defaultLang = strings.ToLower(strings.TrimSpace(defaultLang))
	if _, ok := b.messages[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %q has no locale file", defaultLang)
	}
	b.defaultLang = defaultLang
	return b, nil
}

// MustLoad is Load for package initialization and tests
func MustLoad(defaultLang string) *Bundle {
	b, err := Load(defaultLang)
	if err != nil {
		panic(err)
	}
	return b
}

// Default returns the fallback language code
func (b *Bundle) Default() string {
	return b.defaultLang
}

// Supported reports whether a dictionary exists for lang
func (b *Bundle) Supported(lang string) bool {
	_, ok := b.messages[lang]
	return ok
}

// Languages returns the supported language codes in sorted order
func (b *Bundle) Languages() []string {
	langs := make([]string, 0, len(b.messages))
	for lang := range b.messages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// T translates key into lang, falling back to the default language and
// then to the key itself.
func (b *Bundle) T(lang, key string) string {
	if text, ok := b.messages[lang][key]; ok {
		return text
	}
	if text, ok := b.messages[b.defaultLang][key]; ok {
		return text
	}
	return key
}

// Translator binds T to a single language for templates
func (b *Bundle) Translator(lang string) func(string) string {
	return func(key string) string {
		return b.T(lang, key)
	}
}
