package utils

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"
)

const fallbackLanguage = "en"

func LoadTranslations(language string, assets fs.FS) (map[string]string, error) {
	if language == "" || strings.Contains(language, "/") || strings.Contains(language, "\\") {
		language = fallbackLanguage
	}

	content, err := fs.ReadFile(assets, "assets/locales/"+language+".json")
	if err != nil {
		content, err = fs.ReadFile(assets, "assets/locales/"+fallbackLanguage+".json")
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
	}

	var keyValues map[string]interface{}
	if err := json.Unmarshal(content, &keyValues); err != nil {
		return nil, err
	}

	delete(keyValues, "@metadata")

	out := make(map[string]string, len(keyValues))
	for k, v := range keyValues {
		switch val := v.(type) {
		case string:
			out[k] = val
		default:
			b, err := json.Marshal(val)
			if err != nil {
				out[k] = ""
			} else {
				out[k] = string(b)
			}
		}
	}

	return out, nil
}

// Translator serves translated strings per locale. Locales are loaded on
// first use and fall back to English key by key.
type Translator struct {
	assets        fs.FS
	defaultLocale string

	mu      sync.RWMutex
	locales map[string]map[string]string
}

func NewTranslator(assets fs.FS, defaultLocale string) *Translator {
	if defaultLocale == "" {
		defaultLocale = fallbackLanguage
	}
	return &Translator{
		assets:        assets,
		defaultLocale: defaultLocale,
		locales:       make(map[string]map[string]string),
	}
}

func (t *Translator) load(locale string) map[string]string {
	t.mu.RLock()
	cached, ok := t.locales[locale]
	t.mu.RUnlock()
	if ok {
		return cached
	}

	loaded, err := LoadTranslations(locale, t.assets)
	if err != nil {
		loaded = map[string]string{}
	}

	t.mu.Lock()
	t.locales[locale] = loaded
	t.mu.Unlock()
	return loaded
}

func (t *Translator) Translate(locale string, key string) (string, bool) {
	if locale == "" {
		locale = t.defaultLocale
	}
	if value, ok := t.load(locale)[key]; ok {
		return value, true
	}
	value, ok := t.load(fallbackLanguage)[key]
	return value, ok
}
