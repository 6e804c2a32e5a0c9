// Package locales inspects the translation files shipped in assets/locales.
package locales

import (
	"encoding/json"
	"io/fs"
	"path"
	"sort"
	"strings"
)

const Dir = "assets/locales"

// Available lists the locale names found in assets, sorted.
func Available(assets fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(assets, Dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

func keys(assets fs.FS, locale string) (map[string]struct{}, error) {
	content, err := fs.ReadFile(assets, path.Join(Dir, locale+".json"))
	if err != nil {
		return nil, err
	}

	keyValues := make(map[string]any)
	if err := json.Unmarshal(content, &keyValues); err != nil {
		return nil, err
	}
	delete(keyValues, "@metadata")

	out := make(map[string]struct{}, len(keyValues))
	for key := range keyValues {
		out[key] = struct{}{}
	}
	return out, nil
}

// Missing returns, per locale, the keys of reference the locale lacks.
// Complete locales are left out.
func Missing(assets fs.FS, reference string) (map[string][]string, error) {
	referenceKeys, err := keys(assets, reference)
	if err != nil {
		return nil, err
	}
	available, err := Available(assets)
	if err != nil {
		return nil, err
	}

	missing := make(map[string][]string)
	for _, locale := range available {
		if locale == reference {
			continue
		}
		localeKeys, err := keys(assets, locale)
		if err != nil {
			return nil, err
		}
		for key := range referenceKeys {
			if _, ok := localeKeys[key]; !ok {
				missing[locale] = append(missing[locale], key)
			}
		}
		sort.Strings(missing[locale])
	}
	return missing, nil
}
