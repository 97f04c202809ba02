// Package localization provides the bilingual (English/Kannada) label tables
// for the reporting UI. Translations are loaded from per-language JSON files;
// unknown keys fall back to English and then to the key itself.
package localization

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

const fallbackLang = "en"

// Localizer holds the translation tables, one map of key→value per language.
type Localizer struct {
	translations map[string]map[string]string
	mu           sync.RWMutex
}

// NewLocalizer loads every <lang>.json file in dir.
func NewLocalizer(dir string) (*Localizer, error) {
	l := &Localizer{translations: make(map[string]map[string]string)}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read locales directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		lang := strings.TrimSuffix(file.Name(), ".json")

		data, err := os.ReadFile(filepath.Join(dir, file.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", file.Name(), err)
		}
		var table map[string]string
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", file.Name(), err)
		}
		l.translations[lang] = table
	}

	return l, nil
}

// GetString returns the value for key in lang, falling back to English and
// finally to the key itself.
func (l *Localizer) GetString(lang, key string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if table, ok := l.translations[lang]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	if lang != fallbackLang {
		if table, ok := l.translations[fallbackLang]; ok {
			if value, ok := table[key]; ok {
				return value
			}
		}
	}
	return key
}

// Table returns a copy of the full label table for lang, with English values
// filling any gaps. Unknown languages yield the English table.
func (l *Localizer) Table(lang string) map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]string)
	for key, value := range l.translations[fallbackLang] {
		out[key] = value
	}
	if lang != fallbackLang {
		for key, value := range l.translations[lang] {
			out[key] = value
		}
	}
	return out
}

// Languages lists the loaded language codes in sorted order.
func (l *Localizer) Languages() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	langs := make([]string, 0, len(l.translations))
	for lang := range l.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
