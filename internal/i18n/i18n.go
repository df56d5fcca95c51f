package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Direction is the text direction of a locale.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// DefaultLocale is the base locale. Its values live directly in the catalog
// dataset, so it has no bundle file.
const DefaultLocale = "fr"

// Locale describes one supported language for the UI language switcher.
type Locale struct {
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	NativeName string    `json:"nativeName"`
	Direction  Direction `json:"direction"`
}

var supported = []Locale{
	{Code: "fr", Name: "French", NativeName: "Français", Direction: LTR},
	{Code: "en", Name: "English", NativeName: "English", Direction: LTR},
	{Code: "ar", Name: "Arabic", NativeName: "العربية", Direction: RTL},
}

// Locales returns the supported locales in display order.
func Locales() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Normalize maps a requested locale code to a supported one. Unknown or
// empty codes degrade to the default locale; region subtags are stripped
// ("fr-TN" matches "fr").
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	for _, l := range supported {
		if l.Code == code {
			return l.Code
		}
	}
	return DefaultLocale
}

// CategoryTranslation overrides the display fields of one category. Any
// field may be empty, in which case the base value is kept.
type CategoryTranslation struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProductTranslation overrides the display fields of one product, keyed by
// the product slug. All fields are optional.
type ProductTranslation struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Origin      string   `json:"origin,omitempty"`
	Type        string   `json:"type,omitempty"`
	Usage       []string `json:"usage,omitempty"`
	Formats     []string `json:"formats,omitempty"`
}

// Bundle is the translation bundle of one locale.
type Bundle struct {
	Categories map[string]CategoryTranslation `json:"categories"`
	Products   map[string]ProductTranslation  `json:"products"`
	UI         map[string]string              `json:"ui"`
}

// Category looks up the category translation for a slug. Safe on a nil
// bundle.
func (b *Bundle) Category(slug string) (CategoryTranslation, bool) {
	if b == nil {
		return CategoryTranslation{}, false
	}
	t, ok := b.Categories[slug]
	return t, ok
}

// Product looks up the product translation for a slug. Safe on a nil
// bundle.
func (b *Bundle) Product(slug string) (ProductTranslation, bool) {
	if b == nil {
		return ProductTranslation{}, false
	}
	t, ok := b.Products[slug]
	return t, ok
}

// UIString returns the translated UI string for key, or fallback when the
// bundle is nil or has no entry.
func (b *Bundle) UIString(key, fallback string) string {
	if b == nil {
		return fallback
	}
	if s, ok := b.UI[key]; ok && s != "" {
		return s
	}
	return fallback
}

//go:embed locales/*.json
var localeFS embed.FS

// Load parses the embedded translation bundles. The file name (without
// extension) is the locale code. The base locale has no bundle and lookups
// for it return nil, which every consumer must treat as "use base values".
func Load() (map[string]*Bundle, error) {
	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	bundles := make(map[string]*Bundle, len(entries))
	for _, e := range entries {
		code := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		raw, err := localeFS.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read bundle %s: %w", e.Name(), err)
		}
		var b Bundle
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("parse bundle %s: %w", e.Name(), err)
		}
		bundles[code] = &b
	}
	return bundles, nil
}
