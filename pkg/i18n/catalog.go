package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingTranslator is passed to MissingTranslationHandler when no
	// translator is configured.
	ErrMissingTranslator = errors.New("i18n: translator is nil")
	// ErrMissingTranslation reports a key without a message for the locale.
	ErrMissingTranslation = errors.New("i18n: missing translation")
)

// Translator resolves a message key for a locale. Args are applied with
// fmt.Sprintf semantics when present.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the text used when a key cannot be
// translated. fallback is the untranslated text already present on the form.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

// FallbackOnMissing keeps the untranslated text, or the key when there is
// none.
func FallbackOnMissing(_ string, key, fallback string, _ error) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

//go:embed locales/*
var embeddedLocales embed.FS

// EmbeddedFS returns the bundled message catalogs.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}

// Catalog is an in-memory Translator keyed by locale then message key.
type Catalog struct {
	mu       sync.RWMutex
	messages map[string]map[string]string
}

var _ Translator = (*Catalog)(nil)

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{messages: make(map[string]map[string]string)}
}

// DefaultCatalog loads the embedded English and Japanese messages.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalogFS(EmbeddedFS())
}

// LoadCatalogFS reads every YAML file in fsys. Each file maps locales to
// key/message pairs; later files override earlier keys.
func LoadCatalogFS(fsys fs.FS) (*Catalog, error) {
	catalog := NewCatalog()
	if fsys == nil {
		return catalog, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("i18n: read %s: %w", path, err)
		}
		var doc map[string]map[string]string
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("i18n: parse %s: %w", path, err)
		}
		for locale, messages := range doc {
			catalog.Add(locale, messages)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return catalog, nil
}

// Add merges messages into the catalog for locale.
func (c *Catalog) Add(locale string, messages map[string]string) {
	locale = normalizeLocale(locale)
	if locale == "" || len(messages) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.messages == nil {
		c.messages = make(map[string]map[string]string)
	}
	bucket := c.messages[locale]
	if bucket == nil {
		bucket = make(map[string]string, len(messages))
		c.messages[locale] = bucket
	}
	for key, message := range messages {
		if key = strings.TrimSpace(key); key != "" {
			bucket[key] = message
		}
	}
}

// Locales returns the sorted list of locales with messages.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Translate implements Translator. Region-qualified locales ("ja-JP") fall
// back to their base language.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}
	key = strings.TrimSpace(key)
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, candidate := range localeChain(locale) {
		message, ok := c.messages[candidate][key]
		if !ok {
			continue
		}
		if len(args) > 0 {
			return fmt.Sprintf(message, args...), nil
		}
		return message, nil
	}
	return "", fmt.Errorf("%w: %s/%s", ErrMissingTranslation, locale, key)
}

func localeChain(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}
	chain := []string{locale}
	if base, _, found := strings.Cut(locale, "-"); found && base != "" {
		chain = append(chain, base)
	}
	return chain
}

func normalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	return strings.ReplaceAll(locale, "_", "-")
}
