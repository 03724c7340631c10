// Package i18n resolves UI string keys to localized text.
//
// A Resolver holds the process-wide current language, persists the selection
// in the local settings store, and looks keys up through a fixed fallback
// chain: current locale, then the English table, then the key itself. The
// lookup therefore always yields a displayable string.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/drezzle/drezzle-cli/internal/client/repositories/settings"
	"github.com/drezzle/drezzle-cli/internal/logging"
)

//go:embed locales/*.json
var localeFS embed.FS

// storageKey is the settings-store key holding the persisted locale tag.
const storageKey = settings.KeyLanguage

var (
	// DefaultTag is adopted when nothing valid is persisted.
	DefaultTag = language.MustParse("it")
	// FallbackTag names the table consulted when the current locale
	// misses a key. Its key set is the canonical one.
	FallbackTag = language.MustParse("en")
)

var supported = []language.Tag{
	language.MustParse("it"),
	language.MustParse("es"),
	language.MustParse("de"),
	language.MustParse("en"),
	language.MustParse("en-US"),
}

var matcher = language.NewMatcher(supported)

// Supported returns the closed set of locale tags the client ships tables for.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// ParseTag maps user input ("de", "en-US", "EN") onto a supported tag.
// The bool is false when the input matches no supported locale.
func ParseTag(s string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return language.Tag{}, false
	}
	for _, t := range supported {
		if t == tag {
			return t, true
		}
	}
	if _, idx, conf := matcher.Match(tag); conf >= language.High {
		return supported[idx], true
	}
	return language.Tag{}, false
}

// Store is the slice of the settings repository the resolver needs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Resolver owns the current-language register and the immutable translation
// tables. Reads are allowed from anywhere; writes go through SetLanguage.
type Resolver struct {
	mu      sync.RWMutex
	current language.Tag

	tables map[string]map[string]string
	store  Store
	log    logging.Logger
}

// NewResolver loads the embedded catalogs and returns a resolver set to the
// default language. Call Init to adopt a persisted selection.
func NewResolver(store Store, log logging.Logger) (*Resolver, error) {
	tables, err := loadTables(localeFS)
	if err != nil {
		return nil, err
	}
	return &Resolver{current: DefaultTag, tables: tables, store: store, log: log}, nil
}

func loadTables(catalogFS fs.FS) (map[string]map[string]string, error) {
	paths, err := fs.Glob(catalogFS, "locales/*.json")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale catalogs embedded")
	}

	tables := make(map[string]map[string]string, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var table map[string]string
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		locale := strings.TrimSuffix(path.Base(p), ".json")
		if _, err := language.Parse(locale); err != nil {
			return nil, fmt.Errorf("catalog %s: bad locale tag: %w", p, err)
		}
		tables[locale] = table
	}

	if _, ok := tables[FallbackTag.String()]; !ok {
		return nil, fmt.Errorf("fallback locale %s is not embedded", FallbackTag)
	}
	return tables, nil
}

// Init adopts the persisted language tag when present and supported;
// otherwise the default stays in place. Storage failures are logged and
// swallowed so startup never breaks over a missing preference.
func (r *Resolver) Init(ctx context.Context) {
	if r.store == nil {
		return
	}
	value, err := r.store.Get(ctx, storageKey)
	if err != nil {
		r.log.Warn(ctx, "loading language preference failed", "error", err)
		return
	}
	if len(value) == 0 {
		return
	}
	tag, ok := ParseTag(string(value))
	if !ok {
		r.log.Warn(ctx, "persisted language not supported", "tag", string(value))
		return
	}
	r.mu.Lock()
	r.current = tag
	r.mu.Unlock()
}

// Current returns the process-wide current language.
func (r *Resolver) Current() language.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// SetLanguage switches the current language and persists the choice.
// Persistence is fire-and-forget: a storage failure is logged, the in-memory
// switch still happens. Unsupported tags are rejected.
func (r *Resolver) SetLanguage(ctx context.Context, s string) error {
	tag, ok := ParseTag(s)
	if !ok {
		return fmt.Errorf("unsupported language %q", s)
	}

	if r.store != nil {
		if err := r.store.Set(ctx, storageKey, []byte(tag.String())); err != nil {
			r.log.Warn(ctx, "saving language preference failed", "error", err)
		}
	}

	r.mu.Lock()
	r.current = tag
	r.mu.Unlock()
	return nil
}

// Translate resolves key through the fallback chain. Placeholder tokens such
// as {type} are returned literally; interpolation is the caller's business.
func (r *Resolver) Translate(key string) string {
	current := r.Current().String()

	r.mu.RLock()
	defer r.mu.RUnlock()

	if table, ok := r.tables[current]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := r.tables[FallbackTag.String()][key]; ok {
		return s
	}
	return key
}

// Keys returns the key set of the given locale's table. Used by tests to
// enforce catalog completeness across locales.
func (r *Resolver) Keys(locale string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	table := r.tables[locale]
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	return keys
}
