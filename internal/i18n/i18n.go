// Package i18n loads the embedded text catalogs and resolves dotted paths
// into display strings.
package i18n

import (
	"embed"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/genesis/internal/registry"
)

//go:embed locales/*.yaml
var locales embed.FS

// DefaultLanguage is used when a requested catalog does not exist.
const DefaultLanguage = "en"

// Catalog is a parsed, read-only text tree for one language.
type Catalog struct {
	lang   string
	root   map[string]any
	logger *slog.Logger
}

// Languages returns the embedded catalog codes.
func Languages() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return []string{DefaultLanguage}
	}
	var out []string
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(out)
	return out
}

// Load parses the catalog for lang, falling back to DefaultLanguage.
func Load(lang string, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := locales.ReadFile("locales/" + lang + ".yaml")
	if err != nil {
		logger.Warn("catalog not found, using default", "lang", lang, "default", DefaultLanguage)
		lang = DefaultLanguage
		data, err = locales.ReadFile("locales/" + lang + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read default catalog: %w", err)
		}
	}

	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse catalog %q: %w", lang, err)
	}
	return &Catalog{lang: lang, root: root, logger: logger}, nil
}

// MustLoad is Load for the embedded default catalog, which is known good.
func MustLoad(lang string) *Catalog {
	c, err := Load(lang, nil)
	if err != nil {
		panic(err)
	}
	return c
}

// Lang returns the catalog's language code.
func (c *Catalog) Lang() string {
	return c.lang
}

// T resolves path, returning a bracketed placeholder when it cannot.
func (c *Catalog) T(path string) string {
	s, ok := c.Lookup(path)
	if !ok {
		c.logger.Debug("translation path error", "path", path, "result", s)
	}
	return s
}

// Lookup resolves path and reports whether it produced a real string.
func (c *Catalog) Lookup(path string) (string, bool) {
	s := ResolvePath(c.root, path)
	return s, !IsPlaceholder(s)
}

// Choice returns the display text for a node choice, falling back to the
// statement of its belief.
func (c *Catalog) Choice(ch registry.Choice) string {
	if s, ok := c.Lookup(ch.TextKey); ok {
		return s
	}
	return c.T("beliefs." + string(ch.Belief))
}

// ResolvePath walks a dotted path through nested maps. It never fails:
// problems are reported as stable bracketed placeholders.
func ResolvePath(root map[string]any, path string) string {
	if root == nil {
		return "[ROOT_MISSING]"
	}
	if path == "" {
		return "[PATH_EMPTY]"
	}

	var cur any = root
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return fmt.Sprintf("[KEY_ERROR: %s]", key)
		}
		next, ok := m[key]
		if !ok {
			return fmt.Sprintf("[KEY_ERROR: %s]", key)
		}
		cur = next
	}

	switch v := cur.(type) {
	case string:
		return v
	case map[string]any, []any:
		return fmt.Sprintf("[OBJECT_ERROR: %s]", path)
	default:
		return fmt.Sprintf("[TYPE_ERROR: %s]", path)
	}
}

// IsPlaceholder reports whether s is one of ResolvePath's markers.
func IsPlaceholder(s string) bool {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return false
	}
	for _, p := range []string{"[ROOT_MISSING]", "[PATH_EMPTY]", "[KEY_ERROR: ", "[OBJECT_ERROR: ", "[TYPE_ERROR: "} {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
