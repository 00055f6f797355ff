package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// Catalog holds UI messages for each supported language.
type Catalog struct {
	messages map[Lang]map[string]string
}

// LoadCatalog reads locales/<lang>.yaml from fsys. The base language file is
// required; the others are optional.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{messages: make(map[Lang]map[string]string, len(Supported))}
	for _, l := range Supported {
		name := path.Join("locales", string(l)+".yaml")
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			if l == Base {
				return nil, fmt.Errorf("read base catalog %s: %w", name, err)
			}
			continue
		}
		msgs := map[string]string{}
		if err := yaml.Unmarshal(raw, &msgs); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", name, err)
		}
		c.messages[l] = msgs
	}
	return c, nil
}

// DefaultCatalog loads the catalogs compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(embeddedLocales)
}

// T returns the message for key in l, then in Base, then the key itself so
// missing translations stay visible.
func (c *Catalog) T(l Lang, key string) string {
	if c == nil {
		return key
	}
	if msg, ok := c.messages[l][key]; ok && strings.TrimSpace(msg) != "" {
		return msg
	}
	if msg, ok := c.messages[Base][key]; ok {
		return msg
	}
	return key
}

// Missing lists keys present in Base but absent in l.
func (c *Catalog) Missing(l Lang) []string {
	var out []string
	for key := range c.messages[Base] {
		if _, ok := c.messages[l][key]; !ok {
			out = append(out, key)
		}
	}
	return out
}
