// Package i18n provides the translated UI strings. Catalogs are gettext
// PO files embedded in the binary.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLocale is used when the requested locale has no catalog.
const DefaultLocale = "en"

//go:embed locales/*.po
var catalogs embed.FS

var current = mustLoad(DefaultLocale)

func mustLoad(locale string) *gotext.Po {
	po, err := load(locale)
	if err != nil {
		panic(err)
	}
	return po
}

func load(locale string) (*gotext.Po, error) {
	data, err := catalogs.ReadFile("locales/" + locale + ".po")
	if err != nil {
		return nil, fmt.Errorf("i18n: no catalog for locale %q", locale)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po, nil
}

// SetLocale switches the active catalog. On error the previous catalog
// stays active.
func SetLocale(locale string) error {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "_-."); i > 0 {
		locale = locale[:i]
	}
	po, err := load(locale)
	if err != nil {
		return err
	}
	current = po
	return nil
}

// Locales lists the embedded catalogs.
func Locales() []string {
	entries, _ := catalogs.ReadDir("locales")
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(names)
	return names
}

// T translates key. Unknown keys are returned as is. Translations with
// verbs are formatted by the caller.
func T(key string) string {
	return current.Get(key)
}
