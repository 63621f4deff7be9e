// Package locale loads JSON localization tables, one file per language.
package locale

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	"github.com/fwojciec/diffdoc"
)

//go:embed lang/*.json
var defaults embed.FS

// Compile-time interface verification.
var _ diffdoc.Localizer = (*Table)(nil)

// ErrLanguageMissing reports that the requested language has no
// corresponding file.
var ErrLanguageMissing = errors.New("locale: language not available")

// placeholderRE matches an unresolved {name} placeholder after formatting.
var placeholderRE = regexp.MustCompile(`\{[a-z][a-z0-9_]*\}`)

// Table is a read-only mapping from message identifiers to template
// strings for one language. It is safe for concurrent use.
type Table struct {
	lang string
	msgs map[string]string
}

// Default returns the embedded language files shipped with diffdoc.
func Default() fs.FS {
	sub, err := fs.Sub(defaults, "lang")
	if err != nil {
		panic(err)
	}
	return sub
}

// Load reads the table for lang from fsys. The set of available languages
// is the set of files present, not a hardcoded list.
func Load(fsys fs.FS, lang string) (*Table, error) {
	data, err := fs.ReadFile(fsys, lang+".json")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrLanguageMissing, lang)
	}
	if err != nil {
		return nil, fmt.Errorf("locale %s: %w", lang, err)
	}
	msgs := make(map[string]string)
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("locale %s: %w", lang, err)
	}
	return &Table{lang: lang, msgs: msgs}, nil
}

// Languages lists the language codes available in fsys, sorted.
func Languages(fsys fs.FS) []string {
	matches, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(matches))
	for _, m := range matches {
		langs = append(langs, strings.TrimSuffix(m, ".json"))
	}
	sort.Strings(langs)
	return langs
}

// Format substitutes args into the template registered for key. An unknown
// key or an unresolved placeholder is a programming error and panics.
func (t *Table) Format(key string, args map[string]string) string {
	tmpl, ok := t.msgs[key]
	if !ok {
		panic(fmt.Sprintf("locale: unknown message %q in language %q", key, t.lang))
	}
	out := tmpl
	for name, val := range args {
		out = strings.ReplaceAll(out, "{"+name+"}", val)
	}
	if missing := placeholderRE.FindString(out); missing != "" {
		panic(fmt.Sprintf("locale: message %q in language %q has no value for %s", key, t.lang, missing))
	}
	return out
}

// Language returns the language code the table was loaded for.
func (t *Table) Language() string { return t.lang }
