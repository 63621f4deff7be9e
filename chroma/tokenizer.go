// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/diffdoc"
)

// Compile-time interface verification.
var _ diffdoc.Tokenizer = (*Tokenizer)(nil)

// Tokenizer extracts syntax tokens using chroma. The lexer is guessed from
// the file name first, then from the source content.
type Tokenizer struct{}

// NewTokenizer creates a new chroma-based tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits one line of source into styled tokens. Returns nil if no
// lexer can be determined or lexing fails; returns an empty slice for
// empty source (valid input, no tokens).
func (t *Tokenizer) Tokenize(path, source string) []diffdoc.Token {
	if source == "" {
		return []diffdoc.Token{}
	}

	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []diffdoc.Token
	for token := iterator(); token != chroma.EOF; token = iterator() {
		tokens = append(tokens, diffdoc.Token{
			Text:  token.Value,
			Style: tokenStyle(token.Type),
		})
	}
	return tokens
}

// tokenStyle returns the visual style for a chroma token type. Colors
// follow the pygments default style: dark foregrounds that stay readable
// on the light row fills of the report.
func tokenStyle(tt chroma.TokenType) diffdoc.Style {
	switch {
	case tt.InCategory(chroma.Comment):
		return diffdoc.Style{Foreground: "#408080", Italic: true}
	case tt.InSubCategory(chroma.LiteralString):
		return diffdoc.Style{Foreground: "#BA2121"}
	case tt.InSubCategory(chroma.LiteralNumber):
		return diffdoc.Style{Foreground: "#666666"}
	case tt == chroma.NameFunction || tt == chroma.NameFunctionMagic:
		return diffdoc.Style{Foreground: "#0000FF"}
	case tt == chroma.NameClass || tt == chroma.NameNamespace:
		return diffdoc.Style{Foreground: "#0000FF", Bold: true}
	case tt == chroma.NameBuiltin || tt == chroma.NameBuiltinPseudo:
		return diffdoc.Style{Foreground: "#008000"}
	case tt.InCategory(chroma.Keyword):
		return diffdoc.Style{Foreground: "#008000", Bold: true}
	case tt.InCategory(chroma.Operator):
		return diffdoc.Style{Foreground: "#666666"}
	default:
		return diffdoc.Style{}
	}
}
