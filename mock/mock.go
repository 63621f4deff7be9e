// Package mock provides function-field mocks for the diffdoc interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/diffdoc"
)

// Compile-time interface verification.
var (
	_ diffdoc.Parser    = (*Parser)(nil)
	_ diffdoc.Sink      = (*Sink)(nil)
	_ diffdoc.Source    = (*Source)(nil)
	_ diffdoc.Tokenizer = (*Tokenizer)(nil)
	_ diffdoc.Localizer = (*Localizer)(nil)
)

// Parser is a mock implementation of diffdoc.Parser.
type Parser struct {
	ParseFn func(raw string, path string) (*diffdoc.FileChange, error)
}

func (p *Parser) Parse(raw string, path string) (*diffdoc.FileChange, error) {
	return p.ParseFn(raw, path)
}

// Sink is a mock implementation of diffdoc.Sink.
type Sink struct {
	RenderFn func(ctx context.Context, report *diffdoc.Report) error
}

func (s *Sink) Render(ctx context.Context, report *diffdoc.Report) error {
	return s.RenderFn(ctx, report)
}

// Source is a mock implementation of diffdoc.Source.
type Source struct {
	ChangesFn     func(ctx context.Context, from, to string) ([]diffdoc.RawChange, error)
	FirstCommitFn func(ctx context.Context) (string, error)
	HeadFn        func(ctx context.Context) (string, error)
}

func (s *Source) Changes(ctx context.Context, from, to string) ([]diffdoc.RawChange, error) {
	return s.ChangesFn(ctx, from, to)
}

func (s *Source) FirstCommit(ctx context.Context) (string, error) {
	return s.FirstCommitFn(ctx)
}

func (s *Source) Head(ctx context.Context) (string, error) {
	return s.HeadFn(ctx)
}

// Tokenizer is a mock implementation of diffdoc.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(path, source string) []diffdoc.Token
}

func (t *Tokenizer) Tokenize(path, source string) []diffdoc.Token {
	return t.TokenizeFn(path, source)
}

// Localizer is a mock implementation of diffdoc.Localizer.
type Localizer struct {
	FormatFn func(key string, args map[string]string) string
}

func (l *Localizer) Format(key string, args map[string]string) string {
	return l.FormatFn(key, args)
}
