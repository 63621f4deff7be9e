// Package lipgloss renders the report to a terminal for previews and
// verbose runs, with row fills built from the configured hex colors.
package lipgloss

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffdoc"
)

// Compile-time interface verification.
var _ diffdoc.Sink = (*Sink)(nil)

// Sink writes a styled rendition of the command sequence to a writer.
type Sink struct {
	w        io.Writer
	cfg      diffdoc.Config
	tok      diffdoc.Tokenizer // nil disables syntax highlighting
	renderer *lipgloss.Renderer
}

// NewSink creates a terminal sink. The color profile is detected from w.
func NewSink(w io.Writer, cfg diffdoc.Config, tok diffdoc.Tokenizer) *Sink {
	return &Sink{w: w, cfg: cfg, tok: tok, renderer: lipgloss.NewRenderer(w)}
}

// WithRenderer overrides the renderer; tests use it to force a profile.
func (s *Sink) WithRenderer(r *lipgloss.Renderer) *Sink {
	s.renderer = r
	return s
}

// Render writes the report. The writer is assumed to be append-only, so a
// mid-render failure simply stops the stream.
func (s *Sink) Render(ctx context.Context, report *diffdoc.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	title := s.renderer.NewStyle().Bold(true).Underline(true)
	if _, err := fmt.Fprintln(s.w, title.Render(report.Title)); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	for _, cmd := range report.Commands {
		var err error
		switch c := cmd.(type) {
		case diffdoc.Heading:
			heading := s.renderer.NewStyle().Bold(true)
			_, err = fmt.Fprintf(s.w, "\n%s\n", heading.Render(c.Text))
		case diffdoc.Legend:
			err = s.renderLegend(c)
		case diffdoc.TableRow:
			err = s.renderRow(c)
		case diffdoc.PageBreak:
			_, err = fmt.Fprintln(s.w, strings.Repeat("─", 60))
		case diffdoc.Image:
			faint := s.renderer.NewStyle().Faint(true)
			_, err = fmt.Fprintln(s.w, faint.Render("[image: "+c.Path+"]"))
		case diffdoc.Notice:
			italic := s.renderer.NewStyle().Italic(true)
			_, err = fmt.Fprintln(s.w, italic.Render(c.Text))
		}
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
	}
	return nil
}

func (s *Sink) renderLegend(legend diffdoc.Legend) error {
	for _, e := range legend.Entries {
		swatch := s.renderer.NewStyle().
			Background(lipgloss.Color("#" + e.Color)).
			Foreground(lipgloss.Color("#000000"))
		if _, err := fmt.Fprintf(s.w, "%s %s\n", swatch.Render(" "+e.Symbol+" "), e.Label); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sink) renderRow(row diffdoc.TableRow) error {
	nums := s.renderer.NewStyle().Faint(true).
		Render(fmt.Sprintf("%4s %4s ", lineNum(row.OldLine), lineNum(row.NewLine)))

	fill := s.renderer.NewStyle().
		Background(lipgloss.Color("#" + s.cfg.ColorFor(row.Role))).
		Foreground(lipgloss.Color("#000000"))

	text := expandTabs(row.Text)
	content := strings.TrimPrefix(text, row.Symbol)

	var body string
	if tokens := s.tokenize(row.File, content); tokens != nil {
		var b strings.Builder
		b.WriteString(fill.Render(row.Symbol))
		for _, tok := range tokens {
			st := fill
			if tok.Style.Foreground != "" {
				st = st.Foreground(lipgloss.Color(tok.Style.Foreground))
			}
			st = st.Bold(tok.Style.Bold).Italic(tok.Style.Italic)
			b.WriteString(st.Render(strings.TrimSuffix(tok.Text, "\n")))
		}
		body = b.String()
	} else {
		body = fill.Render(text)
	}

	_, err := fmt.Fprintf(s.w, "%s%s\n", nums, body)
	return err
}

func (s *Sink) tokenize(path, content string) []diffdoc.Token {
	if s.tok == nil || content == "" {
		return nil
	}
	return s.tok.Tokenize(path, content)
}

func lineNum(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}

// tabWidth is the standard terminal tab stop interval.
const tabWidth = 8

// expandTabs replaces tabs with spaces up to the next tab stop, since
// styled output breaks on raw tab characters.
func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}
