// Package markdown renders the composed report as a Markdown document.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/diffdoc"
)

// Compile-time interface verification.
var _ diffdoc.Sink = (*Sink)(nil)

// Sink writes the report to a Markdown file, replacing the target
// atomically so a failed run leaves no partial artifact.
type Sink struct {
	path string
}

// NewSink creates a sink writing to path.
func NewSink(path string) *Sink {
	return &Sink{path: path}
}

// Render writes the full command sequence to the target file.
func (s *Sink) Render(ctx context.Context, report *diffdoc.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n", report.Title)

	inTable := false
	for _, cmd := range report.Commands {
		if _, ok := cmd.(diffdoc.TableRow); !ok {
			inTable = false
		}
		switch c := cmd.(type) {
		case diffdoc.Heading:
			fmt.Fprintf(&buf, "\n%s %s\n", strings.Repeat("#", c.Level), c.Text)
		case diffdoc.Legend:
			buf.WriteString("\n| | | |\n|---|---|---|\n")
			for _, e := range c.Entries {
				fmt.Fprintf(&buf, "| %s | `#%s` | `%s` |\n", escape(e.Label), e.Color, e.Symbol)
			}
		case diffdoc.TableRow:
			if !inTable {
				buf.WriteString("\n| Old | New | |\n|---:|---:|---|\n")
				inTable = true
			}
			fmt.Fprintf(&buf, "| %s | %s | `%s` |\n",
				lineNum(c.OldLine), lineNum(c.NewLine), escapeCode(c.Text))
		case diffdoc.PageBreak:
			buf.WriteString("\n---\n")
		case diffdoc.Image:
			fmt.Fprintf(&buf, "\n![%s](%s)\n", escape(c.Path), c.Path)
		case diffdoc.Notice:
			fmt.Fprintf(&buf, "\n*%s*\n", escape(c.Text))
		}
	}

	return s.writeAtomic(buf.Bytes())
}

// writeAtomic stages the document in a temp file next to the target and
// renames it into place.
func (s *Sink) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("markdown: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("markdown: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("markdown: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("markdown: %w", err)
	}
	return nil
}

func lineNum(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}

// escape neutralizes characters markdown treats specially in prose cells.
func escape(s string) string {
	return strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`).Replace(s)
}

// escapeCode neutralizes characters that would break a code span inside a
// table cell.
func escapeCode(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "`", "'")
}
