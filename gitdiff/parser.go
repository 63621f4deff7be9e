// Package gitdiff parses raw unified-diff text into classified line
// records using the go-gitdiff library.
package gitdiff

import (
	"errors"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/diffdoc"
)

// Compile-time interface verification.
var _ diffdoc.Parser = (*Parser)(nil)

// Parser classifies one file's diff text.
type Parser struct {
	includeContext bool
}

// NewParser creates a parser. When includeContext is false, unchanged
// (context) lines are dropped before they reach the composer.
func NewParser(includeContext bool) *Parser {
	return &Parser{includeContext: includeContext}
}

// Parse walks the hunks of raw, maintaining 1-based old/new line counters
// seeded from each hunk header. A hunk that cannot be parsed is
// recoverable: the FileChange comes back with Malformed set alongside a
// MalformedHunkError, and the caller keeps processing other files.
func (p *Parser) Parse(raw string, path string) (*diffdoc.FileChange, error) {
	files, _, err := gitdiff.Parse(strings.NewReader(raw))
	if err == nil && len(files) == 0 {
		err = errors.New("diff contains no file sections")
	}
	if err != nil {
		return &diffdoc.FileChange{Path: path, Status: diffdoc.StatusModified, Malformed: true},
			&diffdoc.MalformedHunkError{Path: path, Err: err}
	}

	f := files[0]
	fc := &diffdoc.FileChange{Path: path, Status: statusOf(f)}
	if f.IsRename {
		fc.OldPath = f.OldName
	}

	for _, frag := range f.TextFragments {
		oldNum := int(frag.OldPosition)
		newNum := int(frag.NewPosition)
		for _, ln := range frag.Lines {
			content := strings.TrimSuffix(ln.Line, "\n")
			switch ln.Op {
			case gitdiff.OpAdd:
				fc.Lines = append(fc.Lines, diffdoc.DiffLine{
					Kind:    diffdoc.LineAdded,
					Content: content,
					NewLine: newNum,
				})
				newNum++
			case gitdiff.OpDelete:
				fc.Lines = append(fc.Lines, diffdoc.DiffLine{
					Kind:    diffdoc.LineRemoved,
					Content: content,
					OldLine: oldNum,
				})
				oldNum++
			default:
				if p.includeContext {
					fc.Lines = append(fc.Lines, diffdoc.DiffLine{
						Kind:    diffdoc.LineContext,
						Content: content,
						OldLine: oldNum,
						NewLine: newNum,
					})
				}
				oldNum++
				newNum++
			}
		}
	}
	return fc, nil
}

func statusOf(f *gitdiff.File) diffdoc.FileStatus {
	switch {
	case f.IsNew:
		return diffdoc.StatusAdded
	case f.IsDelete:
		return diffdoc.StatusRemoved
	case f.IsRename:
		return diffdoc.StatusRenamed
	default:
		return diffdoc.StatusModified
	}
}
