package markdown_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/diffdoc"
	"github.com/fwojciec/diffdoc/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *diffdoc.Report {
	return &diffdoc.Report{
		Title: "Git Changes Report (abc → def)",
		Commands: []diffdoc.Command{
			diffdoc.Notice{Text: "Report generated on 2026-08-24"},
			diffdoc.Heading{Text: "Legend", Level: 2},
			diffdoc.Legend{Entries: []diffdoc.LegendEntry{
				{Label: "Added line", Color: "D0FFD0", Symbol: "+"},
				{Label: "Removed line", Color: "FFD0D0", Symbol: "-"},
				{Label: "Unchanged line", Color: "F5F5F5", Symbol: " "},
			}},
			diffdoc.Heading{Text: "File: main.go (modified)", Level: 2},
			diffdoc.TableRow{Text: " package main", Role: diffdoc.RoleNeutral, Symbol: " ", OldLine: 1, NewLine: 1},
			diffdoc.TableRow{Text: "+func hi() {}", Role: diffdoc.RoleAdded, Symbol: "+", NewLine: 2},
			diffdoc.PageBreak{},
			diffdoc.Heading{Text: "File: logo.png (added)", Level: 2},
			diffdoc.Image{Path: "logo.png"},
		},
	}
}

func TestSink_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders every command kind", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.md")
		sink := markdown.NewSink(path)

		require.NoError(t, sink.Render(context.Background(), sampleReport()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		got := string(data)

		assert.Contains(t, got, "# Git Changes Report (abc → def)")
		assert.Contains(t, got, "## Legend")
		assert.Contains(t, got, "`#D0FFD0`")
		assert.Contains(t, got, "## File: main.go (modified)")
		assert.Contains(t, got, "| 1 | 1 | ` package main` |")
		assert.Contains(t, got, "|  | 2 | `+func hi() {}` |")
		assert.Contains(t, got, "\n---\n")
		assert.Contains(t, got, "![logo.png](logo.png)")
		assert.Contains(t, got, "*Report generated on 2026-08-24*")
	})

	t.Run("starts a new table after a heading", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.md")
		sink := markdown.NewSink(path)
		report := &diffdoc.Report{
			Title: "r",
			Commands: []diffdoc.Command{
				diffdoc.Heading{Text: "a", Level: 2},
				diffdoc.TableRow{Text: "+x", Role: diffdoc.RoleAdded, NewLine: 1},
				diffdoc.Heading{Text: "b", Level: 2},
				diffdoc.TableRow{Text: "-y", Role: diffdoc.RoleRemoved, OldLine: 1},
			},
		}

		require.NoError(t, sink.Render(context.Background(), report))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(string(data), "| Old | New | |"))
	})

	t.Run("escapes pipes and backticks in row text", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.md")
		sink := markdown.NewSink(path)
		report := &diffdoc.Report{
			Title: "r",
			Commands: []diffdoc.Command{
				diffdoc.TableRow{Text: "+a | b `c`", Role: diffdoc.RoleAdded, NewLine: 1},
			},
		}

		require.NoError(t, sink.Render(context.Background(), report))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `+a \| b 'c'`)
	})

	t.Run("replaces an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.md")
		require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))
		sink := markdown.NewSink(path)

		require.NoError(t, sink.Render(context.Background(), sampleReport()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "stale")
	})

	t.Run("unwritable target leaves no partial artifact", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "missing")
		path := filepath.Join(dir, "report.md")
		sink := markdown.NewSink(path)

		err := sink.Render(context.Background(), sampleReport())

		require.Error(t, err)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("honors a cancelled context", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.md")
		sink := markdown.NewSink(path)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := sink.Render(ctx, sampleReport())

		require.Error(t, err)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}
