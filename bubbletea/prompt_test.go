package bubbletea_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/diffdoc/bubbletea"
	"github.com/fwojciec/diffdoc/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel(t *testing.T) bubbletea.Model {
	t.Helper()
	loc, err := locale.Load(locale.Default(), "en")
	require.NoError(t, err)
	return bubbletea.New(loc)
}

// typeAndEnter feeds a line of input followed by enter.
func typeAndEnter(m tea.Model, s string) tea.Model {
	if s != "" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func TestModel_CollectsAnswers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "report.md")

	var m tea.Model = testModel(t)
	m = typeAndEnter(m, dir)
	m = typeAndEnter(m, "abc123")
	m = typeAndEnter(m, "def456")
	m = typeAndEnter(m, out)

	final, ok := m.(bubbletea.Model)
	require.True(t, ok)
	require.True(t, final.Done())

	answers := final.Answers()
	assert.Equal(t, dir, answers.Dir)
	assert.Equal(t, "abc123", answers.CommitFrom)
	assert.Equal(t, "def456", answers.CommitTo)
	assert.Equal(t, out, answers.OutputPath)
	assert.False(t, answers.Overwrite)
}

func TestModel_BlankAnswersMeanDefaults(t *testing.T) {
	t.Parallel()

	var m tea.Model = testModel(t)
	m = typeAndEnter(m, t.TempDir())
	m = typeAndEnter(m, "")
	m = typeAndEnter(m, "")
	m = typeAndEnter(m, "")

	final := m.(bubbletea.Model)
	require.True(t, final.Done())
	assert.Empty(t, final.Answers().CommitFrom)
	assert.Empty(t, final.Answers().CommitTo)
	assert.Empty(t, final.Answers().OutputPath)
}

func TestModel_RejectsInvalidDirectory(t *testing.T) {
	t.Parallel()

	var m tea.Model = testModel(t)
	m = typeAndEnter(m, "/nonexistent/nowhere")

	final := m.(bubbletea.Model)
	assert.False(t, final.Done())
	assert.Contains(t, final.View(), "Not a directory")
}

func TestModel_WarnsWhenNoGitRepo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var m tea.Model = testModel(t)
	m = typeAndEnter(m, dir)

	final := m.(bubbletea.Model)
	assert.Contains(t, final.View(), "No git repository found")
}

func TestModel_OverwriteConfirmation(t *testing.T) {
	t.Parallel()

	t.Run("yes overwrites", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		out := filepath.Join(dir, "report.md")
		require.NoError(t, os.WriteFile(out, []byte("old"), 0o644))

		var m tea.Model = testModel(t)
		m = typeAndEnter(m, dir)
		m = typeAndEnter(m, "")
		m = typeAndEnter(m, "")
		m = typeAndEnter(m, out)

		mid := m.(bubbletea.Model)
		require.False(t, mid.Done())
		assert.Contains(t, mid.View(), "already exists")

		m = typeAndEnter(m, "y")
		final := m.(bubbletea.Model)
		require.True(t, final.Done())
		assert.True(t, final.Answers().Overwrite)
	})

	t.Run("no aborts", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		out := filepath.Join(dir, "report.md")
		require.NoError(t, os.WriteFile(out, []byte("old"), 0o644))

		var m tea.Model = testModel(t)
		m = typeAndEnter(m, dir)
		m = typeAndEnter(m, "")
		m = typeAndEnter(m, "")
		m = typeAndEnter(m, out)
		m = typeAndEnter(m, "n")

		final := m.(bubbletea.Model)
		assert.False(t, final.Done())
		assert.True(t, final.Aborted())
	})
}

func TestModel_EscapeAborts(t *testing.T) {
	t.Parallel()

	var m tea.Model = testModel(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	final := m.(bubbletea.Model)
	assert.True(t, final.Aborted())
}

func TestModel_ShowsFirstPrompt(t *testing.T) {
	t.Parallel()

	tm := teatest.NewTestModel(t, testModel(t),
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Repository directory:"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}
