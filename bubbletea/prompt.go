// Package bubbletea provides the interactive prompt that collects run
// parameters before report generation.
package bubbletea

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/diffdoc"
)

// ErrAborted reports that the user cancelled the prompt.
var ErrAborted = errors.New("prompt aborted")

// Answers holds the collected run parameters. Blank commits and output
// path mean "use the default".
type Answers struct {
	Dir        string
	CommitFrom string
	CommitTo   string
	OutputPath string
	Overwrite  bool
}

// Prompt steps, in order.
const (
	stepDir = iota
	stepFrom
	stepTo
	stepOutput
	stepOverwrite
)

// Model is the bubbletea model for the prompt wizard.
type Model struct {
	loc     diffdoc.Localizer
	input   textinput.Model
	step    int
	answers Answers
	warn    string
	done    bool
	aborted bool
}

// New creates the prompt model.
func New(loc diffdoc.Localizer) Model {
	ti := textinput.New()
	ti.Focus()
	return Model{loc: loc, input: ti}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.advance()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done || m.aborted {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.loc.Format("title", nil))
	b.WriteString("\n\n")
	if m.warn != "" {
		b.WriteString(m.warn)
		b.WriteString("\n")
	}
	b.WriteString(m.prompt())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

func (m Model) prompt() string {
	switch m.step {
	case stepFrom:
		return m.loc.Format("enter_commit_from", nil)
	case stepTo:
		return m.loc.Format("enter_commit_to", nil)
	case stepOutput:
		return m.loc.Format("enter_output_path", nil)
	case stepOverwrite:
		return m.loc.Format("output_exists", map[string]string{"path": m.answers.OutputPath})
	default:
		return m.loc.Format("enter_target_dir", nil)
	}
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.step {
	case stepDir:
		info, err := os.Stat(value)
		if err != nil || !info.IsDir() {
			m.warn = m.loc.Format("invalid_target_dir", nil)
			return m, nil
		}
		m.answers.Dir = value
		m.warn = ""
		if _, err := os.Stat(filepath.Join(value, ".git")); err != nil {
			m.warn = m.loc.Format("no_git_repo_found", map[string]string{"dir": value})
		}
	case stepFrom:
		m.answers.CommitFrom = value
		m.warn = ""
	case stepTo:
		m.answers.CommitTo = value
	case stepOutput:
		m.answers.OutputPath = value
		if value != "" {
			if _, err := os.Stat(value); err == nil {
				m.step = stepOverwrite
				m.input.SetValue("")
				return m, nil
			}
		}
		m.done = true
		return m, tea.Quit
	case stepOverwrite:
		if value == m.loc.Format("yes", nil) {
			m.answers.Overwrite = true
			m.done = true
		} else {
			m.aborted = true
		}
		return m, tea.Quit
	}

	m.step++
	m.input.SetValue("")
	return m, nil
}

// Done reports whether all answers were collected.
func (m Model) Done() bool { return m.done }

// Aborted reports whether the user cancelled.
func (m Model) Aborted() bool { return m.aborted }

// Answers returns the collected parameters.
func (m Model) Answers() Answers { return m.answers }

// Run executes the prompt and returns the collected answers.
func Run(ctx context.Context, loc diffdoc.Localizer) (Answers, error) {
	final, err := tea.NewProgram(New(loc), tea.WithContext(ctx)).Run()
	if err != nil {
		return Answers{}, err
	}
	m, ok := final.(Model)
	if !ok || m.Aborted() || !m.Done() {
		return Answers{}, ErrAborted
	}
	return m.Answers(), nil
}
