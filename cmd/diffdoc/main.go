// Command diffdoc turns the diff between two git commits into a formatted
// change report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/fwojciec/diffdoc"
	"github.com/fwojciec/diffdoc/bubbletea"
	"github.com/fwojciec/diffdoc/chroma"
	"github.com/fwojciec/diffdoc/config"
	"github.com/fwojciec/diffdoc/fs"
	"github.com/fwojciec/diffdoc/git"
	"github.com/fwojciec/diffdoc/gitdiff"
	"github.com/fwojciec/diffdoc/ignore"
	"github.com/fwojciec/diffdoc/lipgloss"
	"github.com/fwojciec/diffdoc/locale"
	"github.com/fwojciec/diffdoc/markdown"
)

// App runs one report-generation pass over injected collaborators.
type App struct {
	Config     diffdoc.Config
	Localizer  diffdoc.Localizer
	Source     diffdoc.Source
	Parser     diffdoc.Parser
	Sink       diffdoc.Sink
	Ignore     *ignore.RuleSet // nil means "ignore nothing"
	CommitFrom string          // blank resolves per Config.IncludeFirstCommit
	CommitTo   string          // blank resolves to HEAD
	Out        io.Writer       // progress output; nil discards
	Now        func() time.Time
}

// Run resolves the commit range, collects and filters the changed files,
// parses each file's diff, and renders the composed report through the sink.
// Returns diffdoc.ErrNoChanges when nothing survives the filter.
func (a *App) Run(ctx context.Context) (*diffdoc.Report, error) {
	out := a.Out
	if out == nil {
		out = io.Discard
	}
	now := a.Now
	if now == nil {
		now = time.Now
	}

	from, to, err := a.resolveRange(ctx, out)
	if err != nil {
		return nil, err
	}

	changes, err := a.Source.Changes(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var files []*diffdoc.FileChange
	for _, c := range changes {
		if a.Ignore != nil && a.Ignore.Ignored(filepath.ToSlash(c.Path)) {
			continue
		}
		if a.Config.Verbose {
			fmt.Fprintln(out, a.Localizer.Format("processing_file", map[string]string{"file": c.Path}))
		}
		fc, err := a.Parser.Parse(c.Diff, c.Path)
		if err != nil {
			var merr *diffdoc.MalformedHunkError
			if !errors.As(err, &merr) {
				return nil, err
			}
		}
		files = append(files, fc)
		if a.Config.Verbose {
			fmt.Fprintln(out, a.Localizer.Format("processing_done", map[string]string{"file": c.Path}))
		}
	}

	if len(files) == 0 {
		fmt.Fprintln(out, a.Localizer.Format("no_changes_found", map[string]string{"from": from, "to": to}))
		return nil, diffdoc.ErrNoChanges
	}

	comp := diffdoc.NewComposer(a.Config, a.Localizer)
	cmds := []diffdoc.Command{
		diffdoc.Notice{Text: a.Localizer.Format("report_generated_on", map[string]string{
			"date": now().Format("2006-01-02 15:04:05"),
		})},
	}
	cmds = append(cmds, comp.Legend()...)
	if a.Config.InsertPageBreaks {
		cmds = append(cmds, diffdoc.PageBreak{})
	}
	cmds = append(cmds, comp.Compose(files)...)

	report := &diffdoc.Report{
		Title:    a.Localizer.Format("report_title", map[string]string{"from": from, "to": to}),
		Commands: cmds,
	}

	if err := a.Sink.Render(ctx, report); err != nil {
		return nil, fmt.Errorf("%w: %v", errRender, err)
	}
	return report, nil
}

// errRender marks sink failures so main can surface the localized
// save-error message with the output path attached.
var errRender = errors.New("render report")

func (a *App) resolveRange(ctx context.Context, out io.Writer) (string, string, error) {
	from := a.CommitFrom
	if from == "" {
		if !a.Config.IncludeFirstCommit {
			return "", "", errors.New("no base commit given and include_first_commit is disabled")
		}
		var err error
		from, err = a.Source.FirstCommit(ctx)
		if err != nil {
			return "", "", err
		}
		fmt.Fprintln(out, a.Localizer.Format("using_first_commit", map[string]string{"commit": from}))
	}

	to := a.CommitTo
	if to == "" {
		var err error
		to, err = a.Source.Head(ctx)
		if err != nil {
			return "", "", err
		}
		fmt.Fprintln(out, a.Localizer.Format("using_last_commit", map[string]string{"commit": to}))
	}
	return from, to, nil
}

func main() {
	if err := run(); err != nil {
		if errors.Is(err, diffdoc.ErrNoChanges) || errors.Is(err, bubbletea.ErrAborted) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", fs.DefaultConfigPath(), "path to the configuration file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	loc, err := locale.Load(locale.Default(), cfg.Language)
	if err != nil {
		return err
	}

	answers, err := bubbletea.Run(ctx, loc)
	if err != nil {
		if errors.Is(err, bubbletea.ErrAborted) {
			fmt.Println(loc.Format("exiting", nil))
		}
		return err
	}

	outputPath := answers.OutputPath
	if outputPath == "" {
		outputPath = fs.DefaultOutputPath(answers.Dir)
		fmt.Println(loc.Format("using_default_output", map[string]string{"path": outputPath}))
	}

	rules, err := ignore.Load(filepath.Join(answers.Dir, cfg.IgnoreFile))
	if err != nil {
		return err
	}

	app := &App{
		Config:     cfg,
		Localizer:  loc,
		Source:     git.NewSource(answers.Dir),
		Parser:     gitdiff.NewParser(cfg.IncludeUnchangedLines),
		Sink:       markdown.NewSink(outputPath),
		Ignore:     rules,
		CommitFrom: answers.CommitFrom,
		CommitTo:   answers.CommitTo,
		Out:        os.Stdout,
	}

	report, err := app.Run(ctx)
	if err != nil {
		if errors.Is(err, errRender) {
			fmt.Println(loc.Format("error_saving_file", map[string]string{"path": outputPath, "error": err.Error()}))
		}
		return err
	}
	fmt.Println(loc.Format("saving_report", map[string]string{"path": outputPath}))

	if cfg.Verbose {
		preview := lipgloss.NewSink(os.Stdout, cfg, chroma.NewTokenizer())
		if err := preview.Render(ctx, report); err != nil {
			return err
		}
	}

	if cfg.OpenAfterCreation {
		if err := openPath(outputPath); err != nil {
			fmt.Println(loc.Format("error_opening_file", map[string]string{"path": outputPath, "error": err.Error()}))
		}
	}
	return nil
}

// loadConfig resolves the config file; an absent file means "defaults with
// English strings".
func loadConfig(path string) (diffdoc.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Resolve(strings.NewReader(`{"language":"en"}`))
	}
	return config.ResolveFile(path)
}

// openPath launches the platform opener for the generated report.
func openPath(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
