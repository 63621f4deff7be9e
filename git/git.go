// Package git invokes the git command line as the diff source.
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fwojciec/diffdoc"
)

// Compile-time interface verification.
var _ diffdoc.Source = (*Source)(nil)

// Source produces raw per-file diff text by running git in a repository.
type Source struct {
	dir string
}

// NewSource creates a source rooted at the repository directory.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// IsRepo reports whether dir contains a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// Changes lists the files changed between from and to, in the order git
// reports them, each with its status tag and raw unified-diff text.
func (s *Source) Changes(ctx context.Context, from, to string) ([]diffdoc.RawChange, error) {
	listing, err := s.run(ctx, "diff", "--name-status", "-M", from, to)
	if err != nil {
		return nil, err
	}

	var changes []diffdoc.RawChange
	for _, line := range strings.Split(listing, "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}

		status, path, paths := parseStatus(fields)
		args := append([]string{"diff", "-M", from, to, "--"}, paths...)
		raw, err := s.run(ctx, args...)
		if err != nil {
			return nil, err
		}
		changes = append(changes, diffdoc.RawChange{Path: path, Status: status, Diff: raw})
	}
	return changes, nil
}

// FirstCommit resolves the root commit of the current branch.
func (s *Source) FirstCommit(ctx context.Context) (string, error) {
	out, err := s.run(ctx, "rev-list", "--max-parents=0", "HEAD")
	if err != nil {
		return "", err
	}
	// A branch with multiple roots lists one per line; take the first.
	return strings.SplitN(strings.TrimSpace(out), "\n", 2)[0], nil
}

// Head resolves the current HEAD commit.
func (s *Source) Head(ctx context.Context) (string, error) {
	out, err := s.run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (s *Source) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.dir
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %v: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return string(out), nil
}

// parseStatus maps one --name-status line to a status tag, the reported
// path, and the paths to restrict the per-file diff to. Renames carry two
// tab-separated paths.
func parseStatus(fields []string) (diffdoc.FileStatus, string, []string) {
	tag := fields[0]
	switch {
	case strings.HasPrefix(tag, "A"):
		return diffdoc.StatusAdded, fields[1], fields[1:2]
	case strings.HasPrefix(tag, "D"):
		return diffdoc.StatusRemoved, fields[1], fields[1:2]
	case strings.HasPrefix(tag, "R") && len(fields) >= 3:
		return diffdoc.StatusRenamed, fields[2], fields[1:3]
	default:
		return diffdoc.StatusModified, fields[1], fields[1:2]
	}
}
