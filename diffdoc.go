// Package diffdoc provides domain types for turning version-control diffs
// between two commits into a formatted document report.
package diffdoc

import (
	"path/filepath"
	"strings"
)

// FileStatus represents what happened to a file between the two commits.
type FileStatus int

// File statuses.
const (
	StatusModified FileStatus = iota
	StatusAdded
	StatusRemoved
	StatusRenamed
)

// Key returns the localization key for the status label.
func (s FileStatus) Key() string {
	switch s {
	case StatusAdded:
		return "status_added"
	case StatusRemoved:
		return "status_removed"
	case StatusRenamed:
		return "status_renamed"
	default:
		return "status_modified"
	}
}

// LineKind is the classification assigned to one diff line.
type LineKind int

// Line classifications.
const (
	LineContext LineKind = iota
	LineAdded
	LineRemoved
)

// DiffLine represents one physical line of a file's diff.
type DiffLine struct {
	Kind    LineKind
	Content string // raw text without the +/-/space prefix
	OldLine int    // 1-based line number in the old file, 0 for added lines
	NewLine int    // 1-based line number in the new file, 0 for removed lines
}

// FileChange represents one changed file surviving the ignore filter,
// with its diff lines in original order.
type FileChange struct {
	Path      string
	OldPath   string // set for renames
	Status    FileStatus
	Lines     []DiffLine
	Malformed bool // diff text could not be parsed; rendered as a placeholder notice
}

// RawChange is one changed file as reported by the version-control layer:
// its path, status tag and raw unified-diff text.
type RawChange struct {
	Path   string
	Status FileStatus
	Diff   string
}

// Token is a fragment of row text with an attached visual style.
type Token struct {
	Text  string
	Style Style
}

// Style describes the visual presentation of a token.
type Style struct {
	Foreground string // hex color like "#c678dd", empty for default
	Bold       bool
	Italic     bool
}

// imageExts are the extensions recognized as image assets when the
// include_images option is enabled.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".svg":  true,
}

// IsImagePath reports whether path names an image asset by extension.
func IsImagePath(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}
