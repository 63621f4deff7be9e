// Package ignore compiles gitignore-compatible patterns and decides
// per-path inclusion for the report.
package ignore

import (
	"os"
	"strings"
)

// rule is one compiled pattern line.
type rule struct {
	segs     []string // pattern split on "/"
	negate   bool     // "!" prefix re-includes matching paths
	dirOnly  bool     // trailing "/" restricts the pattern to directories
	anchored bool     // leading "/" anchors the pattern to the tree root
}

// RuleSet is an ordered sequence of compiled rules. Later rules override
// earlier matches for the same path.
type RuleSet struct {
	rules []rule
}

// Compile builds a rule set from ignore-file lines. Blank lines and
// comments are skipped; a leading "#" or "!" can be escaped with a
// backslash to match literally.
func Compile(lines []string) *RuleSet {
	rs := &RuleSet{}
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		line = trimTrailingSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var r rule
		if strings.HasPrefix(line, "!") {
			r.negate = true
			line = line[1:]
		}
		if strings.HasSuffix(line, "/") && !strings.HasSuffix(line, `\/`) {
			r.dirOnly = true
			line = line[:len(line)-1]
		}
		if strings.HasPrefix(line, "/") {
			r.anchored = true
			line = line[1:]
		}
		if line == "" {
			continue
		}
		r.segs = strings.Split(line, "/")
		rs.rules = append(rs.rules, r)
	}
	return rs
}

// Load compiles the ignore file at path. An absent file means
// "ignore nothing" and yields an empty set.
func Load(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &RuleSet{}, nil
	}
	if err != nil {
		return nil, err
	}
	return Compile(strings.Split(string(data), "\n")), nil
}

// Ignored reports whether the slash-separated path relative to the tree
// root is excluded. Directory exclusion takes precedence over descendant
// negation, so ancestor directories are tested for an unconditional
// exclusion before last-match-wins runs on the leaf.
func (rs *RuleSet) Ignored(relPath string) bool {
	relPath = strings.Trim(relPath, "/")
	if relPath == "" || len(rs.rules) == 0 {
		return false
	}
	segs := strings.Split(relPath, "/")

	for i := 1; i < len(segs); i++ {
		if rs.verdict(segs[:i], true) == excluded {
			return true
		}
	}
	return rs.verdict(segs, false) == excluded
}

type outcome int

const (
	unmatched outcome = iota
	excluded
	included
)

// verdict applies last-match-wins over all rules for one path. isDir
// selects whether directory-only rules participate.
func (rs *RuleSet) verdict(segs []string, isDir bool) outcome {
	out := unmatched
	for _, r := range rs.rules {
		if r.dirOnly && !isDir {
			continue
		}
		if r.match(segs) {
			if r.negate {
				out = included
			} else {
				out = excluded
			}
		}
	}
	return out
}

func (r rule) match(segs []string) bool {
	pat := r.segs
	if !r.anchored {
		// An unanchored pattern may match at any directory depth.
		pat = append([]string{"**"}, pat...)
	}
	return matchSegs(pat, segs)
}

// matchSegs matches pattern segments against path segments. "**" crosses
// directory separators; a trailing "**" requires at least one segment so
// "doc/**" matches doc's contents but not doc itself.
func matchSegs(pat, segs []string) bool {
	if len(pat) == 0 {
		return len(segs) == 0
	}
	if pat[0] == "**" {
		if len(pat) == 1 {
			return len(segs) >= 1
		}
		for i := 0; i <= len(segs); i++ {
			if matchSegs(pat[1:], segs[i:]) {
				return true
			}
		}
		return false
	}
	if len(segs) == 0 {
		return false
	}
	return matchSeg(pat[0], segs[0]) && matchSegs(pat[1:], segs[1:])
}

// matchSeg matches one glob segment: "*" and "?" never cross "/", a
// backslash escapes the next character, and a trailing backslash is
// treated as a literal.
func matchSeg(pat, s string) bool {
	var pi, si int
	star, mark := -1, 0
	for si < len(s) {
		if pi < len(pat) {
			switch c := pat[pi]; {
			case c == '\\' && pi+1 < len(pat):
				if pat[pi+1] == s[si] {
					pi += 2
					si++
					continue
				}
			case c == '?':
				pi++
				si++
				continue
			case c == '*':
				star, mark = pi, si
				pi++
				continue
			case c == s[si]:
				pi++
				si++
				continue
			}
		}
		if star >= 0 {
			mark++
			pi, si = star+1, mark
			continue
		}
		return false
	}
	for pi < len(pat) && pat[pi] == '*' {
		pi++
	}
	return pi == len(pat)
}

// trimTrailingSpace strips unescaped trailing spaces from a pattern line.
func trimTrailingSpace(line string) string {
	for strings.HasSuffix(line, " ") && !strings.HasSuffix(line, `\ `) {
		line = line[:len(line)-1]
	}
	return line
}
