package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bethropolis/tree-dumper/internal/ignore"
	"github.com/bethropolis/tree-dumper/internal/utils"
)

// Renderer walks a directory tree and formats the surviving entries as
// connector-prefixed ASCII-art lines, one filter stage at a time: ignore
// rules first, then the exclude regex, then the include regex (files only),
// then sorting and the depth gate.
type Renderer struct {
	root     string // absolute
	rules    *ignore.RuleSet
	include  *regexp.Regexp
	exclude  *regexp.Regexp
	maxDepth int
	log      utils.Logger
	tracker  *SkippedTracker
	stats    Stats
}

// New creates a Renderer for the given absolute project root and rule set.
func New(root string, rules *ignore.RuleSet, opts ...Option) *Renderer {
	r := &Renderer{
		root:    root,
		rules:   rules,
		log:     utils.NoopLogger{},
		tracker: NewSkippedTracker(64),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces the full diagram: a `<projectDirName>/` header line
// followed by the tree lines, newline-terminated.
func (r *Renderer) Render() (string, error) {
	info, err := os.Stat(r.root)
	if err != nil {
		return "", fmt.Errorf("tree: cannot access root %q: %w", r.root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("tree: root %q is not a directory", r.root)
	}

	var b strings.Builder
	b.WriteString(filepath.Base(r.root) + "/\n")
	r.renderDir(r.root, "", "", 1, &b)
	return b.String(), nil
}

// Skipped returns the entries left out of the diagram, with reasons.
func (r *Renderer) Skipped() []SkippedItem {
	return r.tracker.Items()
}

// Stats returns counts of rendered directories and files.
func (r *Renderer) Stats() Stats {
	return r.stats
}

type entry struct {
	name  string
	isDir bool
}

// renderDir emits one directory level. relDir is the directory's path
// relative to the project root ("" for the root itself); prefix is the
// accumulated connector indentation; depth starts at 1.
func (r *Renderer) renderDir(dir, relDir, prefix string, depth int, b *strings.Builder) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		reason := ReasonSkippedRead
		if os.IsPermission(err) {
			reason = ReasonSkippedPerm
		}
		r.log.Warn("tree: cannot read directory %q: %v", dir, err)
		r.tracker.Track(relDir, reason, true)
		return
	}

	var survivors []entry
	for _, d := range dirents {
		name := d.Name()
		rel := name
		if relDir != "" {
			rel = relDir + "/" + name
		}
		isDir := d.IsDir()

		if r.rules.IsExcluded(name, rel, isDir) {
			r.log.Debug("tree: %q excluded by ignore rules", rel)
			r.tracker.Track(rel, ReasonIgnoredRule, isDir)
			continue
		}
		if r.exclude != nil && (r.exclude.MatchString(name) || r.exclude.MatchString(rel)) {
			r.log.Debug("tree: %q removed by exclude pattern", rel)
			r.tracker.Track(rel, ReasonExcludeMatch, isDir)
			continue
		}
		if !isDir && r.include != nil && !r.include.MatchString(name) && !r.include.MatchString(rel) {
			r.log.Debug("tree: %q fails include pattern", rel)
			r.tracker.Track(rel, ReasonIncludeMiss, false)
			continue
		}
		survivors = append(survivors, entry{name: name, isDir: isDir})
	}

	// Directories first, then case-sensitive lexicographic order by name.
	sort.Slice(survivors, func(i, j int) bool {
		if survivors[i].isDir != survivors[j].isDir {
			return survivors[i].isDir
		}
		return survivors[i].name < survivors[j].name
	})

	for i, e := range survivors {
		last := i == len(survivors)-1
		connector := "├── "
		if last {
			connector = "└── "
		}
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(e.name)
		b.WriteString("\n")

		if e.isDir {
			r.stats.Dirs++
			if r.maxDepth <= 0 || depth < r.maxDepth {
				extension := "│   "
				if last {
					extension = "    "
				}
				childRel := e.name
				if relDir != "" {
					childRel = relDir + "/" + e.name
				}
				r.renderDir(filepath.Join(dir, e.name), childRel, prefix+extension, depth+1, b)
			}
		} else {
			r.stats.Files++
		}
	}
}
