package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/tree-dumper/internal/utils"
)

type discoverer struct {
	root       string
	all        bool
	outputName string
	extraDirs  []string
	extraFiles []string
	log        utils.Logger
	rules      *RuleSet
}

// Discover walks the tree under rootDir once and returns the ordered rule
// set of every reachable .gitignore. Discovery consults the partial rule set
// before descending into any subdirectory, so an excluded subtree's own
// ignore files are never read.
func Discover(rootDir string, opts ...Option) (*RuleSet, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	d := &discoverer{
		root:       absRoot,
		outputName: DefaultOutputName,
		log:        utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}
	d.rules = NewRuleSet(d.log)

	if d.all {
		d.log.Debug("ignore.Discover: --all set, skipping .gitignore discovery")
		d.rules.Add(File{Dir: absRoot, Scope: "", Patterns: d.baselinePatterns()})
		return d.rules, nil
	}

	d.walk(absRoot, "")

	if d.rules.Len() == 0 {
		d.log.Debug("ignore.Discover: no .gitignore found anywhere, using default patterns")
		patterns := d.baselinePatterns()
		for _, name := range defaultPatternNames {
			patterns = append(patterns, newPattern(name, false))
		}
		d.rules.Add(File{Dir: absRoot, Scope: "", Patterns: patterns})
	}

	d.log.Debug("ignore.Discover: %d ignore file(s) in effect", d.rules.Len())
	return d.rules, nil
}

// walk reads one directory level: parse its .gitignore (if any), then recurse
// into subdirectories the rules discovered so far do not exclude.
func (d *discoverer) walk(dir, rel string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		d.log.Warn("ignore.Discover: cannot read directory %q: %v", dir, err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() != IgnoreFileName {
			continue
		}
		d.readIgnoreFile(dir, rel)
		break
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, skip := alwaysSkipDirs[name]; skip {
			d.log.Debug("ignore.Discover: skipping %q (always-skip set)", name)
			continue
		}
		childRel := name
		if rel != "" {
			childRel = rel + "/" + name
		}
		// The self-referential check: resolution against the partial,
		// still-growing rule set decides whether to descend at all.
		if d.rules.IsExcluded(name, childRel, true) {
			d.log.Debug("ignore.Discover: not descending into excluded directory %q", childRel)
			continue
		}
		d.walk(filepath.Join(dir, name), childRel)
	}
}

// readIgnoreFile parses one .gitignore and appends it to the rule set.
// An empty or whitespace-only file is treated as absent.
func (d *discoverer) readIgnoreFile(dir, rel string) {
	fullPath := filepath.Join(dir, IgnoreFileName)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		d.log.Warn("ignore.Discover: cannot read %q: %v", fullPath, err)
		return
	}
	if strings.TrimSpace(string(data)) == "" {
		d.log.Debug("ignore.Discover: %q is empty, treating as absent", fullPath)
		return
	}

	patterns := ParsePatterns(string(data))
	if rel == "" {
		// Root scope only: the always-ignore set goes in front, caller
		// extras go behind the file's own rules.
		withBaseline := make([]Pattern, 0, len(patterns)+4)
		for _, name := range alwaysIgnoreNames(d.outputName) {
			withBaseline = append(withBaseline, newPattern(name, false))
		}
		withBaseline = append(withBaseline, patterns...)
		withBaseline = append(withBaseline, d.extraPatterns()...)
		patterns = withBaseline
	}

	d.log.Debug("ignore.Discover: loaded %q (%d pattern(s), scope %q)", fullPath, len(patterns), rel)
	d.rules.Add(File{Dir: dir, Scope: rel, Patterns: patterns})
}

// baselinePatterns is the always-ignore set plus caller extras, used for the
// root scope when no root .gitignore contributes them.
func (d *discoverer) baselinePatterns() []Pattern {
	var patterns []Pattern
	for _, name := range alwaysIgnoreNames(d.outputName) {
		patterns = append(patterns, newPattern(name, false))
	}
	return append(patterns, d.extraPatterns()...)
}

func (d *discoverer) extraPatterns() []Pattern {
	var patterns []Pattern
	for _, name := range d.extraDirs {
		if name = strings.TrimSpace(name); name != "" {
			patterns = append(patterns, newPattern(name, false))
		}
	}
	for _, name := range d.extraFiles {
		if name = strings.TrimSpace(name); name != "" {
			patterns = append(patterns, newPattern(name, false))
		}
	}
	return patterns
}
