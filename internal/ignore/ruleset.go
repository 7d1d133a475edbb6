package ignore

import (
	"path"
	"path/filepath"
	"sort"

	"github.com/bethropolis/tree-dumper/internal/utils"
)

// File is one discovered scope boundary: the patterns of a single ignore
// file, applying to everything at or below its directory.
type File struct {
	// Dir is the absolute path of the directory holding the ignore file.
	Dir string
	// Scope is that directory relative to the project root, "" for the root.
	Scope string
	// Patterns preserves file order; order is semantically load-bearing.
	Patterns []Pattern
}

// RuleSet owns the ordered ignore-file collection for one run. Discovery
// appends files while it is still walking, and queries the partial set to
// decide whether to descend, so the collection must stay sorted root-first
// after every Add.
type RuleSet struct {
	files []File
	log   utils.Logger
}

// NewRuleSet returns an empty rule set.
func NewRuleSet(log utils.Logger) *RuleSet {
	if log == nil {
		log = utils.NoopLogger{}
	}
	return &RuleSet{log: log}
}

// Add appends an ignore file and re-establishes the scope-depth ordering
// (root first, deepest last) required for correct precedence.
func (rs *RuleSet) Add(f File) {
	rs.files = append(rs.files, f)
	sort.SliceStable(rs.files, func(i, j int) bool {
		return len(rs.files[i].Scope) < len(rs.files[j].Scope)
	})
}

// Files returns the discovered ignore files, root-first.
func (rs *RuleSet) Files() []File {
	return rs.files
}

// Len returns the number of discovered ignore files.
func (rs *RuleSet) Len() int {
	return len(rs.files)
}

// IsExcluded resolves the verdict for one candidate. Every in-scope file is
// applied root-to-leaf, every pattern in file order; each match rewrites the
// verdict to !Negate, so later (deeper, more specific) rules win outright.
func (rs *RuleSet) IsExcluded(name, relPath string, isDir bool) bool {
	if rs == nil || len(rs.files) == 0 {
		return false
	}

	rel := filepath.ToSlash(relPath)
	if rel == "" || rel == "." {
		return false // never exclude the root itself
	}

	parent := path.Dir(rel)
	if parent == "." {
		parent = ""
	}

	excluded := false
	for _, f := range rs.files { // already sorted root-first
		if !inScope(f.Scope, parent) {
			continue
		}
		scopeRel := relativeFrom(f.Scope, rel)
		for _, p := range f.Patterns {
			if p.matches(name, scopeRel) {
				excluded = !p.Negate
				rs.log.Debug("ignore: %q matched %q in scope %q (isDir=%v) -> excluded=%v",
					rel, p.Text, f.Scope, isDir, excluded)
			}
		}
	}
	return excluded
}
