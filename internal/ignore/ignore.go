// Package ignore implements hierarchical .gitignore-style exclusion rules.
//
// Discovery walks the project tree once, collecting every .gitignore it can
// reach, and the resulting RuleSet answers per-path include/exclude verdicts
// under git-compatible precedence: patterns from deeper ignore files are
// applied after (and therefore override) patterns from shallower ones, and a
// negation rule (leading '!') reverses the verdict for the paths it matches.
//
// The grammar is deliberately simplified: no character classes, no '**'
// semantics beyond plain wildcard expansion, and a leading '/' is stripped
// rather than honored, so root-anchored patterns behave as un-anchored ones.
// This is a known compatibility limitation, kept for output parity with
// existing consumers.
package ignore

// IsExcluded is a convenience wrapper that tolerates a nil RuleSet.
func IsExcluded(rules *RuleSet, name, relPath string, isDir bool) bool {
	if rules == nil {
		return false
	}
	return rules.IsExcluded(name, relPath, isDir)
}
