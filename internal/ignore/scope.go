package ignore

import (
	"path/filepath"
	"strings"
)

// inScope reports whether an ignore file whose directory sits at scope
// (relative to the project root, "" for the root itself) governs a candidate
// whose parent directory sits at parentRel.
func inScope(scope, parentRel string) bool {
	if scope == "" {
		return true
	}
	return parentRel == scope || strings.HasPrefix(parentRel, scope+"/")
}

// relativeFrom rewrites a root-relative candidate path so it is relative to
// the given scope directory, with '/' as the separator on every platform.
func relativeFrom(scope, rel string) string {
	rel = filepath.ToSlash(rel)
	if scope == "" {
		return rel
	}
	scope = filepath.ToSlash(scope)
	if rel == scope {
		return "."
	}
	if strings.HasPrefix(rel, scope+"/") {
		return rel[len(scope)+1:]
	}
	r, err := filepath.Rel(scope, rel)
	if err != nil {
		return rel
	}
	return filepath.ToSlash(r)
}
