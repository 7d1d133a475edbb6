package ignore

import (
	"regexp"
	"strings"
)

// Pattern is a single normalized ignore rule. Text carries no leading '!',
// no leading '/' and no trailing '/'; Negate records whether the rule was a
// '!'-prefixed exception.
type Pattern struct {
	Text   string
	Negate bool

	re *regexp.Regexp // compiled form, set only for wildcard patterns
}

// newPattern normalizes raw rule text into a Pattern. The negation marker,
// one root anchor and one trailing directory marker are stripped; anything
// left is taken literally.
func newPattern(text string, negate bool) Pattern {
	text = strings.TrimSuffix(text, "/")
	text = strings.TrimPrefix(text, "/")
	p := Pattern{Text: text, Negate: negate}
	if strings.ContainsAny(text, "*?") {
		p.re = compileWildcard(text)
	}
	return p
}

// ParsePatterns turns raw ignore-file text into an ordered rule list.
// Blank lines and '#' comments are dropped; everything else parses — there
// is no syntax-error condition, unrecognized text is a literal pattern.
func ParsePatterns(raw string) []Pattern {
	var patterns []Pattern
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		negate := false
		if strings.HasPrefix(line, "!") {
			negate = true
			line = line[1:]
		}
		patterns = append(patterns, newPattern(line, negate))
	}
	return patterns
}

// compileWildcard translates a glob-style pattern into an anchored regexp:
// '*' becomes '.*', '?' becomes '.', every other character is literal.
func compileWildcard(text string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(text)
	quoted = strings.ReplaceAll(quoted, `\*`, `.*`)
	quoted = strings.ReplaceAll(quoted, `\?`, `.`)
	re, err := regexp.Compile("^" + quoted + "$")
	if err != nil {
		// QuoteMeta output always compiles; keep the nil check anyway so a
		// bad pattern degrades to "never matches" instead of panicking.
		return nil
	}
	return re
}
