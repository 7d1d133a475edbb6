package ignore

import "strings"

// matches reports whether this pattern applies to a candidate, given its
// bare name and its path relative to the owning ignore file's directory.
func (p Pattern) matches(name, scopeRel string) bool {
	if p.re != nil {
		if p.re.MatchString(name) || p.re.MatchString(scopeRel) {
			return true
		}
		// A wildcard anchored at a parent scope must still catch deeply
		// nested candidates, so every ancestor-inclusive prefix of the
		// scope-relative path is tested too.
		for i := 0; i < len(scopeRel); i++ {
			if scopeRel[i] == '/' && p.re.MatchString(scopeRel[:i]) {
				return true
			}
		}
		return false
	}

	if p.Text == name || p.Text == scopeRel {
		return true
	}
	if strings.Contains(p.Text, "/") {
		return strings.HasPrefix(scopeRel, p.Text+"/")
	}
	for _, segment := range strings.Split(scopeRel, "/") {
		if segment == p.Text {
			return true
		}
	}
	return strings.HasSuffix(scopeRel, "/"+p.Text)
}
