package logger

import (
	"strings"

	"github.com/kbukum/gwkit/wildcard"
)

// nested marks a place pattern that also covers the components below it:
// "acl.*" matches "acl", "acl.http" and "acl.http.v2".
const nested = ".*"

// places selects the components allowed to emit debug output.
type places struct {
	include []string
	exclude []string
}

func parsePlaces(list string) places {
	var p places
	for _, f := range strings.Fields(list) {
		if strings.HasPrefix(f, "-") {
			if f = f[1:]; f != "" {
				p.exclude = append(p.exclude, f)
			}
			continue
		}
		p.include = append(p.include, f)
	}
	return p
}

func (p places) debugEnabled(component string) bool {
	if matchPlaces(p.exclude, component) {
		return false
	}
	if len(p.include) > 0 {
		return matchPlaces(p.include, component)
	}
	return true
}

func matchPlaces(patterns []string, component string) bool {
	for _, pat := range patterns {
		if matchPlace(pat, component) {
			return true
		}
	}
	return false
}

// matchPlace matches component against one place. A nested pattern
// matches when its base matches the component or one of its dotted
// ancestors; other patterns use wildcard matching on the whole name.
func matchPlace(pattern, component string) bool {
	base, ok := strings.CutSuffix(pattern, nested)
	if !ok {
		return wildcard.Matches(pattern, component)
	}
	for i := 0; i <= len(component); i++ {
		if i == len(component) || component[i] == wildcard.Boundary {
			if wildcard.Matches(base, component[:i]) {
				return true
			}
		}
	}
	return false
}
