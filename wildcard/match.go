package wildcard

import "strings"

const (
	// Separator delimits alternatives in a pattern list.
	Separator = ';'
	// Any absorbs a run of subject characters up to the next Boundary.
	Any = '*'
	// Boundary stops an Any run.
	Boundary = '.'
)

// Match tries each alternative of patterns against subject in order and
// returns a copy of the first alternative that matches.
func Match(patterns, subject string) (string, bool) {
	start := 0
	for {
		end := strings.IndexByte(patterns[start:], Separator)
		if end < 0 {
			end = len(patterns)
		} else {
			end += start
		}

		alt := patterns[start:end]
		if matchAlternative(alt, subject) {
			return strings.Clone(alt), true
		}
		if end == len(patterns) {
			return "", false
		}
		start = end + 1
	}
}

// Matches reports whether any alternative of patterns matches subject.
func Matches(patterns, subject string) bool {
	_, ok := Match(patterns, subject)
	return ok
}

// Alternatives splits a pattern list into its alternatives.
func Alternatives(patterns string) []string {
	return strings.Split(patterns, string(Separator))
}

// matchAlternative walks alt and subject in lock-step.
func matchAlternative(alt, subject string) bool {
	i, j := 0, 0
	for {
		if i == len(alt) && j == len(subject) {
			return true
		}
		if i < len(alt) && alt[i] == Any {
			i++
			for j < len(subject) && subject[j] != Boundary && subject[j] != Separator {
				j++
			}
			if j == len(subject) {
				return true
			}
			continue
		}
		if i == len(alt) || j == len(subject) || alt[i] != subject[j] {
			return false
		}
		i++
		j++
	}
}
