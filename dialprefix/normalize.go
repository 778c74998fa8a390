package dialprefix

const (
	groupSeparator     = ';'
	candidateSeparator = ','
)

// Normalize rewrites number using rules and reports whether any candidate
// prefix matched. A match on a canonical prefix leaves the number as is.
// Empty rules, or rules where nothing matches, return number unchanged and
// false.
func Normalize(rules, number string) (string, bool) {
	if rules == "" {
		return number, false
	}

	t := 0           // cursor in rules
	official := 0    // start of the current group's canonical prefix
	officialLen := 0 // length of the canonical prefix, known once it has failed
	for {
		start := t
		n := 0
		for {
			if t == len(rules) || isDelimiter(rules[t]) {
				if start == official {
					return number, true
				}
				end := official + min(officialLen, len(rules)-official)
				return rules[official:end] + number[n:], true
			}
			if n == len(number) || rules[t] != number[n] {
				break
			}
			t++
			n++
		}

		for t < len(rules) && !isDelimiter(rules[t]) {
			t++
		}
		if t == len(rules) {
			return number, false
		}
		if start == official {
			officialLen = t - start
		}
		if rules[t] == groupSeparator {
			official = t + 1
		}
		t++
	}
}

func isDelimiter(c byte) bool {
	return c == candidateSeparator || c == groupSeparator
}
