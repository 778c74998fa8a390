package validation

import "strings"

// IsPatternList reports whether s is a well-formed ';'-separated wildcard
// pattern list: printable ASCII without whitespace.
func IsPatternList(s string) bool {
	return s != "" && isPrintableASCII(s)
}

// IsDialPrefixRules reports whether s is a well-formed dial prefix rule
// set: printable ASCII without whitespace, ';'-separated groups of
// ','-separated candidates, none of them empty.
func IsDialPrefixRules(s string) bool {
	if s == "" || !isPrintableASCII(s) {
		return false
	}
	for _, group := range strings.Split(s, ";") {
		for _, candidate := range strings.Split(group, ",") {
			if candidate == "" {
				return false
			}
		}
	}
	return true
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return false
		}
	}
	return true
}
