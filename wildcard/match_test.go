package wildcard

import (
	"reflect"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		patterns string
		subject  string
		want     string
		wantOK   bool
	}{
		{"exact", "10.0.0.1", "10.0.0.1", "10.0.0.1", true},
		{"exact mismatch", "10.0.0.1", "10.0.0.2", "", false},
		{"subject longer", "10.0.0.1", "10.0.0.12", "", false},
		{"subject shorter", "10.0.0.12", "10.0.0.1", "", false},
		{"trailing wildcard", "10.0.0.*", "10.0.0.5", "10.0.0.*", true},
		{"inner wildcard", "192.168.*.1", "192.168.77.1", "192.168.*.1", true},
		{"inner wildcard wrong tail", "192.168.*.1", "192.168.77.2", "", false},
		{"wildcard stops at dot", "a*.com", "axyz.com", "a*.com", true},
		{"wildcard then mismatch", "a*.com", "axyz.org", "", false},
		{"wildcard absorbs remainder", "10.*.1", "10.0", "10.*.1", true},
		{"wildcard matches empty run", "10.*.0.1", "10..0.1", "10.*.0.1", true},
		{"trailing wildcard before more labels", "10.*", "10.0.0.1", "", false},
		{"multiple wildcards", "*.*.*.*", "1.2.3.4", "*.*.*.*", true},
		{"second alternative", "10.0.0.1;172.16.*.*", "172.16.4.9", "172.16.*.*", true},
		{"first of several matches", "127.0.0.1;127.*.*.*", "127.0.0.1", "127.0.0.1", true},
		{"no alternative matches", "10.0.0.1;10.0.0.2", "10.0.0.3", "", false},
		{"empty pattern list empty subject", "", "", "", true},
		{"empty pattern list", "", "1.2.3.4", "", false},
		{"empty alternative", "10.0.0.1;", "", "", true},
		{"empty subject", "10.*", "", "", false},
		{"lone wildcard empty subject", "*", "", "*", true},
		{"lone wildcard", "*", "localhost", "*", true},
		{"subject with separator", "a*", "ab;c", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Match(tc.patterns, tc.subject)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("Match(%q, %q) = (%q, %v), want (%q, %v)", tc.patterns, tc.subject, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestMatchDoesNotModifyPatterns(t *testing.T) {
	patterns := "10.0.0.*;192.168.1.1"
	orig := patterns
	got, ok := Match(patterns, "192.168.1.1")
	if !ok || got != "192.168.1.1" {
		t.Fatalf("expected match on second alternative, got (%q, %v)", got, ok)
	}
	if patterns != orig {
		t.Errorf("pattern list changed: %q", patterns)
	}
}

func TestMatches(t *testing.T) {
	if !Matches("*.example.*", "www.example.org") {
		t.Error("expected match")
	}
	if Matches("*.example.*", "www.sample.org") {
		t.Error("expected no match")
	}
}

func TestAlternatives(t *testing.T) {
	got := Alternatives("a;b*;;c")
	want := []string{"a", "b*", "", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Alternatives = %q, want %q", got, want)
	}
}
