// Package wildcard matches strings against ';'-separated pattern lists.
//
// Each alternative is literal text that may contain '*'. A '*' absorbs the
// subject up to, but not including, the next '.' (or the end of the
// subject), which makes it a natural fit for dotted addresses:
//
//	wildcard.Match("10.0.0.*;192.168.*.1", "192.168.7.1") // "192.168.*.1", true
//	wildcard.Match("a*.com", "axyz.org")                  // "", false
//
// There is no escaping and no backtracking: a '*' always binds to the run
// before the next '.'.
package wildcard
