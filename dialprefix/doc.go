// Package dialprefix rewrites phone numbers to a canonical dial prefix.
//
// Rules are ';'-separated groups of ','-separated candidate prefixes. The
// first candidate of a group is its canonical prefix:
//
//	"+358,00358,0;+46,0046"
//
// A number starting with any candidate of a group has that candidate
// replaced by the group's canonical prefix, so with the rules above
// "0401234567" becomes "+358401234567". Candidates are tried in the order
// they are written, across all groups.
package dialprefix
