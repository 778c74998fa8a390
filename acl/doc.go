// Package acl decides whether a subject, typically a dotted IPv4 address,
// may connect, given an allow list and a deny list of wildcard patterns.
//
// A subject matching the allow list is always allowed, even when the deny
// list also matches it. A subject matching only the deny list is denied.
// Everything else is allowed, and an absent or empty deny list allows all.
//
//	policy, err := acl.NewPolicy(acl.Config{AllowIP: "10.0.0.*", DenyIP: "*.*.*.*"})
//	if policy.Check(ctx, "192.168.1.7") == acl.Deny { ... }
package acl
