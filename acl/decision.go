package acl

import "fmt"

// Decision is the outcome of an access check.
type Decision int

const (
	// Deny means the subject matched the deny list and not the allow list.
	Deny Decision = iota
	// Allow means the subject may connect.
	Allow
	// Indeterminate means no subject was supplied.
	Indeterminate
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	case Indeterminate:
		return "indeterminate"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// MarshalText renders the decision as its lowercase name.
func (d Decision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
