// Package validation validates gwkit configuration and command input.
//
// Struct tags are checked with go-playground/validator. Two custom tags
// cover the rule formats used by the access policy and the dial prefix
// normalizer:
//
//	type Config struct {
//	    AllowIP  string `validate:"omitempty,patternlist"`
//	    Prefixes string `validate:"omitempty,dialprefixes"`
//	}
//	err := validation.Validate(cfg)
//
// The programmatic Validator collects errors for ad-hoc checks:
//
//	v := validation.New()
//	v.Required("number", number).DialPrefixRules("prefixes", rules)
//	err := v.Validate()
package validation
