package cli

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// render writes v as JSON or YAML when requested, and calls text for the
// default format.
func (a *app) render(v any, text func(w io.Writer) error) error {
	switch a.opts.Format {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(a.out)
	}
}
