package cli

import (
	"fmt"
	"io"

	"github.com/kbukum/gwkit/dialprefix"
	"github.com/kbukum/gwkit/validation"
)

// NormalizeCmd rewrites numbers with the configured dial prefix rules, or
// with --prefixes when given.
type NormalizeCmd struct {
	Prefixes string `long:"prefixes" description:"rules, e.g. \"+358,00358,0;+46,0046\""`
	Args     struct {
		Numbers []string `positional-arg-name:"number"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

type normalization struct {
	Number  string `json:"number" yaml:"number"`
	Result  string `json:"result" yaml:"result"`
	Matched bool   `json:"matched" yaml:"matched"`
}

func (c *NormalizeCmd) Execute(_ []string) error {
	if verr := validation.New().DialPrefixRules("prefixes", c.Prefixes).Validate(); verr != nil {
		return verr
	}

	cfg := c.app.cfg.DialPrefix
	if c.Prefixes != "" {
		cfg.Prefixes = c.Prefixes
	}
	n, err := dialprefix.NewNormalizer(cfg, dialprefix.WithMetrics(c.app.metrics))
	if err != nil {
		return err
	}

	res := make([]normalization, 0, len(c.Args.Numbers))
	for _, number := range c.Args.Numbers {
		result, ok := n.Normalize(c.app.ctx, number)
		res = append(res, normalization{Number: number, Result: result, Matched: ok})
	}
	return c.app.render(res, func(w io.Writer) error {
		for _, r := range res {
			if _, err := fmt.Fprintln(w, r.Result); err != nil {
				return err
			}
		}
		return nil
	})
}
