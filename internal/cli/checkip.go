package cli

import (
	"fmt"
	"io"

	"github.com/kbukum/gwkit/acl"
	"github.com/kbukum/gwkit/validation"
)

// CheckIPCmd decides access for an address. Lists given on the command
// line replace the configured ones. A denied address exits with status 2.
type CheckIPCmd struct {
	Allow string `long:"allow" description:"allow list, e.g. \"127.0.0.1;10.0.0.*\""`
	Deny  string `long:"deny" description:"deny list, e.g. \"*.*.*.*\""`
	Args  struct {
		Subject string `positional-arg-name:"ip"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

type checkResult struct {
	Subject  string `json:"subject" yaml:"subject"`
	Decision string `json:"decision" yaml:"decision"`
}

func (c *CheckIPCmd) Execute(_ []string) error {
	if verr := validation.New().
		PatternList("allow", c.Allow).
		PatternList("deny", c.Deny).
		Validate(); verr != nil {
		return verr
	}

	cfg := c.app.cfg.ACL
	if c.Allow != "" {
		cfg.AllowIP = c.Allow
	}
	if c.Deny != "" {
		cfg.DenyIP = c.Deny
	}
	policy, err := acl.NewPolicy(cfg, acl.WithMetrics(c.app.metrics))
	if err != nil {
		return err
	}

	d := policy.Check(c.app.ctx, c.Args.Subject)
	res := checkResult{Subject: c.Args.Subject, Decision: d.String()}
	if err := c.app.render(res, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, res.Decision)
		return err
	}); err != nil {
		return err
	}
	if d == acl.Deny {
		return ExitStatus(2)
	}
	return nil
}
