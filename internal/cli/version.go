package cli

import (
	"fmt"
	"io"

	"github.com/kbukum/gwkit/version"
)

// VersionCmd prints build information.
type VersionCmd struct {
	app *app
}

func (c *VersionCmd) Execute(_ []string) error {
	info := version.GetVersionInfo()
	return c.app.render(info, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s %s\n", serviceName, info)
		return err
	})
}
