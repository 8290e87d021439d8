package cli

import (
	"github.com/mitchellh/cli"

	"github.com/dmitrijs2005/sn/internal/buildinfo"
)

type VersionCommand struct {
	*Command
}

func (c *VersionCommand) Synopsis() string {
	return "Print the sn version"
}

func (c *VersionCommand) Help() string {
	return `Usage: sn version

  Prints the version, commit and build date of this binary.`
}

func (c *VersionCommand) Run(args []string) int {
	if len(args) > 0 {
		return cli.RunResultHelp
	}
	c.UI.Output(buildinfo.String())
	return 0
}
