package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/fixturegen/pkg/buildinfo"
)

// versionCommand prints build information.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			c.println(buildinfo.String())
		},
	}
}
