package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List platforms with a registered builder",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, p := range c.app.Platforms() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
			}
		},
	}
}
