package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/corebuild/internal/build"
	"go.trai.ch/corebuild/internal/core/domain"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			if short, _ := cmd.Flags().GetBool("short"); short {
				_, _ = fmt.Fprintln(w, build.Version)
				return
			}
			_, _ = fmt.Fprintf(w, "%s version %s (commit: %s, date: %s)\n",
				domain.AppName, build.Version, build.Commit, build.Date)
		},
	}
	cmd.Flags().Bool("short", false, "Print only the version number")
	return cmd
}
