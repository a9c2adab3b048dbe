package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/corebuild/internal/core/domain"
)

func (c *CLI) newCoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "core",
		Short: "Manage stored cores",
	}
	cmd.AddCommand(c.newCoreUploadCmd())
	cmd.AddCommand(c.newCoreListCmd())
	return cmd
}

func (c *CLI) newCoreUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Store a core for a platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("platform")
			version, _ := cmd.Flags().GetInt("version")

			platform, err := c.app.ResolvePlatform(cmd.Context(), name)
			if err != nil {
				return err
			}

			core, err := c.app.UploadCore(cmd.Context(), platform, version, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", core.String(), core.Digest)
			return nil
		},
	}

	cmd.Flags().StringP("platform", "p", "", "Platform the core belongs to")
	cmd.Flags().Int("version", 0, "Core version (0 picks the next free version)")
	return cmd
}

func (c *CLI) newCoreListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored cores, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var platform domain.Platform
			if name, _ := cmd.Flags().GetString("platform"); name != "" {
				p, err := domain.ParsePlatform(name)
				if err != nil {
					return err
				}
				platform = p
			}

			cores, err := c.app.ListCores(cmd.Context(), platform)
			if err != nil {
				return err
			}
			printCores(cmd.OutOrStdout(), cores)
			return nil
		},
	}

	cmd.Flags().StringP("platform", "p", "", "Only list cores for this platform")
	return cmd
}

var column = lipgloss.NewStyle().PaddingRight(2)

func printCores(w io.Writer, cores []domain.Core) {
	for _, core := range cores {
		_, _ = fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
			column.Width(10).Render(core.Platform.String()),
			column.Width(8).Render(fmt.Sprint(core.Version)),
			column.Width(10).Render(fmt.Sprint(core.Size)),
			core.Digest,
		))
	}
}
