package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/ui/style"
)

func (c *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage build configurations",
	}
	cmd.AddCommand(c.newConfigAddCmd())
	cmd.AddCommand(c.newConfigListCmd())
	return cmd
}

func (c *CLI) newConfigAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add FILE",
		Short: "Import configuration records from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.app.AddConfigurations(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d configurations\n", n)
			return nil
		},
	}
}

func (c *CLI) newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configs, err := c.app.ListConfigurations(cmd.Context())
			if err != nil {
				return err
			}
			for _, cfg := range configs {
				mark := style.Dot
				if cfg.Kind == domain.KindFactory && cfg.Good {
					mark = style.Check
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\t%s\n", mark, cfg.ID, cfg.Kind, cfg.Name)
			}
			return nil
		},
	}
}
