package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/corebuild/internal/app"
	"go.trai.ch/corebuild/internal/ui/output"
	"go.trai.ch/corebuild/internal/ui/style"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an installer for one platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := buildRequest(cmd)
			req.Platform, _ = cmd.Flags().GetString("platform")

			res, err := c.app.Build(cmd.Context(), req)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringP("platform", "p", "", "Target platform (defaults to the configured or host platform)")
	addBuildFlags(cmd)
	return cmd
}

func (c *CLI) newBuildAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build-all",
		Short: "Build installers for several platforms in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			platforms, _ := cmd.Flags().GetStringSlice("platform")
			if len(platforms) == 0 {
				for _, p := range c.app.Platforms() {
					platforms = append(platforms, p.String())
				}
			}

			base := buildRequest(cmd)
			reqs := make([]app.BuildRequest, 0, len(platforms))
			for _, p := range platforms {
				req := base
				req.Platform = p
				reqs = append(reqs, req)
			}

			results, err := c.app.BuildMany(cmd.Context(), reqs)
			for _, res := range results {
				if res != nil {
					printResult(cmd.OutOrStdout(), res)
				}
			}
			return err
		},
	}

	cmd.Flags().StringSliceP("platform", "p", nil, "Target platforms (defaults to every registered platform)")
	addBuildFlags(cmd)
	return cmd
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Factory configuration id to embed")
	cmd.Flags().Int("min-version", 0, "Ignore cores older than this version")
	cmd.Flags().StringP("output", "o", ".", "Directory receiving the installer (empty keeps it in the workspace)")
	cmd.Flags().Bool("keep", false, "Keep the build workspace")
}

func buildRequest(cmd *cobra.Command) app.BuildRequest {
	configID, _ := cmd.Flags().GetString("config")
	minVersion, _ := cmd.Flags().GetInt("min-version")
	outputDir, _ := cmd.Flags().GetString("output")
	keep, _ := cmd.Flags().GetBool("keep")

	return app.BuildRequest{
		ConfigID:   configID,
		MinVersion: minVersion,
		OutputDir:  outputDir,
		Keep:       keep,
	}
}

func printResult(w io.Writer, res *app.BuildResult) {
	out := output.New(w)
	check := out.String(style.Check).Foreground(out.Color(string(style.Green)))
	_, _ = fmt.Fprintf(w, "%s %s %s %s\n", check, res.Core.String(),
		out.String("→").Foreground(out.Color(string(style.Muted))), res.Artifact.Path)
}
