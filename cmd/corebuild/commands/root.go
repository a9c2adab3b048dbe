// Package commands implements the CLI commands for corebuild.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/corebuild/internal/app"
	"go.trai.ch/corebuild/internal/build"
	"go.trai.ch/corebuild/internal/core/domain"
)

// CLI represents the command line interface for corebuild.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, req app.BuildRequest) (*app.BuildResult, error)
	BuildMany(ctx context.Context, reqs []app.BuildRequest) ([]*app.BuildResult, error)
	UploadCore(ctx context.Context, platform domain.Platform, version int, path string) (*domain.Core, error)
	ListCores(ctx context.Context, platform domain.Platform) ([]domain.Core, error)
	AddConfigurations(ctx context.Context, path string) (int, error)
	ListConfigurations(ctx context.Context) ([]domain.BuildConfiguration, error)
	ResolvePlatform(ctx context.Context, name string) (domain.Platform, error)
	Platforms() []domain.Platform
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           domain.AppName,
		Short:         "Stage platform cores and patch them into installers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newBuildAllCmd())
	rootCmd.AddCommand(c.newCoreCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newPlatformsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
