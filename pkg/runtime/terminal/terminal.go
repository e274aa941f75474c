package terminal

import (
	"io"
	"os"

	"github.com/de-tools/training-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/training-atlas/pkg/runtime/terminal/export"

	"github.com/de-tools/training-atlas/pkg/services/snapshot"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	feed    snapshot.Feed
	output  io.Writer
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Feed   snapshot.Feed
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		feed:   opts.Feed,
		output: opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "atlas",
		Short: "Training campaign reporting tool",
	}

	cmd.AddCommand(commands.NewReportCmd(cli.feed, NewReporter(cli.output), export.NewReporter(cli.output)))
	cmd.AddCommand(commands.NewExportCmd(cli.feed, cli.output))

	return cmd
}
