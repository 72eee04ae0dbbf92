// Package tracecmd implements the bugtrace command line.
package tracecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/malonaz/bugtrace/debuglog"
	"github.com/malonaz/bugtrace/internal/configuration"
	"github.com/malonaz/bugtrace/internal/debug"
)

// Opts shared by every command.
type Opts struct {
	Directory string
	Filename  string
	Verbose   bool
}

// NewLogger builds the debug log described by opts. Diagnostics go to the command's stderr.
func (o *Opts) NewLogger(cmd *cobra.Command) *debuglog.Logger {
	return debuglog.New(
		debuglog.WithDirectory(o.Directory),
		debuglog.WithFilename(o.Filename),
		debuglog.WithDiagnostics(debug.NewLogger(cmd.ErrOrStderr(), o.Verbose)),
	)
}

// NewRootCmd instantiates the root command, with flags defaulting to config.
func NewRootCmd(config *configuration.Config) *cobra.Command {
	opts := &Opts{}
	cmd := &cobra.Command{
		Use:          "bugtrace",
		Short:        "Record and inspect debugging hypotheses",
		Long:         "Append hypothesis traces to a JSON-lines debug log, clear it between reproduction sessions, and inspect it.",
		Version:      "1.0",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.Directory, "dir", config.Directory, "log directory (default <cwd>/tmp)")
	cmd.PersistentFlags().StringVar(&opts.Filename, "file", config.Filename, "log filename")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", config.Verbose, "print swallowed failures to stderr")

	cmd.AddCommand(NewTraceCmd(opts))
	cmd.AddCommand(NewClearCmd(opts))
	cmd.AddCommand(NewHasLogsCmd(opts))
	cmd.AddCommand(NewShowCmd(opts))
	cmd.AddCommand(NewPathCmd(opts))
	return cmd
}

// NewPathCmd instantiates the path command.
func NewPathCmd(opts *Opts) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the debug log path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), opts.NewLogger(cmd).Path())
		},
	}
}
