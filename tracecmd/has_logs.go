package tracecmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ErrNoLogs is returned by has-logs with --exit-code when the debug log is missing or empty.
var ErrNoLogs = errors.New("no debug logs")

// NewHasLogsCmd instantiates the has-logs command.
func NewHasLogsCmd(opts *Opts) *cobra.Command {
	var exitCode bool
	cmd := &cobra.Command{
		Use:   "has-logs",
		Short: "Report whether the debug log exists and is not empty",
		Args:  cobra.NoArgs,
		// The exit status is the answer; ErrNoLogs is not printed.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := opts.NewLogger(cmd).HasLogs()
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			if !ok && exitCode {
				return ErrNoLogs
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "exit with a non-zero status when there are no logs")
	return cmd
}
