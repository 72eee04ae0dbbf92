package tracecmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/bugtrace/internal/cli"
)

// queryUser asks for confirmation on the command's stdin and stdout.
var queryUser = cli.QueryUser

// NewClearCmd instantiates the clear command.
func NewClearCmd(opts *Opts) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the debug log before a new reproduction session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.NewLogger(cmd)
			if !yes && logger.HasLogs() {
				confirm, err := queryUser(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Clear %s?", logger.Path()))
				if err != nil {
					return errors.Wrap(err, "confirmation needed, pass --yes")
				}
				if !confirm {
					fmt.Fprintln(cmd.OutOrStdout(), "not cleared")
					return nil
				}
			}
			logger.Clear()
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "clear without asking for confirmation")
	return cmd
}
