package tracecmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/bugtrace/debuglog"
	"github.com/malonaz/bugtrace/internal/cli"
)

// NewShowCmd instantiates the show command.
func NewShowCmd(opts *Opts) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the debug log entries in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.NewLogger(cmd)
			entries, err := logger.Entries()
			if err != nil {
				return errors.Wrapf(err, "reading %s", logger.Path())
			}
			w := cmd.OutOrStdout()
			if raw {
				encoder := json.NewEncoder(w)
				encoder.SetEscapeHTML(false)
				for _, entry := range entries {
					if err := encoder.Encode(entry); err != nil {
						return errors.Wrap(err, "encoding entry")
					}
				}
				return nil
			}

			if len(entries) == 0 {
				cli.Warning(w, "no debug logs at %s\n", logger.Path())
				return nil
			}
			cli.Title(w, "%d entries", len(entries))
			for _, entry := range entries {
				if err := printEntry(cmd, entry); err != nil {
					return err
				}
			}
			cli.Separator(w)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "json", false, "print raw JSON lines")
	return cmd
}

func printEntry(cmd *cobra.Command, entry *debuglog.Entry) error {
	w := cmd.OutOrStdout()
	cli.Timestamp(w, entry.Timestamp)
	fmt.Fprint(w, " ")
	cli.Hypothesis(w, entry.Hypothesis)
	fmt.Fprint(w, " ")
	cli.Location(w, entry.Location)
	if entry.Data != nil {
		bytes, err := json.Marshal(entry.Data)
		if err != nil {
			return errors.Wrap(err, "marshaling data")
		}
		fmt.Fprint(w, " ")
		cli.Data(w, string(bytes))
	}
	fmt.Fprintln(w)
	return nil
}
