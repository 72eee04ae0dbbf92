package tracecmd

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewTraceCmd instantiates the trace command.
func NewTraceCmd(opts *Opts) *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:     "trace <hypothesis> <location>",
		Short:   "Append one trace to the debug log",
		Example: `  bugtrace trace H1 processOrder:entry --data '{"orderId": 42}'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload any
			if data != "" {
				if !json.Valid([]byte(data)) {
					return errors.Errorf("--data is not valid JSON: %s", data)
				}
				payload = json.RawMessage(data)
			}
			opts.NewLogger(cmd).Trace(args[0], args[1], payload)
			return nil
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload to attach to the trace")
	return cmd
}
