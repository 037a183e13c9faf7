package cli

import (
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/trackerr"
	"github.com/spf13/cobra"
)

// NewWaitCommand creates the wait command.
func NewWaitCommand(rootOpts *RootOptions, newTracker TrackerFactory) *cobra.Command {
	var pf policyFlags
	cmd := &cobra.Command{
		Use:   "wait <operation-id>",
		Short: "Poll an operation until it reaches a terminal stage",
		Long: `Poll an operation until it is SUCCESSFUL or FAILED.

Exits with code 3 when --attempts are spent, printing the last observed status.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			policy, err := pf.policy()
			if err != nil {
				return fail(f, err)
			}
			return withTracker(rootOpts, newTracker, f, func(tr Tracker) error {
				status, err := tr.WaitForTerminal(cmd.Context(), model.OperationID(args[0]), policy)
				if err != nil {
					if trackerr.KindOf(err) == trackerr.KindTimeout && status.OperationID != "" {
						f.VerboseLog("last status: %s", newStatusResult(status))
					}
					return fail(f, err)
				}
				return f.Success(newStatusResult(status))
			})
		},
	}
	pf.register(cmd, 60, 10*time.Second)
	return cmd
}
