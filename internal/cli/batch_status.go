package cli

import (
	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/spf13/cobra"
)

// NewBatchStatusCommand creates the batch-status command.
func NewBatchStatusCommand(rootOpts *RootOptions, newTracker TrackerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "batch-status <operation-id>...",
		Short: "Show the status of many operations at once",
		Long: `Show the status of many operations at once.

Ids the status service does not know yet are reported as not yet available.
A failure for one id does not hide the results of the others.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			ids := make([]model.OperationID, 0, len(args))
			for _, a := range args {
				ids = append(ids, model.OperationID(a))
			}

			return withTracker(rootOpts, newTracker, f, func(tr Tracker) error {
				results := tr.StatusBatch(cmd.Context(), ids)
				out := make(batchResult, 0, len(results))
				seen := make(map[model.OperationID]struct{}, len(ids))
				for _, id := range ids {
					if _, dup := seen[id]; dup {
						continue
					}
					seen[id] = struct{}{}

					res := results[id]
					entry := batchEntry{OperationID: id, Available: res.Available}
					switch {
					case res.Err != nil:
						entry.Error = res.Err.Error()
					case res.Available:
						s := newStatusResult(res.Status)
						entry.Status = &s
					}
					out = append(out, entry)
				}
				return f.Success(out)
			})
		},
	}
}
