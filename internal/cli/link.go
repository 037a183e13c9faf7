package cli

import (
	"github.com/spf13/cobra"
)

// NewLinkCommand creates the link command.
func NewLinkCommand(rootOpts *RootOptions, newTracker TrackerFactory) *cobra.Command {
	var (
		caller string
		shards int
	)
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Create the correlation handle shared by the shards of one operation",
		Long: `Create a correlation handle for a request split into --shards transactions.

Every shard transaction must carry the printed caller, shards key and shard count.
No network call is made.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := newFormatter(rootOpts, cmd)
			return withTracker(rootOpts, newTracker, f, func(tr Tracker) error {
				handle, err := tr.Link(caller, shards)
				if err != nil {
					return fail(f, err)
				}
				return f.Success(handleResult(handle))
			})
		},
	}
	cmd.Flags().StringVar(&caller, "caller", "", "address of the originating account")
	cmd.Flags().IntVar(&shards, "shards", 1, "number of shard transactions")
	_ = cmd.MarkFlagRequired("caller")
	return cmd
}
