package cli

import (
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/goodnatureofminers/tac-operation-tracker/pkg/safe"
	"github.com/spf13/cobra"
)

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions, newTracker TrackerFactory) *cobra.Command {
	var (
		caller     string
		shardsKey  string
		shardCount int
		wait       bool
		pf         policyFlags
	)
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Look up the operation id assigned to a correlation handle",
		Long: `Look up the operation id the sequencer assigned to a correlation handle.

Without --wait a single lookup is made and "not yet available" is not an error.
With --wait the lookup is retried until an id appears or --attempts are spent.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := newFormatter(rootOpts, cmd)
			count, err := safe.PositiveUint32(shardCount)
			if err != nil {
				return fail(f, WrapExitError(ExitCommandError, "shard count", err))
			}
			handle := model.CorrelationHandle{Caller: caller, ShardsKey: shardsKey, ShardCount: count}

			return withTracker(rootOpts, newTracker, f, func(tr Tracker) error {
				if !wait {
					id, ok, err := tr.ResolveOnce(cmd.Context(), handle)
					if err != nil {
						return fail(f, err)
					}
					return f.Success(resolveResult{OperationID: id, Available: ok})
				}

				policy, err := pf.policy()
				if err != nil {
					return fail(f, err)
				}
				f.VerboseLog("resolving %s/%s, up to %d attempts", caller, shardsKey, policy.MaxAttempts)
				id, err := tr.ResolveOperationID(cmd.Context(), handle, policy)
				if err != nil {
					return fail(f, err)
				}
				return f.Success(resolveResult{OperationID: id, Available: true})
			})
		},
	}
	cmd.Flags().StringVar(&caller, "caller", "", "address of the originating account")
	cmd.Flags().StringVar(&shardsKey, "shards-key", "", "shards key printed by link")
	cmd.Flags().IntVar(&shardCount, "shard-count", 1, "number of shard transactions")
	cmd.Flags().BoolVar(&wait, "wait", false, "retry until the id is assigned")
	pf.register(cmd, 10, 5*time.Second)
	_ = cmd.MarkFlagRequired("caller")
	_ = cmd.MarkFlagRequired("shards-key")
	return cmd
}
