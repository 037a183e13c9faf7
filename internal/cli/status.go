package cli

import (
	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/spf13/cobra"
)

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions, newTracker TrackerFactory) *cobra.Command {
	return operationCommand(rootOpts, newTracker, "status", "Show the current status of an operation",
		func(cmd *cobra.Command, tr Tracker, id model.OperationID) (any, error) {
			status, err := tr.GetStatus(cmd.Context(), id)
			if err != nil {
				return nil, err
			}
			return newStatusResult(status), nil
		})
}

// NewStagesCommand creates the stages command.
func NewStagesCommand(rootOpts *RootOptions, newTracker TrackerFactory) *cobra.Command {
	return operationCommand(rootOpts, newTracker, "stages", "Show the stage history of an operation",
		func(cmd *cobra.Command, tr Tracker, id model.OperationID) (any, error) {
			stages, err := tr.GetStageHistory(cmd.Context(), id)
			if err != nil {
				return nil, err
			}
			return stagesResult{OperationID: id, Stages: stages}, nil
		})
}

// NewTypeCommand creates the type command.
func NewTypeCommand(rootOpts *RootOptions, newTracker TrackerFactory) *cobra.Command {
	return operationCommand(rootOpts, newTracker, "type", "Classify the traffic pattern of an operation",
		func(cmd *cobra.Command, tr Tracker, id model.OperationID) (any, error) {
			opType, err := tr.GetOperationType(cmd.Context(), id)
			if err != nil {
				return nil, err
			}
			return typeResult{OperationID: id, OperationType: opType}, nil
		})
}

func operationCommand(
	rootOpts *RootOptions,
	newTracker TrackerFactory,
	name, short string,
	query func(cmd *cobra.Command, tr Tracker, id model.OperationID) (any, error),
) *cobra.Command {
	return &cobra.Command{
		Use:           name + " <operation-id>",
		Short:         short,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			return withTracker(rootOpts, newTracker, f, func(tr Tracker) error {
				out, err := query(cmd, tr, model.OperationID(args[0]))
				if err != nil {
					return fail(f, err)
				}
				return f.Success(out)
			})
		},
	}
}
