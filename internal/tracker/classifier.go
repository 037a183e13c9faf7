package tracker

import "github.com/goodnatureofminers/tac-operation-tracker/internal/model"

// Classify derives the traffic pattern of an operation from its stage history.
// Any stage before RETURNED_TO_ORIGIN marks an outbound leg, since the sequencer may start
// reporting after COLLECTING_SHARDS. Histories that may still grow a return leg are UNDETERMINED.
func Classify(stages []model.ExecutionStage) model.OperationType {
	var outbound, executed, succeeded, returned bool
	for _, s := range stages {
		switch s.Name {
		case model.StageRolledBack:
			return model.OperationTypeRollback
		case model.StageCollectingShards, model.StageValidatedBySequencers, model.StageConsensusReached:
			outbound = true
		case model.StageExecutedOnTarget:
			outbound = true
			executed = true
		case model.StageTerminalSuccess:
			succeeded = executed
		case model.StageReturnedToOrigin:
			returned = true
		}
	}

	switch {
	case returned && outbound:
		return model.OperationTypeOriginToTargetToOrigin
	case returned:
		return model.OperationTypeReturn
	case succeeded:
		return model.OperationTypeOriginToTarget
	default:
		return model.OperationTypeUndetermined
	}
}
