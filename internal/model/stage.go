package model

import "time"

// StageName enumerates the execution stages reported by the sequencer.
type StageName string

const (
	StageCollectingShards      StageName = "COLLECTING_SHARDS"
	StageValidatedBySequencers StageName = "VALIDATED_BY_SEQUENCERS"
	StageConsensusReached      StageName = "CONSENSUS_REACHED"
	StageExecutedOnTarget      StageName = "EXECUTED_ON_TARGET"
	StageTerminalSuccess       StageName = "TERMINAL_SUCCESS"
	StageReturnedToOrigin      StageName = "RETURNED_TO_ORIGIN"
	StageRolledBack            StageName = "ROLLED_BACK"
)

// Terminal reports whether no further stage can follow.
func (s StageName) Terminal() bool {
	switch s {
	case StageTerminalSuccess, StageReturnedToOrigin, StageRolledBack:
		return true
	default:
		return false
	}
}

// Known reports whether s is one of the documented stages.
func (s StageName) Known() bool {
	switch s {
	case StageCollectingShards, StageValidatedBySequencers, StageConsensusReached, StageExecutedOnTarget:
		return true
	default:
		return s.Terminal()
	}
}

// StageNote carries failure detail attached to a stage.
type StageNote struct {
	ErrorName string `json:"errorName,omitempty"`
	Message   string `json:"message,omitempty"`
}

// ExecutionStage is one entry of an operation's append-only progress history.
type ExecutionStage struct {
	Name      StageName  `json:"stage"`
	Timestamp time.Time  `json:"timestamp"`
	Note      *StageNote `json:"note,omitempty"`
}
