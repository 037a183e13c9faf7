package model

import "time"

// TrackingState describes whether the watcher still follows an operation.
type TrackingState string

const (
	// TrackingActive marks operations the watcher keeps polling.
	TrackingActive TrackingState = "active"
	// TrackingDone marks operations that reached a terminal stage.
	TrackingDone TrackingState = "done"
	// TrackingAbandoned marks handles that never resolved before the deadline.
	TrackingAbandoned TrackingState = "abandoned"
)

// TrackedOperation is the persisted watch record of a correlation handle.
type TrackedOperation struct {
	Handle        CorrelationHandle
	OperationID   OperationID
	Stage         StageName
	Status        SimplifiedStatus
	OperationType OperationType
	ErrorName     string
	Tracking      TrackingState
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Resolved reports whether the sequencer has assigned an id.
func (o TrackedOperation) Resolved() bool {
	return o.OperationID != ""
}

// StageRecord is one persisted entry of an operation's stage history.
type StageRecord struct {
	OperationID OperationID
	Stage       ExecutionStage
}
