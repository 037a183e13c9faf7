package model

// SimplifiedStatus is the UI-facing projection of an operation's stage.
type SimplifiedStatus string

const (
	StatusPending    SimplifiedStatus = "PENDING"
	StatusSuccessful SimplifiedStatus = "SUCCESSFUL"
	StatusFailed     SimplifiedStatus = "FAILED"
)

// OperationStatus is derived from the latest stage of an operation and never persisted by the sequencer.
type OperationStatus struct {
	OperationID OperationID      `json:"operationId"`
	Stage       ExecutionStage   `json:"stage"`
	Success     bool             `json:"success"`
	Simplified  SimplifiedStatus `json:"simplified"`
}

// Terminal reports whether the status can no longer change.
func (s OperationStatus) Terminal() bool {
	return s.Simplified == StatusSuccessful || s.Simplified == StatusFailed
}

// FailureReason returns the error name attached to a failed operation, if the sequencer reported one.
func (s OperationStatus) FailureReason() string {
	if s.Simplified != StatusFailed || s.Stage.Note == nil {
		return ""
	}
	return s.Stage.Note.ErrorName
}
