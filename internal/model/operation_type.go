package model

// OperationType classifies the traffic pattern of an operation.
type OperationType string

const (
	OperationTypeOriginToTarget         OperationType = "ORIGIN_TO_TARGET"
	OperationTypeOriginToTargetToOrigin OperationType = "ORIGIN_TO_TARGET_TO_ORIGIN"
	OperationTypeReturn                 OperationType = "RETURN"
	OperationTypeRollback               OperationType = "ROLLBACK"
	// OperationTypeUndetermined means not enough stages have been observed yet.
	OperationTypeUndetermined OperationType = "UNDETERMINED"
)
