package transport

import (
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
)

type operationIDResponse struct {
	OperationID model.OperationID `json:"operationId,omitempty"`
	Available   bool              `json:"available"`
}

type stagesResponse struct {
	OperationID model.OperationID      `json:"operationId"`
	Stages      []model.ExecutionStage `json:"stages"`
}

type operationTypeResponse struct {
	OperationID   model.OperationID   `json:"operationId"`
	OperationType model.OperationType `json:"operationType"`
}

type batchStatusRequest struct {
	OperationIDs []model.OperationID `json:"operationIds"`
}

type batchStatusEntry struct {
	OperationID model.OperationID      `json:"operationId"`
	Available   bool                   `json:"available"`
	Status      *model.OperationStatus `json:"status,omitempty"`
	Stages      []model.ExecutionStage `json:"stages,omitempty"`
	Error       *errorBody             `json:"error,omitempty"`
}

type batchStatusResponse struct {
	Results []batchStatusEntry `json:"results"`
}

type batchResolveRequest struct {
	Handles []model.CorrelationHandle `json:"handles"`
}

type batchResolveEntry struct {
	Handle      model.CorrelationHandle `json:"handle"`
	OperationID model.OperationID       `json:"operationId,omitempty"`
	Available   bool                    `json:"available"`
	Error       *errorBody              `json:"error,omitempty"`
}

type batchResolveResponse struct {
	Results []batchResolveEntry `json:"results"`
}

type trackedOperationResponse struct {
	Handle        model.CorrelationHandle `json:"handle"`
	OperationID   model.OperationID       `json:"operationId,omitempty"`
	Stage         model.StageName         `json:"stage"`
	Status        model.SimplifiedStatus  `json:"status"`
	OperationType model.OperationType     `json:"operationType,omitempty"`
	ErrorName     string                  `json:"errorName,omitempty"`
	Tracking      model.TrackingState     `json:"tracking"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
	Stages        []model.ExecutionStage  `json:"stages,omitempty"`
}

func toTrackedOperationResponse(op model.TrackedOperation, stages []model.ExecutionStage) trackedOperationResponse {
	return trackedOperationResponse{
		Handle:        op.Handle,
		OperationID:   op.OperationID,
		Stage:         op.Stage,
		Status:        op.Status,
		OperationType: op.OperationType,
		ErrorName:     op.ErrorName,
		Tracking:      op.Tracking,
		CreatedAt:     op.CreatedAt,
		UpdatedAt:     op.UpdatedAt,
		Stages:        stages,
	}
}
