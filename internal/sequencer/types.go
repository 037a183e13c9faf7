package sequencer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// API is the remote status service surface used by the tracker.
	API interface {
		OperationID(ctx context.Context, handle model.CorrelationHandle) (model.OperationID, bool, error)
		OperationIDs(ctx context.Context, handles []model.CorrelationHandle) (map[model.CorrelationKey]model.OperationID, error)
		StageHistory(ctx context.Context, id model.OperationID) ([]model.ExecutionStage, bool, error)
		StageHistories(ctx context.Context, ids []model.OperationID) (map[model.OperationID][]model.ExecutionStage, error)
		Close() error
	}
	// Metrics records metrics for status service calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type envelope[T any] struct {
	Response T      `json:"response"`
	Error    string `json:"error,omitempty"`
}

type handleDTO struct {
	Caller     string `json:"caller"`
	ShardsKey  string `json:"shardsKey"`
	ShardCount uint32 `json:"shardCount"`
}

type operationIDsRequest struct {
	Handles []handleDTO `json:"handles"`
}

type operationIDItem struct {
	Caller      string `json:"caller"`
	ShardsKey   string `json:"shardsKey"`
	OperationID string `json:"operationId"`
}

type noteDTO struct {
	ErrorName string `json:"errorName"`
	Message   string `json:"message"`
}

type stageDTO struct {
	Stage     string   `json:"stage"`
	Timestamp int64    `json:"timestamp"`
	Note      *noteDTO `json:"note,omitempty"`
}

type stageProfileDTO struct {
	OperationID string     `json:"operationId"`
	Stages      []stageDTO `json:"stages"`
}

type stageProfilesRequest struct {
	OperationIDs []string `json:"operationIds"`
}

func toStages(in []stageDTO) []model.ExecutionStage {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.ExecutionStage, 0, len(in))
	for _, s := range in {
		stage := model.ExecutionStage{
			Name:      model.StageName(s.Stage),
			Timestamp: time.Unix(s.Timestamp, 0).UTC(),
		}
		if s.Note != nil {
			stage.Note = &model.StageNote{ErrorName: s.Note.ErrorName, Message: s.Note.Message}
		}
		out = append(out, stage)
	}
	return out
}
