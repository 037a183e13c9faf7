package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
)

type handleResult struct {
	Caller     string `json:"caller"`
	ShardsKey  string `json:"shardsKey"`
	ShardCount uint32 `json:"shardCount"`
}

func (r handleResult) String() string {
	return fmt.Sprintf("caller=%s shards_key=%s shard_count=%d", r.Caller, r.ShardsKey, r.ShardCount)
}

type resolveResult struct {
	OperationID model.OperationID `json:"operationId,omitempty"`
	Available   bool              `json:"available"`
}

func (r resolveResult) String() string {
	if !r.Available {
		return "not yet available"
	}
	return string(r.OperationID)
}

type statusResult struct {
	OperationID model.OperationID      `json:"operationId"`
	Stage       model.StageName        `json:"stage"`
	Timestamp   time.Time              `json:"timestamp,omitzero"`
	Simplified  model.SimplifiedStatus `json:"simplified"`
	Success     bool                   `json:"success"`
	ErrorName   string                 `json:"errorName,omitempty"`
}

func newStatusResult(s model.OperationStatus) statusResult {
	return statusResult{
		OperationID: s.OperationID,
		Stage:       s.Stage.Name,
		Timestamp:   s.Stage.Timestamp,
		Simplified:  s.Simplified,
		Success:     s.Success,
		ErrorName:   s.FailureReason(),
	}
}

func (r statusResult) String() string {
	out := fmt.Sprintf("%s %s %s", r.OperationID, r.Simplified, r.Stage)
	if r.ErrorName != "" {
		out += " error=" + r.ErrorName
	}
	return out
}

type stagesResult struct {
	OperationID model.OperationID      `json:"operationId"`
	Stages      []model.ExecutionStage `json:"stages"`
}

func (r stagesResult) String() string {
	if len(r.Stages) == 0 {
		return fmt.Sprintf("%s: no stages recorded", r.OperationID)
	}
	var b strings.Builder
	for i, s := range r.Stages {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s  %s", s.Timestamp.UTC().Format(time.RFC3339), s.Name)
		if s.Note != nil && s.Note.ErrorName != "" {
			fmt.Fprintf(&b, "  %s", s.Note.ErrorName)
		}
	}
	return b.String()
}

type typeResult struct {
	OperationID   model.OperationID   `json:"operationId"`
	OperationType model.OperationType `json:"operationType"`
}

func (r typeResult) String() string {
	return string(r.OperationType)
}

type batchEntry struct {
	OperationID model.OperationID `json:"operationId"`
	Available   bool              `json:"available"`
	Status      *statusResult     `json:"status,omitempty"`
	Error       string            `json:"error,omitempty"`
}

type batchResult []batchEntry

func (r batchResult) String() string {
	lines := make([]string, 0, len(r))
	for _, e := range r {
		switch {
		case e.Error != "":
			lines = append(lines, fmt.Sprintf("%s error: %s", e.OperationID, e.Error))
		case !e.Available:
			lines = append(lines, fmt.Sprintf("%s not yet available", e.OperationID))
		default:
			lines = append(lines, e.Status.String())
		}
	}
	return strings.Join(lines, "\n")
}
