// Package model defines domain models for cross-chain operation tracking.
package model

import (
	"strings"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/trackerr"
)

// OperationID is the identifier assigned by the sequencer once it has observed a shard set.
type OperationID string

// CorrelationHandle links the shard transactions of one logical operation.
// All shards carrying the same ShardsKey must carry the same Caller and ShardCount.
type CorrelationHandle struct {
	Caller     string `json:"caller"`
	ShardsKey  string `json:"shardsKey"`
	ShardCount uint32 `json:"shardCount"`
}

// CorrelationKey is the part of a handle the sequencer indexes operations by.
type CorrelationKey struct {
	Caller    string
	ShardsKey string
}

// Key returns the lookup key of the handle.
func (h CorrelationHandle) Key() CorrelationKey {
	return CorrelationKey{Caller: h.Caller, ShardsKey: h.ShardsKey}
}

// Validate reports a validation error for handles the sequencer cannot resolve.
func (h CorrelationHandle) Validate() error {
	if strings.TrimSpace(h.Caller) == "" {
		return trackerr.Validationf("validate handle", "caller is required")
	}
	if strings.TrimSpace(h.ShardsKey) == "" {
		return trackerr.Validationf("validate handle", "shards key is required")
	}
	if h.ShardCount == 0 {
		return trackerr.Validationf("validate handle", "shard count must be positive")
	}
	return nil
}
