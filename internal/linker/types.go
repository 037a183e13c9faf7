package linker

import (
	"context"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Broadcaster signs and sends one shard transaction on the origin chain.
	Broadcaster interface {
		Broadcast(ctx context.Context, handle model.CorrelationHandle, index int, payload []byte) (ShardReceipt, error)
	}
)

// ShardReceipt is the origin-chain acceptance of a single shard.
type ShardReceipt struct {
	Index    int
	TxHash   string
	Accepted bool
}

// ShardResult pairs a shard index with its receipt or broadcast error.
type ShardResult struct {
	Receipt ShardReceipt
	Err     error
}
