package linker

import (
	"context"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/trackerr"
)

// Dispatch broadcasts one payload per shard, all carrying the same handle.
// A failed shard does not stop the remaining ones; once ctx ends the rest report the context error.
func Dispatch(ctx context.Context, b Broadcaster, handle model.CorrelationHandle, payloads [][]byte) ([]ShardResult, error) {
	if err := handle.Validate(); err != nil {
		return nil, err
	}
	if uint64(len(payloads)) != uint64(handle.ShardCount) {
		return nil, trackerr.Validationf("dispatch", "got %d payloads for %d shards", len(payloads), handle.ShardCount)
	}

	results := make([]ShardResult, len(payloads))
	for i, payload := range payloads {
		if err := ctx.Err(); err != nil {
			results[i] = ShardResult{Receipt: ShardReceipt{Index: i}, Err: trackerr.Canceled("dispatch", err)}
			continue
		}
		receipt, err := b.Broadcast(ctx, handle, i, payload)
		receipt.Index = i
		results[i] = ShardResult{Receipt: receipt, Err: err}
	}
	return results, nil
}
