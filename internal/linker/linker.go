// Package linker assigns correlation handles to logical operations that are split into shards.
package linker

import (
	"fmt"
	"strings"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/trackerr"
	"github.com/goodnatureofminers/tac-operation-tracker/pkg/safe"
	"github.com/google/uuid"
)

// Linker produces correlation handles. It performs no network I/O.
type Linker struct {
	newKey func() (uuid.UUID, error)
}

// New returns a Linker generating time-ordered UUIDv7 shard keys.
func New() *Linker {
	return &Linker{newKey: uuid.NewV7}
}

// Link creates the handle shared by all shardCount transactions of one operation.
func (l *Linker) Link(caller string, shardCount int) (model.CorrelationHandle, error) {
	if strings.TrimSpace(caller) == "" {
		return model.CorrelationHandle{}, trackerr.Validationf("link", "caller is required")
	}
	count, err := safe.PositiveUint32(shardCount)
	if err != nil {
		return model.CorrelationHandle{}, trackerr.Validationf("link", "shard count: %w", err)
	}

	key, err := l.newKey()
	if err != nil {
		return model.CorrelationHandle{}, fmt.Errorf("link: generate shards key: %w", err)
	}

	return model.CorrelationHandle{
		Caller:     caller,
		ShardsKey:  key.String(),
		ShardCount: count,
	}, nil
}
