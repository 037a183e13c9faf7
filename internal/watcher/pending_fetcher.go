package watcher

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
)

type pendingFetcher struct {
	repository Repository
	limit      int
}

func (f *pendingFetcher) Fetch(ctx context.Context) ([]model.TrackedOperation, error) {
	ops, err := f.repository.ActiveOperations(ctx, f.limit)
	if err != nil {
		return nil, fmt.Errorf("load active operations: %w", err)
	}
	return ops, nil
}
