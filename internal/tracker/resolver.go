package tracker

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/retry"
	"go.uber.org/zap"
)

// Resolver maps correlation handles to sequencer operation ids.
// A resolved id is remembered so later resolutions of the same handle return it unchanged.
type Resolver struct {
	client   StatusClient
	metrics  Metrics
	logger   *zap.Logger
	resolved syncMap[model.CorrelationKey, model.OperationID]
}

// NewResolver builds a Resolver. A nil metrics disables instrumentation.
func NewResolver(client StatusClient, metrics Metrics, logger *zap.Logger) *Resolver {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Resolver{
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

// ResolveOnce makes a single lookup. found=false means the sequencer has not observed all shards yet.
func (r *Resolver) ResolveOnce(ctx context.Context, handle model.CorrelationHandle) (model.OperationID, bool, error) {
	if err := handle.Validate(); err != nil {
		return "", false, err
	}
	if id, ok := r.cached(handle.Key()); ok {
		return id, true, nil
	}

	id, found, err := r.client.OperationID(ctx, handle)
	if err != nil {
		return "", false, classify(ctx, "resolve", err)
	}
	if !found || id == "" {
		return "", false, nil
	}
	return r.remember(handle.Key(), id), true, nil
}

// Resolve polls ResolveOnce under policy. Fetch failures and missing ids are retried;
// an exhausted budget yields a timeout error with the number of attempts made.
func (r *Resolver) Resolve(ctx context.Context, handle model.CorrelationHandle, policy retry.Policy) (id model.OperationID, err error) {
	started := time.Now()
	attempts := 0
	defer func() {
		r.metrics.ObserveResolve(err, attempts, started)
	}()

	if err := handle.Validate(); err != nil {
		return "", err
	}
	if err := checkPolicy("resolve", policy); err != nil {
		return "", err
	}

	err = retry.Do(ctx, policy.WithRetryable(retryableLookup), func(ctx context.Context, attempt int) error {
		attempts = attempt
		got, found, err := r.ResolveOnce(ctx, handle)
		if err != nil {
			r.logger.Debug("resolve attempt failed", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		if !found {
			r.logger.Debug("operation id not yet available", zap.Int("attempt", attempt))
			return errNotYetAvailable
		}
		id = got
		return nil
	})
	if err != nil {
		err = finish(ctx, "resolve", err)
		r.logger.Warn("operation id not resolved",
			zap.String("caller", handle.Caller),
			zap.String("shards_key", handle.ShardsKey),
			zap.Int("attempts", attempts),
			zap.Error(err))
		return "", err
	}
	return id, nil
}

// Forget drops the remembered id of a handle.
func (r *Resolver) Forget(key model.CorrelationKey) {
	r.resolved.Delete(key)
}

func (r *Resolver) cached(key model.CorrelationKey) (model.OperationID, bool) {
	return r.resolved.Load(key)
}

// remember stores id unless another id is already known for key, and returns the stored one.
func (r *Resolver) remember(key model.CorrelationKey, id model.OperationID) model.OperationID {
	actual, loaded := r.resolved.LoadOrStore(key, id)
	if loaded && actual != id {
		r.logger.Warn("status service returned a different operation id for a resolved handle",
			zap.String("caller", key.Caller),
			zap.String("shards_key", key.ShardsKey),
			zap.String("known", string(actual)),
			zap.String("returned", string(id)))
	}
	return actual
}
