package tracker

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/retry"
	"go.uber.org/zap"
)

// WaitForTerminal polls the status of id until it is SUCCESSFUL or FAILED.
// On timeout the last observed status is returned together with the error.
func (t *Tracker) WaitForTerminal(ctx context.Context, id model.OperationID, policy retry.Policy) (status model.OperationStatus, err error) {
	started := time.Now()
	attempts := 0
	defer func() {
		t.observeWait(err, attempts, started)
	}()

	if err := checkPolicy("wait for terminal", policy); err != nil {
		return model.OperationStatus{}, err
	}

	err = retry.Do(ctx, policy.WithRetryable(retryableWait), func(ctx context.Context, attempt int) error {
		attempts = attempt
		current, err := t.stages.Status(ctx, id)
		if err != nil {
			t.logger.Debug("status poll failed", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		status = current
		if !current.Terminal() {
			return errStillPending
		}
		return nil
	})
	if err != nil {
		err = finish(ctx, "wait for terminal", err)
		t.logger.Warn("operation did not reach a terminal stage",
			zap.String("operation_id", string(id)),
			zap.String("stage", string(status.Stage.Name)),
			zap.Int("attempts", attempts),
			zap.Error(err))
		return status, err
	}
	return status, nil
}
