package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
)

func (s *RepositorySuite) TestUpsertOperations() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	ops := []model.TrackedOperation{
		newTrackedOperation("k1", model.TrackingActive, now),
		newTrackedOperation("k2", model.TrackingActive, now),
	}

	s.metrics.EXPECT().Observe("upsert_operations", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.UpsertOperations(s.testCtx, ops))
	s.Equal(uint64(len(ops)), s.countRows("tracked_operations"))
}

func (s *RepositorySuite) TestUpsertOperationsLatestUpdateWins() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	active := newTrackedOperation("k1", model.TrackingActive, now)

	done := active
	done.OperationID = "op-1"
	done.Stage = model.StageTerminalSuccess
	done.Status = model.StatusSuccessful
	done.OperationType = model.OperationTypeOriginToTarget
	done.Tracking = model.TrackingDone
	done.UpdatedAt = now.Add(time.Second)

	s.metrics.EXPECT().Observe("upsert_operations", gomock.Nil(), gomock.Any()).Times(2)
	s.metrics.EXPECT().Observe("operation", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.UpsertOperations(s.testCtx, []model.TrackedOperation{done}))
	s.Require().NoError(s.repo.UpsertOperations(s.testCtx, []model.TrackedOperation{active}))

	got, found, err := s.repo.Operation(s.testCtx, active.Handle.Key())
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(done, got)
}

func (s *RepositorySuite) TestUpsertOperationsEmpty() {
	s.metrics.EXPECT().Observe("upsert_operations", gomock.Nil(), gomock.Any()).Times(1)
	s.Require().NoError(s.repo.UpsertOperations(s.testCtx, nil))
}
