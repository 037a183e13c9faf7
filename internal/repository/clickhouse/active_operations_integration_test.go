package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
)

func (s *RepositorySuite) TestActiveOperations() {
	now := time.Now().UTC().Truncate(time.Millisecond)

	older := newTrackedOperation("k1", model.TrackingActive, now.Add(-time.Minute))
	newer := newTrackedOperation("k2", model.TrackingActive, now)
	abandoned := newTrackedOperation("k3", model.TrackingAbandoned, now)
	finished := newTrackedOperation("k4", model.TrackingActive, now.Add(-time.Hour))
	finishedDone := finished
	finishedDone.Tracking = model.TrackingDone
	finishedDone.UpdatedAt = now

	s.metrics.EXPECT().Observe("upsert_operations", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("active_operations", gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.UpsertOperations(s.testCtx, []model.TrackedOperation{newer, older, abandoned, finished, finishedDone}))

	got, err := s.repo.ActiveOperations(s.testCtx, 10)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(older, got[0])
	s.Equal(newer, got[1])

	limited, err := s.repo.ActiveOperations(s.testCtx, 1)
	s.Require().NoError(err)
	s.Require().Len(limited, 1)
	s.Equal(older.Handle, limited[0].Handle)
}
