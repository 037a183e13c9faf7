package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
)

func (s *RepositorySuite) TestOperationNotFound() {
	s.metrics.EXPECT().Observe("operation", gomock.Nil(), gomock.Any()).Times(1)

	_, found, err := s.repo.Operation(s.testCtx, model.CorrelationKey{Caller: "EQnobody", ShardsKey: "none"})
	s.Require().NoError(err)
	s.False(found)
}

func (s *RepositorySuite) TestOperationStages() {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []model.StageRecord{
		{OperationID: "op-1", Stage: model.ExecutionStage{Name: model.StageExecutedOnTarget, Timestamp: ts.Add(2 * time.Second)}},
		{OperationID: "op-1", Stage: model.ExecutionStage{Name: model.StageCollectingShards, Timestamp: ts}},
		{OperationID: "op-1", Stage: model.ExecutionStage{
			Name:      model.StageRolledBack,
			Timestamp: ts.Add(3 * time.Second),
			Note:      &model.StageNote{ErrorName: "OutOfGas", Message: "execution reverted"},
		}},
		{OperationID: "op-2", Stage: model.ExecutionStage{Name: model.StageCollectingShards, Timestamp: ts}},
	}

	s.metrics.EXPECT().Observe("insert_stages", gomock.Nil(), gomock.Any()).Times(2)
	s.metrics.EXPECT().Observe("operation_stages", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertStages(s.testCtx, records))
	// duplicates collapse on merge
	s.Require().NoError(s.repo.InsertStages(s.testCtx, records[:2]))

	got, err := s.repo.OperationStages(s.testCtx, "op-1")
	s.Require().NoError(err)
	s.Equal([]model.ExecutionStage{records[1].Stage, records[0].Stage, records[2].Stage}, got)
	s.Equal(uint64(4), s.countRows("operation_stages"))
}
