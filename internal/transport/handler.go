package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/trackerr"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

const maxRequestBodyBytes = 1 << 20

// OperationHandler serves operation lookups and watcher registrations.
type OperationHandler struct {
	tracker   Tracker
	registry  Registry
	marshaler gwruntime.Marshaler
	logger    *zap.Logger
	now       func() time.Time
}

// NewOperationHandler returns an OperationHandler instance.
func NewOperationHandler(tr Tracker, registry Registry, logger *zap.Logger) *OperationHandler {
	return &OperationHandler{
		tracker:   tr,
		registry:  registry,
		marshaler: &gwruntime.JSONBuiltin{},
		logger:    logger,
		now:       time.Now,
	}
}

// Register attaches the REST routes to mux.
func (h *OperationHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{http.MethodGet, "/v1/operations/{operation_id}/status", h.status},
		{http.MethodGet, "/v1/operations/{operation_id}/stages", h.stages},
		{http.MethodGet, "/v1/operations/{operation_id}/type", h.operationType},
		{http.MethodGet, "/v1/operation-id", h.operationID},
		{http.MethodPost, "/v1/operations:batchStatus", h.batchStatus},
		{http.MethodPost, "/v1/operation-ids:batchResolve", h.batchResolve},
		{http.MethodPost, "/v1/tracked-operations", h.track},
		{http.MethodGet, "/v1/tracked-operations", h.trackedOperation},
	}
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", r.method, r.pattern, err)
		}
	}
	return nil
}

func (h *OperationHandler) status(w http.ResponseWriter, r *http.Request, params map[string]string) {
	status, err := h.tracker.GetStatus(r.Context(), model.OperationID(params["operation_id"]))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.write(w, http.StatusOK, status)
}

func (h *OperationHandler) stages(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id := model.OperationID(params["operation_id"])
	stages, err := h.tracker.GetStageHistory(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.write(w, http.StatusOK, stagesResponse{OperationID: id, Stages: stages})
}

func (h *OperationHandler) operationType(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id := model.OperationID(params["operation_id"])
	opType, err := h.tracker.GetOperationType(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.write(w, http.StatusOK, operationTypeResponse{OperationID: id, OperationType: opType})
}

func (h *OperationHandler) operationID(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	handle, err := handleFromQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, ok, err := h.tracker.ResolveOnce(r.Context(), handle)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.write(w, http.StatusOK, operationIDResponse{OperationID: id, Available: ok})
}

func (h *OperationHandler) batchStatus(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req batchStatusRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	results := h.tracker.StatusBatch(r.Context(), req.OperationIDs)
	resp := batchStatusResponse{Results: make([]batchStatusEntry, 0, len(results))}
	seen := make(map[model.OperationID]struct{}, len(results))
	for _, id := range req.OperationIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		res := results[id]
		entry := batchStatusEntry{OperationID: id, Available: res.Available, Error: toErrorBody(res.Err)}
		if res.Available {
			entry.Status = &res.Status
			entry.Stages = res.Stages
		}
		resp.Results = append(resp.Results, entry)
	}
	h.write(w, http.StatusOK, resp)
}

func (h *OperationHandler) batchResolve(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req batchResolveRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	results := h.tracker.ResolveBatch(r.Context(), req.Handles)
	resp := batchResolveResponse{Results: make([]batchResolveEntry, 0, len(results))}
	seen := make(map[model.CorrelationHandle]struct{}, len(results))
	for _, handle := range req.Handles {
		if _, dup := seen[handle]; dup {
			continue
		}
		seen[handle] = struct{}{}
		res := results[handle]
		resp.Results = append(resp.Results, batchResolveEntry{
			Handle:      handle,
			OperationID: res.OperationID,
			Available:   res.Available,
			Error:       toErrorBody(res.Err),
		})
	}
	h.write(w, http.StatusOK, resp)
}

// track registers a handle with the watcher. Registering a known handle returns the stored record.
func (h *OperationHandler) track(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var handle model.CorrelationHandle
	if err := h.decode(w, r, &handle); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := handle.Validate(); err != nil {
		h.writeError(w, r, err)
		return
	}

	existing, found, err := h.registry.Operation(r.Context(), handle.Key())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if found {
		h.write(w, http.StatusOK, toTrackedOperationResponse(existing, nil))
		return
	}

	// DateTime64(3) keeps milliseconds.
	now := h.now().UTC().Truncate(time.Millisecond)
	op := model.TrackedOperation{
		Handle:    handle,
		Stage:     model.StageCollectingShards,
		Status:    model.StatusPending,
		Tracking:  model.TrackingActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.registry.UpsertOperations(r.Context(), []model.TrackedOperation{op}); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logger.Info("registered handle",
		zap.String("caller", handle.Caller),
		zap.String("shards_key", handle.ShardsKey),
		zap.Uint32("shard_count", handle.ShardCount))
	h.write(w, http.StatusCreated, toTrackedOperationResponse(op, nil))
}

func (h *OperationHandler) trackedOperation(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	key := model.CorrelationKey{Caller: r.URL.Query().Get("caller"), ShardsKey: r.URL.Query().Get("shards_key")}
	if key.Caller == "" || key.ShardsKey == "" {
		h.writeError(w, r, trackerr.Validationf("tracked operation", "caller and shards_key are required"))
		return
	}

	op, found, err := h.registry.Operation(r.Context(), key)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !found {
		h.writeError(w, r, fmt.Errorf("tracked operation %s/%s: %w", key.Caller, key.ShardsKey, errNotFound))
		return
	}

	var stages []model.ExecutionStage
	if op.Resolved() {
		stages, err = h.registry.OperationStages(r.Context(), op.OperationID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	h.write(w, http.StatusOK, toTrackedOperationResponse(op, stages))
}

func handleFromQuery(r *http.Request) (model.CorrelationHandle, error) {
	q := r.URL.Query()
	handle := model.CorrelationHandle{Caller: q.Get("caller"), ShardsKey: q.Get("shards_key"), ShardCount: 1}
	if raw := q.Get("shard_count"); raw != "" {
		count, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return model.CorrelationHandle{}, trackerr.Validationf("operation id", "shard_count %q is not a number", raw)
		}
		handle.ShardCount = uint32(count)
	}
	return handle, nil
}

func (h *OperationHandler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := h.marshaler.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return trackerr.Validationf("decode request", "request body is empty")
		}
		return trackerr.Validationf("decode request", "%v", err)
	}
	return nil
}

func (h *OperationHandler) write(w http.ResponseWriter, code int, v any) {
	buf, err := h.marshaler.Marshal(v)
	if err != nil {
		h.logger.Error("marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", h.marshaler.ContentType(v))
	w.WriteHeader(code)
	if _, err := w.Write(buf); err != nil {
		h.logger.Debug("write response", zap.Error(err))
	}
}

func (h *OperationHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := httpStatusOf(err)
	if code >= http.StatusInternalServerError && !errors.Is(err, context.Canceled) {
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	h.write(w, code, errorResponse{Error: *toErrorBody(err)})
}
