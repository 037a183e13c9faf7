// Package sequencer is the HTTP client of the remote operation status service.
package sequencer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"go.uber.org/ratelimit"
)

const maxErrorBody = 512

var errNotFound = errors.New("not found")

// StatusError is returned for non-2xx responses other than 404.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status service responded %d: %s", e.StatusCode, e.Body)
}

// Config configures the status service client.
type Config struct {
	BaseURL string
	// Timeout bounds a single HTTP request. Zero means 30s.
	Timeout time.Duration
	// RPS caps outgoing requests per second. Zero or negative disables the cap.
	RPS int
}

// Client talks to the status service. Call Close to release idle connections.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	limiter ratelimit.Limiter
}

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("status service url is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse status service url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("status service url scheme %q not supported", base.Scheme)
	}
	if base.Host == "" {
		return nil, errors.New("status service url missing host")
	}
	base.Path = strings.TrimSuffix(base.Path, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
		limiter: limiter,
	}, nil
}

var _ API = (*Client)(nil)

// take waits for a request slot. A caller whose context ended while waiting gives the slot up.
func (c *Client) take(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.limiter.Take()
	return ctx.Err()
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// OperationID looks up the operation of a handle. found is false while the sequencer has not assigned one.
func (c *Client) OperationID(ctx context.Context, handle model.CorrelationHandle) (model.OperationID, bool, error) {
	q := url.Values{}
	q.Set("caller", handle.Caller)
	q.Set("shardsKey", handle.ShardsKey)

	var resp envelope[string]
	err := c.do(ctx, http.MethodGet, "/operation-id", q, nil, &resp)
	if errors.Is(err, errNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if resp.Response == "" {
		return "", false, nil
	}
	return model.OperationID(resp.Response), true, nil
}

// OperationIDs looks up many handles in one request. Handles without an operation are absent from the result.
func (c *Client) OperationIDs(ctx context.Context, handles []model.CorrelationHandle) (map[model.CorrelationKey]model.OperationID, error) {
	req := operationIDsRequest{Handles: make([]handleDTO, 0, len(handles))}
	for _, h := range handles {
		req.Handles = append(req.Handles, handleDTO{Caller: h.Caller, ShardsKey: h.ShardsKey, ShardCount: h.ShardCount})
	}

	var resp envelope[[]operationIDItem]
	err := c.do(ctx, http.MethodPost, "/operation-ids-by-shards-keys", nil, req, &resp)
	if errors.Is(err, errNotFound) {
		return map[model.CorrelationKey]model.OperationID{}, nil
	}
	if err != nil {
		return nil, err
	}

	out := make(map[model.CorrelationKey]model.OperationID, len(resp.Response))
	for _, item := range resp.Response {
		if item.OperationID == "" {
			continue
		}
		out[model.CorrelationKey{Caller: item.Caller, ShardsKey: item.ShardsKey}] = model.OperationID(item.OperationID)
	}
	return out, nil
}

// StageHistory returns the stages reported for id. found is false when the service does not know the id.
func (c *Client) StageHistory(ctx context.Context, id model.OperationID) ([]model.ExecutionStage, bool, error) {
	q := url.Values{}
	q.Set("operationId", string(id))

	var resp envelope[stageProfileDTO]
	err := c.do(ctx, http.MethodGet, "/stage-profiling", q, nil, &resp)
	if errors.Is(err, errNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return toStages(resp.Response.Stages), true, nil
}

// StageHistories returns stages for many ids in one request. Unknown ids are absent from the result.
func (c *Client) StageHistories(ctx context.Context, ids []model.OperationID) (map[model.OperationID][]model.ExecutionStage, error) {
	req := stageProfilesRequest{OperationIDs: make([]string, 0, len(ids))}
	for _, id := range ids {
		req.OperationIDs = append(req.OperationIDs, string(id))
	}

	var resp envelope[[]stageProfileDTO]
	err := c.do(ctx, http.MethodPost, "/stage-profilings", nil, req, &resp)
	if errors.Is(err, errNotFound) {
		return map[model.OperationID][]model.ExecutionStage{}, nil
	}
	if err != nil {
		return nil, err
	}

	out := make(map[model.OperationID][]model.ExecutionStage, len(resp.Response))
	for _, p := range resp.Response {
		if p.OperationID == "" {
			continue
		}
		out[model.OperationID(p.OperationID)] = toStages(p.Stages)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.baseURL
	u.Path += path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if err := c.take(ctx); err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
