// file: internals/features/executor/service/executor_service.go
package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	dto "labrecord_backend/internals/features/executor/dto"
)

// UpstreamError wraps any failure of the remote runner: network errors,
// timeouts, and non-2xx replies. Handlers map it to 502 without retrying.
type UpstreamError struct {
	Status int    // upstream HTTP status, 0 when the call never completed
	Reason string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("executor upstream: status %d: %s", e.Status, e.Reason)
	}
	return "executor upstream: " + e.Reason
}

// ExecutorService is a stateless pass-through to the remote execution API.
// Untrusted code never runs in this process.
type ExecutorService struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewExecutorService(baseURL, apiKey string) *ExecutorService {
	return &ExecutorService{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Run forwards one execution request and returns the runner's result
// verbatim. One attempt only; the caller owns the deadline via ctx.
func (s *ExecutorService) Run(ctx context.Context, req dto.RunRequest) (*dto.RunResult, error) {
	payload, err := sonic.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/run", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.APIKey != "" {
		httpReq.Header.Set("X-Api-Key", s.APIKey)
	}

	resp, err := s.Client.Do(httpReq)
	if err != nil {
		return nil, &UpstreamError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &UpstreamError{Status: resp.StatusCode, Reason: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode, Reason: string(body)}
	}

	var out dto.RunResult
	if err := sonic.Unmarshal(body, &out); err != nil {
		return nil, &UpstreamError{Status: resp.StatusCode, Reason: "malformed runner response"}
	}
	return &out, nil
}
