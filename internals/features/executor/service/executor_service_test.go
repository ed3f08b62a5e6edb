// file: internals/features/executor/service/executor_service_test.go
package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "labrecord_backend/internals/features/executor/dto"
)

func TestRunForwardsResultVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/run", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"stdout":"hello\n","stderr":"","exit_code":0}`))
	}))
	defer srv.Close()

	s := NewExecutorService(srv.URL, "secret")
	out, err := s.Run(context.Background(), dto.RunRequest{Code: `print("hello")`, Language: "python"})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out.Stdout)
	assert.Equal(t, 0, out.ExitCode)
}

func TestRunCompileFailurePassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"stdout":"","stderr":"","compile_error":"main.c:3: expected ';'","exit_code":1}`))
	}))
	defer srv.Close()

	s := NewExecutorService(srv.URL, "")
	out, err := s.Run(context.Background(), dto.RunRequest{Code: "int main(){}", Language: "c"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.ExitCode)
	assert.Contains(t, out.CompileError, "expected ';'")
}

func TestRunUpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "runner overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := NewExecutorService(srv.URL, "")
	_, err := s.Run(context.Background(), dto.RunRequest{Code: "x", Language: "python"})
	require.Error(t, err)

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusServiceUnavailable, ue.Status)
	assert.Contains(t, ue.Reason, "runner overloaded")
}

func TestRunUpstreamUnreachable(t *testing.T) {
	s := NewExecutorService("http://127.0.0.1:1", "")
	s.Client.Timeout = 500 * time.Millisecond

	_, err := s.Run(context.Background(), dto.RunRequest{Code: "x", Language: "python"})
	require.Error(t, err)

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Zero(t, ue.Status)
}

func TestRunMalformedRunnerResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	s := NewExecutorService(srv.URL, "")
	_, err := s.Run(context.Background(), dto.RunRequest{Code: "x", Language: "python"})

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "malformed runner response", ue.Reason)
}
