package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sukanto-m/smart-log-analyser/internal/config"
)

// fakeBinary writes an executable shell script standing in for ollama.
func fakeBinary(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script oracle needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "ollama")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

func TestCLIInvokePassesModelAndPrompt(t *testing.T) {
	bin := fakeBinary(t, `printf '%s|%s|%s' "$1" "$2" "$3"`)
	o := NewCLI(bin, "llama3.2")

	out, err := o.Invoke(context.Background(), "explain ERROR disk full")
	require.NoError(t, err)
	assert.Equal(t, "run|llama3.2|explain ERROR disk full", out)
	assert.Equal(t, "ollama-cli/llama3.2", o.Name())
}

func TestCLIInvokeKeepsOutputVerbatim(t *testing.T) {
	bin := fakeBinary(t, `printf '  \n\nSeverity: HIGH\n\n'`)

	out, err := NewCLI(bin, "").Invoke(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "  \n\nSeverity: HIGH\n\n", out)
}

func TestCLIInvokeEmptyOutputIsNotAnError(t *testing.T) {
	bin := fakeBinary(t, "exit 0\n")

	out, err := NewCLI(bin, "").Invoke(context.Background(), "p")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCLIInvokeNonZeroExit(t *testing.T) {
	bin := fakeBinary(t, "echo 'model not found' >&2\nexit 3\n")

	_, err := NewCLI(bin, "nope").Invoke(context.Background(), "p")
	require.Error(t, err)

	var invErr *InvocationError
	require.True(t, errors.As(err, &invErr))
	assert.Equal(t, "nope", invErr.Model)
	assert.Contains(t, invErr.Stderr, "model not found")
	assert.Contains(t, err.Error(), "model not found")
}

func TestCLIInvokeMissingBinary(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := NewCLI(missing, "").Invoke(context.Background(), "p")

	var invErr *InvocationError
	require.True(t, errors.As(err, &invErr), "expected *InvocationError, got %T", err)
}

func TestHTTPInvoke(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(generateResponse{Model: got.Model, Response: "CRITICAL: the node is gone", Done: true})
	}))
	defer srv.Close()

	o := NewHTTP(srv.URL+"/", "mistral")
	out, err := o.Invoke(context.Background(), "explain")
	require.NoError(t, err)

	assert.Equal(t, "CRITICAL: the node is gone", out)
	assert.Equal(t, "mistral", got.Model)
	assert.Equal(t, "explain", got.Prompt)
	assert.False(t, got.Stream)
}

func TestHTTPInvokeBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model 'x' not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTP(srv.URL, "x").Invoke(context.Background(), "p")

	var invErr *InvocationError
	require.True(t, errors.As(err, &invErr))
	assert.Contains(t, invErr.Stderr, "not found")
}

func TestHTTPInvokeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTP(url, "").Invoke(context.Background(), "p")

	var invErr *InvocationError
	assert.True(t, errors.As(err, &invErr))
}

func TestWithTimeout(t *testing.T) {
	slow := &Stub{Respond: func(_ int, _ string) (string, error) { return "ok", nil }}
	assert.Same(t, Oracle(slow), WithTimeout(slow, 0))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	o := WithTimeout(NewHTTP(srv.URL, ""), 50*time.Millisecond)
	_, err := o.Invoke(context.Background(), "p")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "expected deadline error, got %v", err)
}

func TestStubRecordsPrompts(t *testing.T) {
	s := NewStub("fine")

	out, err := s.Invoke(context.Background(), "one")
	require.NoError(t, err)
	_, _ = s.Invoke(context.Background(), "two")

	assert.Equal(t, "fine", out)
	assert.Equal(t, []string{"one", "two"}, s.Prompts())
	assert.Equal(t, 2, s.Calls())
}

func TestNewSelectsBackend(t *testing.T) {
	o, err := New(config.Oracle{Backend: "cli", Model: "llama3.2"})
	require.NoError(t, err)
	assert.IsType(t, &CLI{}, o)

	o, err = New(config.Oracle{Backend: "http", URL: "http://localhost:11434"})
	require.NoError(t, err)
	assert.IsType(t, &HTTP{}, o)

	o, err = New(config.Oracle{Backend: "stub"})
	require.NoError(t, err)
	assert.IsType(t, &Stub{}, o)

	_, err = New(config.Oracle{Backend: "gpt"})
	assert.Error(t, err)
}
