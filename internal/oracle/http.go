package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTP talks to a running ollama server through its generate endpoint.
type HTTP struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewHTTP returns an HTTP oracle for baseURL, defaulting to the local
// ollama port.
func NewHTTP(baseURL, model string) *HTTP {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3.2"
	}
	return &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{},
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Model     string `json:"model"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
	EvalCount int    `json:"eval_count,omitempty"`
}

func (h *HTTP) Invoke(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: h.model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", h.fail(fmt.Errorf("marshal request: %w", err), "")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", h.fail(fmt.Errorf("create request: %w", err), "")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return "", h.fail(err, "")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", h.fail(fmt.Errorf("unexpected status %s", resp.Status), string(raw))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", h.fail(fmt.Errorf("decode response: %w", err), "")
	}
	return out.Response, nil
}

func (h *HTTP) Name() string {
	return "ollama-http/" + h.model
}

func (h *HTTP) fail(err error, detail string) error {
	return &InvocationError{Backend: "ollama-http", Model: h.model, Err: err, Stderr: detail}
}
