package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/sukanto-m/smart-log-analyser/internal/config"
)

// Oracle is a synchronous text-generation capability: one prompt in, the
// model's raw output back.
type Oracle interface {
	// Invoke sends prompt to the model and blocks until it answers.
	Invoke(ctx context.Context, prompt string) (string, error)

	// Name identifies the backend and model, e.g. "ollama-cli/llama3.2".
	Name() string
}

// InvocationError reports an oracle that could not be started, exited
// abnormally or answered with a transport-level failure.
type InvocationError struct {
	Backend string
	Model   string
	Err     error
	Stderr  string // process stderr or HTTP body, may be empty
}

func (e *InvocationError) Error() string {
	msg := fmt.Sprintf("%s oracle (model %s) failed: %v", e.Backend, e.Model, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *InvocationError) Unwrap() error { return e.Err }

// New builds the backend named in cfg.
func New(cfg config.Oracle) (Oracle, error) {
	switch cfg.Backend {
	case "", "cli":
		return NewCLI(cfg.Binary, cfg.Model), nil
	case "http":
		return NewHTTP(cfg.URL, cfg.Model), nil
	case "stub":
		return NewStub("Severity: LOW\nStub analysis, no model was consulted."), nil
	default:
		return nil, fmt.Errorf("unknown oracle backend %q", cfg.Backend)
	}
}
