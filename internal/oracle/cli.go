package oracle

import (
	"bytes"
	"context"
	"os/exec"
)

// CLI runs the ollama command line client once per prompt:
//
//	ollama run <model> <prompt>
//
// and returns its standard output untouched.
type CLI struct {
	binary string
	model  string
}

// NewCLI returns a CLI oracle. Empty arguments fall back to "ollama" and
// "llama3.2".
func NewCLI(binary, model string) *CLI {
	if binary == "" {
		binary = "ollama"
	}
	if model == "" {
		model = "llama3.2"
	}
	return &CLI{binary: binary, model: model}
}

func (c *CLI) Invoke(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, "run", c.model, prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &InvocationError{
			Backend: "ollama-cli",
			Model:   c.model,
			Err:     err,
			Stderr:  stderr.String(),
		}
	}
	return stdout.String(), nil
}

func (c *CLI) Name() string {
	return "ollama-cli/" + c.model
}
