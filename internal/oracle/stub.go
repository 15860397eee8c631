package oracle

import (
	"context"
	"sync"
)

// Stub is a fake oracle for tests and dry runs. It answers with a fixed
// text, or with whatever Respond returns when set, and keeps every prompt.
type Stub struct {
	Response string
	Respond  func(call int, prompt string) (string, error)

	mu      sync.Mutex
	prompts []string
}

// NewStub returns a Stub that always answers response.
func NewStub(response string) *Stub {
	return &Stub{Response: response}
}

func (s *Stub) Invoke(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	call := len(s.prompts)
	s.mu.Unlock()

	if s.Respond != nil {
		return s.Respond(call, prompt)
	}
	return s.Response, nil
}

func (s *Stub) Name() string { return "stub" }

// Prompts returns a copy of every prompt received, in call order.
func (s *Stub) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.prompts))
	copy(out, s.prompts)
	return out
}

// Calls returns how many times Invoke ran.
func (s *Stub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}
