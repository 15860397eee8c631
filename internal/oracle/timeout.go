package oracle

import (
	"context"
	"time"
)

type timeoutOracle struct {
	next    Oracle
	timeout time.Duration
}

// WithTimeout bounds every call to o by d. A zero or negative d returns o
// unchanged, which keeps calls unbounded.
func WithTimeout(o Oracle, d time.Duration) Oracle {
	if d <= 0 {
		return o
	}
	return &timeoutOracle{next: o, timeout: d}
}

func (t *timeoutOracle) Invoke(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Invoke(ctx, prompt)
}

func (t *timeoutOracle) Name() string { return t.next.Name() }
