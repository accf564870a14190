package llm

import (
	"context"
	"errors"
	"time"
)

// DefaultTimeout bounds each upstream attempt.
const DefaultTimeout = 30 * time.Second

// Generator wraps a Client with the upstream call policy: a hard per-attempt
// timeout and exactly one retry on transient failure. Provider rate limits
// are never retried. The prompt and completion are held only for the
// duration of the call and are never logged.
type Generator struct {
	client  Client
	timeout time.Duration
}

// NewGenerator creates a Generator around the given client.
func NewGenerator(client Client, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Generator{client: client, timeout: timeout}
}

// Generate issues the upstream call, retrying once on transient failure.
// On failure it always returns a *UpstreamError.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	out, err := g.attempt(ctx, prompt)
	if err == nil {
		return out, nil
	}

	var ue *UpstreamError
	if errors.As(err, &ue) && ue.Transient && ctx.Err() == nil {
		// Retry exactly once, with no backoff beyond the original timeout.
		return g.attempt(ctx, prompt)
	}

	return "", err
}

// attempt runs one bounded upstream call.
func (g *Generator) attempt(ctx context.Context, prompt string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	out, err := g.client.GenerateJSON(attemptCtx, prompt)
	if err == nil {
		return out, nil
	}

	var ue *UpstreamError
	if !errors.As(err, &ue) {
		// A client slipped a raw error through; treat it as connection-class.
		err = &UpstreamError{Transient: true, Err: err}
	}
	return "", err
}
