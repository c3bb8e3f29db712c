package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrTiersExhausted is returned when every model tier in the chain has
// failed; it wraps the last underlying error text.
var ErrTiersExhausted = errors.New("all model tiers exhausted")

// Chain tries an ordered list of model tiers until one answers. Each tier
// gets a fixed number of attempts with a fixed short delay in between, then
// the chain degrades to the next tier. This is a linear degrade-chain, not
// a general resilience policy: no backoff curve, no jitter.
type Chain struct {
	provider Provider
	tiers    []string
	attempts int
	delay    time.Duration
}

func NewChain(provider Provider, tiers []string, attemptsPerTier int, delay time.Duration) *Chain {
	if attemptsPerTier < 1 {
		attemptsPerTier = 1
	}
	return &Chain{
		provider: provider,
		tiers:    tiers,
		attempts: attemptsPerTier,
		delay:    delay,
	}
}

// WithPrimary returns a chain whose first tier is the given model, keeping
// the rest of the degrade order. Used when a request pins a model.
func (c *Chain) WithPrimary(model string) *Chain {
	if model == "" || (len(c.tiers) > 0 && c.tiers[0] == model) {
		return c
	}
	tiers := append([]string{model}, c.tiers...)
	return &Chain{provider: c.provider, tiers: tiers, attempts: c.attempts, delay: c.delay}
}

// Tiers returns the degrade order.
func (c *Chain) Tiers() []string {
	return c.tiers
}

func (c *Chain) Complete(ctx context.Context, system, user string, opts ...Option) (*Response, error) {
	if len(c.tiers) == 0 {
		return nil, fmt.Errorf("%w: no model tiers configured", ErrTiersExhausted)
	}

	var lastErr error
	for _, model := range c.tiers {
		for attempt := 1; attempt <= c.attempts; attempt++ {
			resp, err := c.provider.Complete(ctx, system, user, append(opts, WithModel(model))...)
			if err == nil {
				return resp, nil
			}
			lastErr = err
			slog.Warn("model call failed", "model", model, "attempt", attempt, "error", err)

			if attempt < c.attempts && c.delay > 0 {
				select {
				case <-ctx.Done():
					return nil, fmt.Errorf("%w: %v", ErrTiersExhausted, ctx.Err())
				case <-time.After(c.delay):
				}
			}
		}
		slog.Warn("model tier exhausted, degrading", "model", model)
	}

	return nil, fmt.Errorf("%w: %v", ErrTiersExhausted, lastErr)
}
