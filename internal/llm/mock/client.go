// Package mock provides a recording Generator for tests.
package mock

import (
	"context"
	"time"

	"github.com/jonathan/copygate/internal/llm"
)

// Call records one Generate invocation.
type Call struct {
	System string
	User   string
}

// Client is a scriptable Generator. Responses and Errors are consumed in
// order across calls; when exhausted, the last entry repeats.
type Client struct {
	Responses []string
	Errors    []error
	Delay     time.Duration

	CallCount int
	Calls     []Call
}

// New returns a mock client with a single canned response.
func New(response string) *Client {
	return &Client{Responses: []string{response}}
}

// WithResponses scripts a sequence of responses, one per call.
func (c *Client) WithResponses(responses ...string) *Client {
	c.Responses = responses
	return c
}

// WithErrors scripts a sequence of errors, one per call. A nil entry means
// the corresponding call succeeds.
func (c *Client) WithErrors(errs ...error) *Client {
	c.Errors = errs
	return c
}

// WithDelay makes every call wait before responding, honoring ctx cancellation.
func (c *Client) WithDelay(delay time.Duration) *Client {
	c.Delay = delay
	return c
}

// Generate returns the scripted response or error for this call.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	idx := c.CallCount
	c.CallCount++
	c.Calls = append(c.Calls, Call{System: system, User: user})

	if c.Delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.Delay):
		}
	}

	if err := pick(c.Errors, idx); err != nil {
		return "", err
	}
	if len(c.Responses) == 0 {
		return "", nil
	}
	return pick(c.Responses, idx), nil
}

// pick returns the idx-th element, clamping to the last one.
func pick[T any](items []T, idx int) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	if idx >= len(items) {
		idx = len(items) - 1
	}
	return items[idx]
}

var _ llm.Generator = (*Client)(nil)
