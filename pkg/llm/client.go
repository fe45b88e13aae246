package llm

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const (
	DefaultMaxTokens = 4096

	maxAttempts     = 3
	initialInterval = time.Second
	maxInterval     = 10 * time.Second
	multiplier      = 2
)

// Client wraps a Completer with the prompt, output validation and the
// rate-limit retry policy.
type Client struct {
	completer Completer
	maxTokens int
	log       *zap.Logger
	timer     backoff.Timer
}

type Option func(*Client)

func WithMaxTokens(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxTokens = n
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithTimer replaces the wall-clock timer used between attempts.
func WithTimer(t backoff.Timer) Option {
	return func(c *Client) { c.timer = t }
}

func NewClient(completer Completer, opts ...Option) *Client {
	c := &Client{
		completer: completer,
		maxTokens: DefaultMaxTokens,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Named("llm")
	return c
}

func newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialInterval
	b.MaxInterval = maxInterval
	b.Multiplier = multiplier
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, maxAttempts-1), ctx)
}

// Generate asks the model to answer userMessage from contextText. Only
// rate-limit failures are retried; everything else is returned at once.
func (c *Client) Generate(ctx context.Context, userMessage, contextText string) (Answer, error) {
	req := Request{
		System:    SystemPrompt(contextText),
		User:      userMessage,
		MaxTokens: c.maxTokens,
	}

	var ans Answer
	attempt := 0
	op := func() error {
		attempt++
		c.log.Debug("requesting completion",
			zap.String("backend", c.completer.Name()),
			zap.Int("attempt", attempt),
			zap.Int("context_len", len(contextText)))

		content, err := c.completer.Complete(ctx, req)
		if err != nil {
			if IsRetryable(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		if content == "" {
			c.log.Warn("empty completion, returning apology", zap.String("backend", c.completer.Name()))
		}
		parsed, err := ParseAnswer(content)
		if err != nil {
			return backoff.Permanent(err)
		}
		ans = parsed
		return nil
	}
	notify := func(err error, next time.Duration) {
		c.log.Warn("rate limited, retrying",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Duration("delay", next))
	}

	if err := backoff.RetryNotifyWithTimer(op, newBackOff(ctx), notify, c.timer); err != nil {
		var le *Error
		if !errors.As(err, &le) {
			err = upstream(err)
		}
		c.log.Error("completion failed", zap.Error(err), zap.Int("attempts", attempt))
		return Answer{}, err
	}
	return ans, nil
}
