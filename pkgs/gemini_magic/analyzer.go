// Package gemini_magic implements the language-model backed analysis steps:
// competitor discovery, parameter rating, insight writing and comment sentiment.
package gemini_magic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

type Options struct {
	// Interval is the minimum spacing between model calls; zero disables pacing.
	Interval   time.Duration
	MaxRetries int
	RetryDelay time.Duration
	// ChunkSize is the number of comments per sentiment request.
	ChunkSize int
}

type Analyzer struct {
	gen        TextGenerator
	limiter    *rate.Limiter
	maxRetries int
	retryDelay time.Duration
	chunkSize  int
	logger     *slog.Logger
}

func NewAnalyzer(gen TextGenerator, opts Options, logger *slog.Logger) *Analyzer {
	limit := rate.Inf
	if opts.Interval > 0 {
		limit = rate.Every(opts.Interval)
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 100
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		gen:        gen,
		limiter:    rate.NewLimiter(limit, 1),
		maxRetries: opts.MaxRetries,
		retryDelay: opts.RetryDelay,
		chunkSize:  opts.ChunkSize,
		logger:     logger,
	}
}

// generate calls the model once, honouring the shared rate limit.
func (a *Analyzer) generate(ctx context.Context, prompt string) (string, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait error: %w", err)
	}
	text, err := a.gen.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// generateWithRetry retries transport errors, empty responses and responses
// rejected by accept.
func (a *Analyzer) generateWithRetry(ctx context.Context, task, prompt string, accept func(string) error) error {
	var lastErr error
	for attempt := 1; attempt <= a.maxRetries; attempt++ {
		a.logger.Debug("Calling Gemini", "task", task, "attempt", attempt, "maxRetries", a.maxRetries)
		text, err := a.generate(ctx, prompt)
		if err == nil {
			if err = accept(text); err == nil {
				return nil
			}
		}
		lastErr = err
		if ctx.Err() != nil {
			return ctx.Err()
		}

		a.logger.Warn("Gemini attempt failed", "task", task, "attempt", attempt, "error", err)
		if attempt < a.maxRetries && a.retryDelay > 0 {
			select {
			case <-time.After(a.retryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return fmt.Errorf("%s failed after %d attempts: %w", task, a.maxRetries, lastErr)
}

func (a *Analyzer) generateJSON(ctx context.Context, task, prompt string, out any) error {
	return a.generateWithRetry(ctx, task, prompt, func(text string) error {
		return decodeJSON(text, out)
	})
}

// decodeJSON extracts the first JSON object or array in raw and decodes it.
// Models often wrap JSON in prose or code fences, or trail it with commas.
func decodeJSON(raw string, out any) error {
	start := strings.IndexAny(raw, "{[")
	if start == -1 {
		return fmt.Errorf("could not find valid JSON in response: %s", raw)
	}
	closer := "}"
	if raw[start] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(raw, closer)
	if end < start {
		return fmt.Errorf("could not find valid JSON in response: %s", raw)
	}

	decoder := json.NewDecoder(strings.NewReader(raw[start : end+1]))
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("cleaned JSON is not valid: %w. Raw JSON string: %s", err, raw[start:end+1])
	}
	return nil
}
