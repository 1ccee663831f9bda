package pronounce

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/uccharana/internal/httpclient"
	"codeberg.org/snonux/uccharana/internal/logging"
)

// Client fetches the pronunciation of single words through a completion
// provider. Endpoint calls are guarded by a circuit breaker so a dead
// endpoint stops burning the 30 second timeout on every remaining word of
// a batch. Errors never escape as Go errors: every failure is folded into
// an error WordResult so batch processing can continue.
type Client struct {
	provider Provider
	logger   *logging.Logger
	breaker  *gobreaker.CircuitBreaker
	timeout  time.Duration
}

// parsedResult is the JSON shape the model is instructed to return.
type parsedResult struct {
	Word                string `json:"word"`
	Pronunciation       string `json:"pronunciation"`
	PronunciationTelugu string `json:"pronunciation_telugu"`
}

// NewClient creates a pronunciation client around the given provider.
func NewClient(provider Provider, logger *logging.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "completion-endpoint",
		Timeout: 60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			// Any classified RequestError means the endpoint answered,
			// so its health is known. A non-2xx status such as a rate
			// limit returns immediately and must keep yielding per-word
			// API error results rather than tripping the breaker. Only
			// transport-level failures (timeouts, refused connections)
			// count against it.
			var reqErr *RequestError
			return errors.As(err, &reqErr)
		},
	})

	return &Client{
		provider: provider,
		logger:   logger,
		breaker:  breaker,
		timeout:  httpclient.DefaultTimeout,
	}
}

// Pronounce looks up one word. The returned WordResult is a success entry
// or one of the four error kinds; it is never both.
func (c *Client) Pronounce(ctx context.Context, word string) WordResult {
	c.logger.Info("processing word", "word", word, "provider", c.provider.Name())

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.provider.Complete(ctx, BuildPrompt(word))
	})
	elapsed := time.Since(start).Round(time.Millisecond)

	if err != nil {
		return c.errorOutcome(word, err, elapsed)
	}

	raw := out.(string)
	cleaned := cleanOutput(raw)

	var parsed parsedResult
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		c.logger.Error("failed to parse model output", "word", word, "elapsed", elapsed, "raw_output", raw)
		return errorResult(word, KindParseError, "Failed to parse JSON from LLM output", raw)
	}
	// Missing fields and wrong shapes count as parse failures too; the
	// model was instructed to always return both fields.
	if parsed.Pronunciation == "" || parsed.PronunciationTelugu == "" {
		c.logger.Error("model output missing pronunciation fields", "word", word, "elapsed", elapsed, "raw_output", raw)
		return errorResult(word, KindParseError, "Failed to parse JSON from LLM output", raw)
	}

	c.logger.Info("successful conversion", "word", word, "elapsed", elapsed)
	return successResult(word, parsed.Pronunciation, parsed.PronunciationTelugu)
}

// errorOutcome classifies an endpoint error into a WordResult and logs it.
func (c *Client) errorOutcome(word string, err error, elapsed time.Duration) WordResult {
	var reqErr *RequestError

	switch {
	case errors.As(err, &reqErr):
		switch reqErr.Kind {
		case KindAPIError:
			c.logger.Error("API request failed", "word", word, "elapsed", elapsed,
				"status", reqErr.StatusCode, "details", reqErr.Body)
			return errorResult(word, KindAPIError, reqErr.Error(), reqErr.Body)
		default:
			c.logger.Error("failed to parse model output", "word", word, "elapsed", elapsed,
				"details", reqErr.Body)
			return errorResult(word, KindParseError, "Failed to parse JSON from LLM output", reqErr.Body)
		}

	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		c.logger.Error("endpoint circuit breaker open", "word", word, "elapsed", elapsed)
		return errorResult(word, KindConnectionError, "Connection error", err.Error())

	case isTimeout(err):
		c.logger.Error("request timeout", "word", word, "elapsed", elapsed)
		return errorResult(word, KindTimeoutError, "Request timeout", "")

	default:
		c.logger.Error("connection error", "word", word, "elapsed", elapsed, "err", err)
		return errorResult(word, KindConnectionError, "Connection error", err.Error())
	}
}

// cleanOutput strips whitespace and stray markdown fences from the model
// output before parsing, mirroring what the endpoint occasionally emits
// despite the prompt forbidding it.
func cleanOutput(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.Trim(cleaned, "`")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimPrefix(cleaned, "json")
	return strings.TrimSpace(cleaned)
}
