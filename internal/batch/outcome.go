package batch

import (
	"time"

	"codeberg.org/snonux/uccharana/internal/pronounce"
)

// Outcome is the ordered result sequence of one batch. Counts are always
// recomputed by scanning the results, never cached, so they can not drift
// from the sequence itself.
type Outcome struct {
	Results    []pronounce.WordResult
	StartedAt  time.Time
	FinishedAt time.Time
}

// Total returns the number of processed words.
func (o *Outcome) Total() int {
	return len(o.Results)
}

// SuccessCount returns the number of successful conversions.
func (o *Outcome) SuccessCount() int {
	count := 0
	for _, r := range o.Results {
		if !r.IsError() {
			count++
		}
	}
	return count
}

// FailureCount returns the number of failed conversions.
func (o *Outcome) FailureCount() int {
	count := 0
	for _, r := range o.Results {
		if r.IsError() {
			count++
		}
	}
	return count
}

// Duration returns the wall-clock time the batch took.
func (o *Outcome) Duration() time.Duration {
	return o.FinishedAt.Sub(o.StartedAt)
}
