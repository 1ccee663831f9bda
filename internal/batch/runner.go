package batch

import (
	"context"
	"sync"
	"time"

	"codeberg.org/snonux/uccharana/internal/pronounce"
)

// Pronouncer is the per-word lookup the runner drives. Satisfied by
// pronounce.Client.
type Pronouncer interface {
	Pronounce(ctx context.Context, word string) pronounce.WordResult
}

// State represents the runner's processing state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Runner processes word batches sequentially. One outbound request is in
// flight at a time; the next word is not started until the previous one's
// result has been recorded.
type Runner struct {
	client Pronouncer

	mu    sync.Mutex
	state State

	// onProgress, if set, is called after each word with the word's
	// position (1-based), the total count, and the fresh result.
	onProgress func(index, total int, result pronounce.WordResult)
}

// NewRunner creates a batch runner around the given client.
func NewRunner(client Pronouncer) *Runner {
	return &Runner{client: client}
}

// OnProgress registers a callback invoked after every processed word.
func (r *Runner) OnProgress(fn func(index, total int, result pronounce.WordResult)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onProgress = fn
}

// State returns the runner's current state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Run processes all words in order and returns the completed outcome. An
// empty word list is a no-op: the client is never invoked and the runner
// stays Idle. A word's failure is appended as an error result and the
// batch continues with the next word.
func (r *Runner) Run(ctx context.Context, words []string) *Outcome {
	outcome := &Outcome{StartedAt: time.Now()}
	if len(words) == 0 {
		outcome.FinishedAt = outcome.StartedAt
		return outcome
	}

	r.setState(StateRunning)

	for i, word := range words {
		result := r.client.Pronounce(ctx, word)
		outcome.Results = append(outcome.Results, result)

		r.mu.Lock()
		progress := r.onProgress
		r.mu.Unlock()
		if progress != nil {
			progress(i+1, len(words), result)
		}
	}

	outcome.FinishedAt = time.Now()
	r.setState(StateCompleted)
	return outcome
}

func (r *Runner) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}
