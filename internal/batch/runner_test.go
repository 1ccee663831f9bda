package batch

import (
	"context"
	"reflect"
	"testing"

	"codeberg.org/snonux/uccharana/internal/pronounce"
	"codeberg.org/snonux/uccharana/internal/testutil"
)

func TestRunner_EmptyInput(t *testing.T) {
	mock := &testutil.MockPronouncer{}
	runner := NewRunner(mock)

	outcome := runner.Run(context.Background(), nil)

	if outcome.Total() != 0 {
		t.Errorf("Total() = %d, want 0", outcome.Total())
	}
	if len(mock.Calls) != 0 {
		t.Errorf("client invoked %d times for empty input, want 0", len(mock.Calls))
	}
	if runner.State() != StateIdle {
		t.Errorf("State() = %v, want Idle", runner.State())
	}
}

func TestRunner_OrderPreserved(t *testing.T) {
	mock := &testutil.MockPronouncer{}
	runner := NewRunner(mock)
	words := []string{"water", "computer", "toilet"}

	outcome := runner.Run(context.Background(), words)

	if outcome.Total() != len(words) {
		t.Fatalf("Total() = %d, want %d", outcome.Total(), len(words))
	}
	for i, word := range words {
		if outcome.Results[i].Word != word {
			t.Errorf("Results[%d].Word = %q, want %q", i, outcome.Results[i].Word, word)
		}
	}
	if !reflect.DeepEqual(mock.Calls, words) {
		t.Errorf("client calls = %v, want %v", mock.Calls, words)
	}
}

func TestRunner_FailureDoesNotAbortBatch(t *testing.T) {
	mock := &testutil.MockPronouncer{
		Results: map[string]pronounce.WordResult{
			"badword": testutil.SampleFailure("badword"),
		},
	}
	runner := NewRunner(mock)

	outcome := runner.Run(context.Background(), []string{"toilet", "badword", "water"})

	if outcome.Total() != 3 {
		t.Fatalf("Total() = %d, want 3", outcome.Total())
	}
	if outcome.SuccessCount() != 2 {
		t.Errorf("SuccessCount() = %d, want 2", outcome.SuccessCount())
	}
	if outcome.FailureCount() != 1 {
		t.Errorf("FailureCount() = %d, want 1", outcome.FailureCount())
	}
	// The word after the failure was still processed.
	if mock.Calls[2] != "water" {
		t.Errorf("third call = %q, want %q", mock.Calls[2], "water")
	}
	if !outcome.Results[1].IsError() {
		t.Error("failed word not recorded as error")
	}
}

func TestRunner_TimeoutForOneWordIsolated(t *testing.T) {
	mock := &testutil.MockPronouncer{
		Results: map[string]pronounce.WordResult{
			"slow": {
				Word:  "slow",
				Error: "Request timeout",
				Kind:  pronounce.KindTimeoutError,
			},
		},
	}
	runner := NewRunner(mock)

	outcome := runner.Run(context.Background(), []string{"slow", "toilet"})

	timeouts := 0
	for _, r := range outcome.Results {
		if r.Kind == pronounce.KindTimeoutError {
			timeouts++
		}
	}
	if timeouts != 1 {
		t.Errorf("timeout entries = %d, want exactly 1", timeouts)
	}
	if outcome.Results[1].IsError() {
		t.Error("word after timeout was not processed successfully")
	}
}

func TestRunner_CountsAlwaysAddUp(t *testing.T) {
	mock := &testutil.MockPronouncer{
		Results: map[string]pronounce.WordResult{
			"a": testutil.SampleFailure("a"),
			"c": testutil.SampleFailure("c"),
		},
	}
	runner := NewRunner(mock)

	outcome := runner.Run(context.Background(), []string{"a", "b", "c", "d", "e"})

	if got := outcome.SuccessCount() + outcome.FailureCount(); got != outcome.Total() {
		t.Errorf("SuccessCount+FailureCount = %d, want Total = %d", got, outcome.Total())
	}
}

func TestRunner_StateTransitions(t *testing.T) {
	mock := &testutil.MockPronouncer{}
	runner := NewRunner(mock)

	if runner.State() != StateIdle {
		t.Errorf("initial State() = %v, want Idle", runner.State())
	}

	var stateDuringRun State
	runner.OnProgress(func(index, total int, result pronounce.WordResult) {
		stateDuringRun = runner.State()
	})

	runner.Run(context.Background(), []string{"toilet"})

	if stateDuringRun != StateRunning {
		t.Errorf("state during run = %v, want Running", stateDuringRun)
	}
	if runner.State() != StateCompleted {
		t.Errorf("final State() = %v, want Completed", runner.State())
	}
}

func TestRunner_ProgressCallback(t *testing.T) {
	mock := &testutil.MockPronouncer{}
	runner := NewRunner(mock)

	var indexes []int
	var totals []int
	runner.OnProgress(func(index, total int, result pronounce.WordResult) {
		indexes = append(indexes, index)
		totals = append(totals, total)
	})

	runner.Run(context.Background(), []string{"toilet", "computer"})

	if !reflect.DeepEqual(indexes, []int{1, 2}) {
		t.Errorf("progress indexes = %v, want [1 2]", indexes)
	}
	if !reflect.DeepEqual(totals, []int{2, 2}) {
		t.Errorf("progress totals = %v, want [2 2]", totals)
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "Idle"},
		{StateRunning, "Running"},
		{StateCompleted, "Completed"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
