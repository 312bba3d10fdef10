package command_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/torosent/scyllastress/internal/command"
)

func TestValidateDuration(t *testing.T) {
	for _, token := range []string{"10s", "5m", "1h", "600s"} {
		if err := command.ValidateDuration(token); err != nil {
			t.Fatalf("expected %q to validate, got %v", token, err)
		}
	}
	for _, token := range []string{"10", "s10", "10x", "", "10ss", "1.5m", "m"} {
		err := command.ValidateDuration(token)
		if !errors.Is(err, command.ErrInvalidDuration) {
			t.Fatalf("expected ErrInvalidDuration for %q, got %v", token, err)
		}
	}
}

func TestBuildRepeatedInvocations(t *testing.T) {
	b := command.NewBuilder("some-scylla", "172.17.0.2", 10)
	invocations, err := b.Build(command.Batch{Count: 3, Duration: "10s"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(invocations) != 3 {
		t.Fatalf("expected 3 invocations, got %d", len(invocations))
	}
	want := "docker exec some-scylla cassandra-stress write duration=10s -rate threads=10 -node 172.17.0.2"
	for i, inv := range invocations {
		if inv != want {
			t.Fatalf("invocation %d: expected %q, got %q", i, want, inv)
		}
	}
}

func TestBuildDistinctDurations(t *testing.T) {
	b := command.NewBuilder("some-scylla", "172.17.0.2", 10)
	invocations, err := b.Build(command.Batch{Durations: []string{"10s", "20s"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(invocations) != 2 {
		t.Fatalf("expected 2 invocations, got %d", len(invocations))
	}
	if !strings.Contains(invocations[0], "duration=10s") {
		t.Fatalf("expected first invocation to carry 10s, got %q", invocations[0])
	}
	if !strings.Contains(invocations[1], "duration=20s") {
		t.Fatalf("expected second invocation to carry 20s, got %q", invocations[1])
	}
}

// One bad token aborts the whole batch before any invocation is built.
func TestBuildRejectsBadDurationInList(t *testing.T) {
	b := command.NewBuilder("c", "10.0.0.1", 10)
	invocations, err := b.Build(command.Batch{Durations: []string{"10s", "20x", "30s"}})
	if !errors.Is(err, command.ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
	if invocations != nil {
		t.Fatalf("expected no partial command list, got %v", invocations)
	}
}

func TestBuildRejectsNonPositiveCount(t *testing.T) {
	b := command.NewBuilder("c", "10.0.0.1", 10)
	if _, err := b.Build(command.Batch{Count: -1, Duration: "10s"}); !errors.Is(err, command.ErrInvalidRunCount) {
		t.Fatalf("expected ErrInvalidRunCount, got %v", err)
	}
}

func TestBuildRejectsAmbiguousBatch(t *testing.T) {
	b := command.NewBuilder("c", "10.0.0.1", 10)
	if _, err := b.Build(command.Batch{}); !errors.Is(err, command.ErrBatchSpec) {
		t.Fatalf("expected ErrBatchSpec for empty batch, got %v", err)
	}
	if _, err := b.Build(command.Batch{Count: 2, Duration: "10s", Durations: []string{"20s"}}); !errors.Is(err, command.ErrBatchSpec) {
		t.Fatalf("expected ErrBatchSpec for both forms, got %v", err)
	}
}

func TestExpandedDurations(t *testing.T) {
	batch := command.Batch{Count: 3, Duration: "10s"}
	got := batch.ExpandedDurations()
	if len(got) != 3 || got[0] != "10s" || got[2] != "10s" {
		t.Fatalf("expected three 10s tokens, got %v", got)
	}

	batch = command.Batch{Durations: []string{"10s", "20s"}}
	got = batch.ExpandedDurations()
	if len(got) != 2 || got[1] != "20s" {
		t.Fatalf("expected the listed durations, got %v", got)
	}
}
