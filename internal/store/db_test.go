package store

import (
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRun(start time.Time, outcome string) InstallRun {
	return InstallRun{
		StartedAt:  start,
		FinishedAt: start.Add(3 * time.Second),
		Outcome:    outcome,
		Steps: []StepRecord{
			{Step: "Python runtime", Status: "ok", Message: "python 3.11"},
			{Step: "Stats module", Status: "warn", Message: "unavailable"},
			{Step: "Required files", Status: "ok"},
		},
	}
}

func TestSaveAndListRuns(t *testing.T) {
	s := testStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	first, err := s.SaveRun(sampleRun(base, OutcomeCompleted))
	if err != nil {
		t.Fatalf("SaveRun() error: %v", err)
	}
	second, err := s.SaveRun(sampleRun(base.Add(time.Hour), OutcomeFatal))
	if err != nil {
		t.Fatalf("SaveRun() error: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct run IDs")
	}

	runs, err := s.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns() error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns() returned %d runs, want 2", len(runs))
	}

	// Newest first.
	if runs[0].Outcome != OutcomeFatal || runs[1].Outcome != OutcomeCompleted {
		t.Errorf("runs out of order: %v then %v", runs[0].Outcome, runs[1].Outcome)
	}

	steps := runs[0].Steps
	if len(steps) != 3 {
		t.Fatalf("run has %d steps, want 3", len(steps))
	}
	if steps[0].Step != "Python runtime" || steps[0].Status != "ok" {
		t.Errorf("unexpected first step: %+v", steps[0])
	}
	if steps[1].Status != "warn" || steps[1].Message != "unavailable" {
		t.Errorf("unexpected second step: %+v", steps[1])
	}
}

func TestListRunsLimit(t *testing.T) {
	s := testStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if _, err := s.SaveRun(sampleRun(base.Add(time.Duration(i)*time.Minute), OutcomeCompleted)); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := s.ListRuns(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("ListRuns(2) returned %d runs", len(runs))
	}
}

func TestEmptyStore(t *testing.T) {
	s := testStore(t)
	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("fresh store has %d runs", len(runs))
	}
}
