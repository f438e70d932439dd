package store

import "time"

// Run outcomes.
const (
	OutcomeCompleted = "completed" // finished, possibly with warnings
	OutcomeFatal     = "fatal"     // halted on a fatal condition
)

// InstallRun is one recorded installer invocation.
type InstallRun struct {
	ID         int64
	StartedAt  time.Time
	FinishedAt time.Time
	Outcome    string
	Steps      []StepRecord
}

// StepRecord is one step result inside a run, in execution order.
type StepRecord struct {
	Step    string
	Status  string // "ok", "warn", or "fail"
	Message string
}
