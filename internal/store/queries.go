package store

import (
	"database/sql"
	"fmt"
)

// SaveRun inserts a run and its steps in one transaction and returns the
// new run ID.
func (s *Store) SaveRun(run InstallRun) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO install_runs (started_at, finished_at, outcome) VALUES (?, ?, ?)",
		run.StartedAt, run.FinishedAt, run.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	for i, step := range run.Steps {
		if _, err := tx.Exec(
			"INSERT INTO install_steps (run_id, position, step, status, message) VALUES (?, ?, ?, ?, ?)",
			id, i, step.Step, step.Status, step.Message,
		); err != nil {
			return 0, fmt.Errorf("insert step %q: %w", step.Step, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit run: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first, steps included.
// limit <= 0 means no limit.
func (s *Store) ListRuns(limit int) ([]InstallRun, error) {
	query := "SELECT id, started_at, finished_at, outcome FROM install_runs ORDER BY started_at DESC, id DESC"
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []InstallRun
	for rows.Next() {
		var run InstallRun
		if err := rows.Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &run.Outcome); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	for i := range runs {
		steps, err := s.runSteps(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Steps = steps
	}
	return runs, nil
}

func (s *Store) runSteps(runID int64) ([]StepRecord, error) {
	rows, err := s.db.Query(
		"SELECT step, status, message FROM install_steps WHERE run_id = ? ORDER BY position",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query steps for run %d: %w", runID, err)
	}
	defer rows.Close()

	var steps []StepRecord
	for rows.Next() {
		var step StepRecord
		var message sql.NullString
		if err := rows.Scan(&step.Step, &step.Status, &message); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		step.Message = message.String
		steps = append(steps, step)
	}
	return steps, rows.Err()
}
