package store

const schema = `
CREATE TABLE IF NOT EXISTS install_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at TIMESTAMP NOT NULL,
    finished_at TIMESTAMP NOT NULL,
    outcome TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS install_steps (
    run_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    step TEXT NOT NULL,
    status TEXT NOT NULL,
    message TEXT,
    PRIMARY KEY (run_id, position),
    FOREIGN KEY (run_id) REFERENCES install_runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_steps_run ON install_steps(run_id);
CREATE INDEX IF NOT EXISTS idx_runs_started ON install_runs(started_at);
`
