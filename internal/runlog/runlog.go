// Package runlog keeps a SQLite ledger of unwrap runs made by the
// command-line tool.
package runlog

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrNotFound indicates an unknown run ID.
var ErrNotFound = errors.New("runlog: run not found")

// Run is one recorded unwrap.
type Run struct {
	ID          string  `db:"id"`
	Strategy    string  `db:"strategy"`
	Source      string  `db:"source"`
	Shape       string  `db:"shape"`
	Samples     int     `db:"samples"`
	Residues    int     `db:"residues"`
	Iterations  int     `db:"iterations"`
	Epsilon     float64 `db:"epsilon"`
	MinPhase    float64 `db:"min_phase"`
	MaxPhase    float64 `db:"max_phase"`
	DurationNS  int64   `db:"duration_ns"`
	CreatedNano int64   `db:"created_ns"` // Unix nanoseconds
}

// Duration returns the recorded wall time of the run.
func (r Run) Duration() time.Duration { return time.Duration(r.DurationNS) }

// Created returns the time the run was recorded.
func (r Run) Created() time.Time { return time.Unix(0, r.CreatedNano) }

// Ledger wraps a SQLite connection holding the runs table.
type Ledger struct {
	conn *sqlx.DB
}

// Open opens or creates the ledger at path.
func Open(path string) (*Ledger, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	l := &Ledger{conn: conn}
	if err := l.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return l, nil
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	return l.conn.Close()
}

func (l *Ledger) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		strategy TEXT NOT NULL,
		source TEXT NOT NULL,
		shape TEXT NOT NULL,
		samples INTEGER NOT NULL,
		residues INTEGER NOT NULL,
		iterations INTEGER NOT NULL,
		epsilon REAL NOT NULL,
		min_phase REAL NOT NULL,
		max_phase REAL NOT NULL,
		duration_ns INTEGER NOT NULL,
		created_ns INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_ns);
	CREATE INDEX IF NOT EXISTS idx_runs_strategy ON runs(strategy);
	`
	_, err := l.conn.Exec(schema)
	return err
}

// Record stores r and returns it with ID and CreatedNano filled in when
// they were empty.
func (l *Ledger) Record(r Run) (Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedNano == 0 {
		r.CreatedNano = time.Now().UnixNano()
	}
	_, err := l.conn.NamedExec(`INSERT INTO runs
		(id, strategy, source, shape, samples, residues, iterations, epsilon,
		 min_phase, max_phase, duration_ns, created_ns)
		VALUES (:id, :strategy, :source, :shape, :samples, :residues, :iterations, :epsilon,
		 :min_phase, :max_phase, :duration_ns, :created_ns)`, r)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}

	return r, nil
}

// Get returns the run with the given ID, or ErrNotFound.
func (l *Ledger) Get(id string) (Run, error) {
	var r Run
	err := l.conn.Get(&r, "SELECT * FROM runs WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r, err
}

// Recent returns up to limit runs, newest first. Optional strategy filters
// by strategy name when non-empty.
func (l *Ledger) Recent(limit int, strategy string) ([]Run, error) {
	var runs []Run
	var err error
	if strategy == "" {
		err = l.conn.Select(&runs,
			"SELECT * FROM runs ORDER BY created_ns DESC, rowid DESC LIMIT ?",
			limit,
		)
	} else {
		err = l.conn.Select(&runs,
			"SELECT * FROM runs WHERE strategy = ? ORDER BY created_ns DESC, rowid DESC LIMIT ?",
			strategy, limit,
		)
	}
	return runs, err
}

// Count returns the number of recorded runs.
func (l *Ledger) Count() (int, error) {
	var n int
	err := l.conn.Get(&n, "SELECT COUNT(*) FROM runs")
	return n, err
}
