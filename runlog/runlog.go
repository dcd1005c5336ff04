// Package runlog persists per-iteration coordinator telemetry — run
// id, iteration, change-ratio, audit outcome, duration — to a SQLite
// database via modernc.org/sqlite, the pure-Go driver carried by the
// retrieval pack. This is telemetry only: spec.md's non-goals exclude
// fitted-model persistence, and runlog never stores TW or book state.
package runlog

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/ncruces/go-strftime"
	"github.com/pkg/errors"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS iterations (
	run_id       TEXT    NOT NULL,
	iteration    INTEGER NOT NULL,
	change_ratio REAL    NOT NULL,
	audit_ran    INTEGER NOT NULL,
	audit_passed INTEGER NOT NULL,
	duration_ms  INTEGER NOT NULL,
	recorded_at  TEXT    NOT NULL,
	PRIMARY KEY (run_id, iteration)
);
`

// Log records iteration telemetry into a SQLite database. A Log
// satisfies coordinator.Telemetry.
type Log struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at path and ensures its
// schema exists.
func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "runlog: opening database")
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "runlog: creating schema")
	}
	return &Log{db: db}, nil
}

// Close releases the underlying database handle.
func (l *Log) Close() error {
	return l.db.Close()
}

// Record implements coordinator.Telemetry, inserting one row per
// iteration. The timestamp is formatted with go-strftime for a
// human-sortable column (`%Y-%m-%d %H:%M:%S`) rather than
// database/sql's driver-specific default.
func (l *Log) Record(runID uuid.UUID, iteration int, changeRatio float64, auditRan, auditPassed bool, duration time.Duration) error {
	recordedAt := strftime.Format("%Y-%m-%d %H:%M:%S", time.Now())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := l.db.ExecContext(ctx,
		`INSERT INTO iterations (run_id, iteration, change_ratio, audit_ran, audit_passed, duration_ms, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID.String(), iteration, changeRatio, boolToInt(auditRan), boolToInt(auditPassed), duration.Milliseconds(), recordedAt)
	if err != nil {
		return errors.Wrapf(err, "runlog: recording iteration %d", iteration)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
