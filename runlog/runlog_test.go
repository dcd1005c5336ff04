package runlog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runlog.db")
	l, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestRecordInsertsOneRowPerIteration(t *testing.T) {
	l := openTestLog(t)
	runID := uuid.New()

	require.NoError(t, l.Record(runID, 0, 0.5, false, true, 10*time.Millisecond))
	require.NoError(t, l.Record(runID, 1, 0.25, true, true, 12*time.Millisecond))

	var count int
	require.NoError(t, l.db.QueryRow(`SELECT COUNT(*) FROM iterations WHERE run_id = ?`, runID.String()).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestRecordStoresAuditOutcome(t *testing.T) {
	l := openTestLog(t)
	runID := uuid.New()
	require.NoError(t, l.Record(runID, 50, 0.1, true, false, 5*time.Millisecond))

	var auditRan, auditPassed int
	err := l.db.QueryRow(`SELECT audit_ran, audit_passed FROM iterations WHERE run_id = ? AND iteration = 50`, runID.String()).
		Scan(&auditRan, &auditPassed)
	require.NoError(t, err)
	assert.Equal(t, 1, auditRan)
	assert.Equal(t, 0, auditPassed)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runlog.db")
	l1, err := Open(path)
	require.NoError(t, err)
	l1.Close()

	l2, err := Open(path)
	require.NoError(t, err)
	defer l2.Close()

	var name string
	err = l2.db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'iterations'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "iterations", name)
}
