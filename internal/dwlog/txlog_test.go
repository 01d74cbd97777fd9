package dwlog_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kd2vcb/pico-aprs-beacon/internal/dwlog"
)

func TestAppendCreatesDailyFile(t *testing.T) {
	dir := t.TempDir()
	txLog, err := dwlog.NewTxLog(dir)
	require.NoError(t, err)
	defer txLog.Close()

	when := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	require.NoError(t, txLog.Append(when, "N0CALL-1", 42))

	data, err := os.ReadFile(filepath.Join(dir, "aprs-tx-2026-03-05.csv"))
	require.NoError(t, err)
	require.Contains(t, string(data), "N0CALL-1,42")
}

func TestAppendRotatesOnDayChange(t *testing.T) {
	dir := t.TempDir()
	txLog, err := dwlog.NewTxLog(dir)
	require.NoError(t, err)
	defer txLog.Close()

	day1 := time.Date(2026, 3, 5, 23, 59, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 6, 0, 1, 0, 0, time.UTC)

	require.NoError(t, txLog.Append(day1, "N0CALL-1", 1))
	require.NoError(t, txLog.Append(day2, "N0CALL-1", 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
