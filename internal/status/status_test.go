package status_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kd2vcb/pico-aprs-beacon/internal/gpsfix"
	"github.com/kd2vcb/pico-aprs-beacon/internal/status"
)

func TestViewAccumulatesUpdates(t *testing.T) {
	v := status.NewView()
	v.SetFixType(gpsfix.Fix3D)

	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	v.RecordTx(now)
	v.RecordTx(now.Add(time.Minute))
	v.RecordError(errors.New("boom"))

	snap := v.Snapshot()
	require.Equal(t, gpsfix.Fix3D, snap.FixType)
	require.Equal(t, uint64(2), snap.FramesSent)
	require.Equal(t, now.Add(time.Minute), snap.LastTxAt)
	require.Equal(t, "boom", snap.LastError)
}

func TestRecordErrorNilClears(t *testing.T) {
	v := status.NewView()
	v.RecordError(errors.New("boom"))
	v.RecordError(nil)
	require.Empty(t, v.Snapshot().LastError)
}
