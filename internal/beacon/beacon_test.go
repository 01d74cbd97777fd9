package beacon_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kd2vcb/pico-aprs-beacon/internal/aprs"
	"github.com/kd2vcb/pico-aprs-beacon/internal/ax25"
	"github.com/kd2vcb/pico-aprs-beacon/internal/beacon"
)

type fakeFix struct {
	hasFix   bool
	lat, lon float64
	latOK    bool
	lonOK    bool
}

func (f *fakeFix) HasFix() bool               { return f.hasFix }
func (f *fakeFix) Latitude() (float64, bool)  { return f.lat, f.latOK }
func (f *fakeFix) Longitude() (float64, bool) { return f.lon, f.lonOK }

func newTask(fix *fakeFix, queue *beacon.TxQueue) *beacon.Task {
	dest, _ := ax25.NewAddress("APZ", 0)
	src, _ := ax25.NewAddress("N0CALL", 1)
	digi, _ := ax25.NewAddress("WIDE1", 1)
	template := aprs.PositionReport{SymbolTable: '/', SymbolCode: 'b'}
	return beacon.NewTask(dest, src, []ax25.AddressField{digi}, template, fix, queue, 20, 2)
}

func TestTaskNoFixReschedulesIn5Seconds(t *testing.T) {
	fix := &fakeFix{hasFix: false}
	queue := beacon.NewTxQueue(2)
	task := newTask(fix, queue)

	task.Tick(1000)
	require.Equal(t, int64(6000), task.NextRunAt())
	require.True(t, queue.Empty())
}

func TestTaskPartialFixReschedulesIn1Second(t *testing.T) {
	fix := &fakeFix{hasFix: true, latOK: false}
	queue := beacon.NewTxQueue(2)
	task := newTask(fix, queue)

	task.Tick(1000)
	require.Equal(t, int64(2000), task.NextRunAt())
}

func TestTaskQueueFullReschedulesIn1Second(t *testing.T) {
	fix := &fakeFix{hasFix: true, latOK: true, lonOK: true, lat: 49, lon: -72}
	queue := beacon.NewTxQueue(0)
	task := newTask(fix, queue)

	task.Tick(1000)
	require.Equal(t, int64(2000), task.NextRunAt())
}

func TestTaskSuccessEnqueuesAndReschedulesIn30Minutes(t *testing.T) {
	fix := &fakeFix{hasFix: true, latOK: true, lonOK: true, lat: 49.0583, lon: -72.0292}
	queue := beacon.NewTxQueue(2)
	task := newTask(fix, queue)

	task.Tick(1000)
	require.Equal(t, int64(1000+30*60*1000), task.NextRunAt())
	require.False(t, queue.Empty())
}
