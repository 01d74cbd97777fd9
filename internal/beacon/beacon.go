// Package beacon assembles and schedules outgoing APRS position reports
// from the latest GPS fix.
package beacon

import (
	"github.com/kd2vcb/pico-aprs-beacon/internal/aprs"
	"github.com/kd2vcb/pico-aprs-beacon/internal/ax25"
	"github.com/kd2vcb/pico-aprs-beacon/internal/bitstream"
	"github.com/kd2vcb/pico-aprs-beacon/internal/hdlc"
)

// Positioner is the subset of gpsfix.Fix the beacon task depends on.
type Positioner interface {
	Latitude() (float64, bool)
	Longitude() (float64, bool)
	HasFix() bool
}

// Enqueuer is the subset of the modulator's tx queue the beacon task
// feeds: a bounded FIFO of on-air bitstreams.
type Enqueuer interface {
	PushBack(bits *bitstream.Buffer) bool
}

// Task periodically builds a position report from the latest fix and
// queues it for transmission, implementing sched.Tickable.
type Task struct {
	dest, src   ax25.AddressField
	digipeaters []ax25.AddressField
	template    aprs.PositionReport

	fix   Positioner
	queue Enqueuer

	preambleFlags, trailingFlags int
	periodMillis                 int64

	next int64

	onSent func(frameLen int)
}

// defaultPeriodMillis is the reference firmware's beacon cadence, used
// unless SetPeriod overrides it.
const defaultPeriodMillis = 30 * 60 * 1_000

// SetOnSent registers a callback invoked with the length of the built AX.25
// frame (addresses through FCS) whenever Tick successfully enqueues it. Intended for status/logging
// observers; nil (the default) disables it.
func (t *Task) SetOnSent(fn func(frameLen int)) {
	t.onSent = fn
}

// SetPeriod overrides the reschedule interval used after a successful
// transmission, in seconds.
func (t *Task) SetPeriod(seconds int) {
	t.periodMillis = int64(seconds) * 1_000
}

// NewTask builds a Task that beacons dest/src/digipeaters with the given
// symbol/comment template, reading position from fix and enqueuing
// on-air frames onto queue.
func NewTask(dest, src ax25.AddressField, digipeaters []ax25.AddressField, template aprs.PositionReport, fix Positioner, queue Enqueuer, preambleFlags, trailingFlags int) *Task {
	return &Task{
		dest:          dest,
		src:           src,
		digipeaters:   digipeaters,
		template:      template,
		fix:           fix,
		queue:         queue,
		preambleFlags: preambleFlags,
		trailingFlags: trailingFlags,
		periodMillis:  defaultPeriodMillis,
	}
}

// NextRunAt implements sched.Tickable.
func (t *Task) NextRunAt() int64 { return t.next }

// Tick implements sched.Tickable. It reschedules 5s later with no fix, 1s
// later when latitude or longitude is missing, the frame cannot be built
// or the queue is full, and one period later (SetPeriod, default 30
// minutes) after a frame is enqueued.
func (t *Task) Tick(now int64) {
	if !t.fix.HasFix() {
		t.next = now + 5_000
		return
	}

	lat, latOK := t.fix.Latitude()
	lon, lonOK := t.fix.Longitude()
	if !latOK || !lonOK {
		t.next = now + 1_000
		return
	}

	report := t.template
	report.Latitude = aprs.FromFloat(lat)
	report.Longitude = aprs.FromFloat(lon)

	frame, err := aprs.BuildPositionFrame(t.dest, t.src, t.digipeaters, report)
	if err != nil {
		t.next = now + 1_000
		return
	}

	capBits := hdlc.CapacityBits(len(frame), t.preambleFlags, t.trailingFlags)
	onAir, err := hdlc.BuildOnAir(frame, t.preambleFlags, t.trailingFlags, capBits)
	if err != nil {
		t.next = now + 1_000
		return
	}

	if !t.queue.PushBack(onAir) {
		t.next = now + 1_000
		return
	}

	if t.onSent != nil {
		t.onSent(len(frame))
	}
	t.next = now + t.periodMillis
}
