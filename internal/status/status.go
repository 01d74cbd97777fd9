// Package status tracks the beacon's live state for display: fix
// quality, last transmit time, frames sent, and the most recent error --
// the host equivalent of the reference hardware's memory LCD, per
// original_source/src/display.rs.
package status

import (
	"sync"
	"time"

	"github.com/kd2vcb/pico-aprs-beacon/internal/gpsfix"
)

// Snapshot is an immutable copy of the current status, safe to read
// without holding any lock.
type Snapshot struct {
	FixType    gpsfix.FixType
	LastTxAt   time.Time
	FramesSent uint64
	LastError  string
}

// View accumulates status updates from the scheduler's tasks.
type View struct {
	mu sync.Mutex
	s  Snapshot
}

// NewView returns an empty View.
func NewView() *View {
	return &View{}
}

// SetFixType records the latest fix quality.
func (v *View) SetFixType(t gpsfix.FixType) {
	v.mu.Lock()
	v.s.FixType = t
	v.mu.Unlock()
}

// RecordTx notes that a frame went out at now, bumping the sent counter.
func (v *View) RecordTx(now time.Time) {
	v.mu.Lock()
	v.s.LastTxAt = now
	v.s.FramesSent++
	v.mu.Unlock()
}

// RecordError notes the most recent non-fatal error, or clears it if err
// is nil.
func (v *View) RecordError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err == nil {
		v.s.LastError = ""
		return
	}
	v.s.LastError = err.Error()
}

// Snapshot returns a copy of the current status.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.s
}
