// Package ptt keys a transmitter's push-to-talk line, either through a
// discrete GPIO or through a rig's CAT control interface.
package ptt

// Keyer asserts or releases PTT. Key is called from the audio driver's
// buffer-complete handler, so implementations must be safe to call
// rapidly and must not block for long.
type Keyer interface {
	Key(active bool) error
	Close() error
}

// Null is a Keyer that does nothing, useful for bench testing without a
// radio attached.
type Null struct{}

func (Null) Key(active bool) error { return nil }
func (Null) Close() error          { return nil }
