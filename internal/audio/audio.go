// Package audio drives a double-buffered (ping/pong) audio output, the
// host stand-in for the reference hardware's DMA-driven I2S playback.
// A portaudio callback plays the role of the DMA-complete interrupt: it
// claims whichever buffer was most recently filled, gates PTT around it,
// and flips the ping/pong parity for the next fill.
package audio

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/kd2vcb/pico-aprs-beacon/internal/ptt"
)

const (
	// SampleRate matches the reference hardware's I2S clock.
	SampleRate = 8000

	// BufLen is the number of stereo sample words per ping/pong buffer.
	BufLen = 256
)

// Sample is one stereo-interleaved sample word: a 16-bit value duplicated
// into both halves, matching the modulator's sine-table word format.
type Sample = uint32

// Out is a portaudio-backed double-buffered sink satisfying modem.Sink.
type Out struct {
	mu      sync.Mutex
	ping    [BufLen]Sample
	pong    [BufLen]Sample
	usePing bool
	busy    bool

	keyer  ptt.Keyer
	stream *portaudio.Stream
}

// NewOut opens the default output device at SampleRate and starts a
// silent stream; the first filled buffer is delivered on the next
// callback invocation after a caller calls QueueFilled.
func NewOut(keyer ptt.Keyer) (*Out, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("audio: portaudio init: %w", err)
	}

	o := &Out{usePing: true, keyer: keyer}

	stream, err := portaudio.OpenDefaultStream(0, 2, float64(SampleRate), BufLen, o.callback)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("audio: open default stream: %w", err)
	}

	if err := stream.Start(); err != nil {
		_ = stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("audio: start stream: %w", err)
	}

	o.stream = stream
	return o, nil
}

// callback is portaudio's render callout, standing in for DMA_IRQ_0: it
// hands off whichever buffer was queued (keying PTT for its duration) or
// silence (releasing PTT), then flips ping/pong parity for the next fill.
func (o *Out) callback(out []int16) {
	o.mu.Lock()
	wasBusy := o.busy
	o.busy = false
	active := &o.pong
	if o.usePing {
		active = &o.ping
	}
	o.usePing = !o.usePing
	o.mu.Unlock()

	if wasBusy {
		_ = o.keyer.Key(true)
		for i, s := range active {
			out[2*i] = int16(s >> 16)
			out[2*i+1] = int16(s & 0xFFFF)
		}
		return
	}

	_ = o.keyer.Key(false)
	for i := range out {
		out[i] = 0
	}
}

// FreeBuffer returns the inactive buffer for the caller to fill in place.
func (o *Out) FreeBuffer() []Sample {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.usePing {
		return o.ping[:]
	}
	return o.pong[:]
}

// QueueFilled marks the buffer returned by the most recent FreeBuffer
// call ready for the next callback to play.
func (o *Out) QueueFilled() {
	o.mu.Lock()
	o.busy = true
	o.mu.Unlock()
}

// IsBusy reports whether a filled buffer is still awaiting pickup.
func (o *Out) IsBusy() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.busy
}

// Close stops playback and releases the portaudio stream.
func (o *Out) Close() error {
	err := o.stream.Close()
	portaudio.Terminate()
	if err != nil {
		return fmt.Errorf("audio: close stream: %w", err)
	}
	return nil
}
