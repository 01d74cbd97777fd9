package modem

const (
	sampleRate = 8000

	phaseFrac = 1 << 16
	oneQ16    = 1 << 16

	// bitsPerSampleQ16 is how many Q16.16 "bits" of a 1200 baud bit-clock
	// elapse per audio sample.
	bitsPerSampleQ16 = uint32((1200 << 16) / sampleRate)
)

func phaseStep(freqHz uint32) uint32 {
	return uint32((uint64(freqHz) * uint64(tableSize) * uint64(phaseFrac)) / uint64(sampleRate))
}

var (
	stepMark  = phaseStep(1200)
	stepSpace = phaseStep(2200)
)

// Tone is the AFSK tone currently being synthesized.
type Tone int

const (
	ToneMark Tone = iota
	ToneSpace
)

// Bits is a source of NRZ payload bits, satisfied by *bitstream.Buffer.
type Bits interface {
	Pull() (bit bool, ok bool)
}

// Queue hands the modulator the next queued on-air frame.
type Queue interface {
	PopFront() (Bits, bool)
	Empty() bool
}

// Sink is the audio output the modulator fills: a double-buffered DMA-style
// driver (or a fake, in tests).
type Sink interface {
	FreeBuffer() []uint32
	QueueFilled()
	IsBusy() bool
}

// Modulator is a Bell-202 AFSK direct-digital-synthesis transmitter: a
// phase accumulator driven by a 1200-baud bit clock and NRZI line coding,
// fed one queued frame at a time from a Queue and rendered into a Sink.
//
// Once a frame is available it transmits to completion, including the
// blocking wait for the sink's free buffer -- mirroring the firmware's
// transmit_blocking, which intentionally hogs the CPU for the duration of
// a transmission rather than time-slicing with other tasks.
type Modulator struct {
	phase    uint32
	bitAccum uint32
	nrzi     bool
	tone     Tone

	src   Bits
	queue Queue
	sink  Sink

	nextRun int64

	// spin is called while waiting for the sink to free a buffer. A nil
	// spin passed to NewModulator (as cmd/aprsbeacon does) becomes a no-op,
	// making the wait a pure busy poll; tests pass a counter.
	spin func()
}

// NewModulator builds a Modulator that pulls frames from queue and renders
// samples into sink.
func NewModulator(queue Queue, sink Sink, spin func()) *Modulator {
	if spin == nil {
		spin = func() {}
	}
	return &Modulator{queue: queue, sink: sink, spin: spin}
}

// NextRunAt implements sched.Tickable.
func (m *Modulator) NextRunAt() int64 { return m.nextRun }

// Tick implements sched.Tickable: if a frame is in progress or queued, it
// transmits to completion and reschedules almost immediately; otherwise it
// goes quiet for 100ms.
func (m *Modulator) Tick(now int64) {
	if m.src != nil || !m.queue.Empty() {
		m.transmitBlocking()
		m.nextRun = now + 1
		return
	}
	m.nextRun = now + 100
}

func (m *Modulator) loadNext() bool {
	if m.src == nil {
		if next, ok := m.queue.PopFront(); ok {
			m.src = next
		}
	}
	return m.src != nil
}

func (m *Modulator) transmitBlocking() {
	if !m.loadNext() {
		return
	}

	for {
		for m.sink.IsBusy() {
			m.spin()
		}

		stillActive := m.fillOneBuffer()
		if !stillActive {
			if !m.loadNext() {
				return
			}
		}
	}
}

// fillOneBuffer renders one sink buffer's worth of samples and reports
// whether a frame is still active at the end of the buffer (false once the
// current source is exhausted and MARK silence takes over).
func (m *Modulator) fillOneBuffer() bool {
	buf := m.sink.FreeBuffer()
	if buf == nil {
		return true
	}

	txActive := m.src != nil

	for i := range buf {
		m.bitAccum += bitsPerSampleQ16

		if m.bitAccum >= oneQ16 {
			m.bitAccum -= oneQ16

			switch {
			case m.src != nil:
				if bit, ok := m.src.Pull(); ok {
					if !bit {
						m.nrzi = !m.nrzi
					}
				} else {
					m.src = nil
					m.nrzi = false
					txActive = false
				}
			default:
				m.nrzi = false
			}

			if m.nrzi {
				m.tone = ToneSpace
			} else {
				m.tone = ToneMark
			}
		}

		step := stepMark
		if m.tone == ToneSpace {
			step = stepSpace
		}
		m.phase += step

		idx := (m.phase >> 16) & (tableSize - 1)
		buf[i] = sineTable[idx]
	}

	m.sink.QueueFilled()
	return txActive
}
