// Package serialport opens the GPS receiver's UART and feeds raw bytes
// into a gpsfix.Queue, standing in for the firmware's UART RX interrupt
// handler.
package serialport

import (
	"fmt"

	"github.com/pkg/term"

	"github.com/kd2vcb/pico-aprs-beacon/internal/gpsfix"
)

// mtkSetSentences is sent once on bring-up to select the vendor's NMEA
// sentence output (RMC, VTG and GGA on every fix; GLL, GSA, GSV and all
// others off).
const mtkSetSentences = "$PMTK314,0,1,1,1,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0*29\r\n"

// Port wraps a termios-configured serial device and a background reader
// goroutine that drains it byte-by-byte into a Queue.
type Port struct {
	fd   *term.Term
	stop chan struct{}
	done chan struct{}
}

// Open opens device at baud 8N1 raw mode, sends the MTK sentence-select
// command once, and starts a goroutine pushing every received byte into
// queue until Close is called.
func Open(device string, baud int, queue *gpsfix.Queue) (*Port, error) {
	fd, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("serialport: open %s: %w", device, err)
	}
	if err := fd.SetSpeed(baud); err != nil {
		_ = fd.Close()
		return nil, fmt.Errorf("serialport: set speed %d on %s: %w", baud, device, err)
	}

	if _, err := fd.Write([]byte(mtkSetSentences)); err != nil {
		_ = fd.Close()
		return nil, fmt.Errorf("serialport: write sentence-select command: %w", err)
	}

	p := &Port{fd: fd, stop: make(chan struct{}), done: make(chan struct{})}
	go p.readLoop(queue)
	return p, nil
}

func (p *Port) readLoop(queue *gpsfix.Queue) {
	defer close(p.done)

	buf := make([]byte, 1)
	for {
		select {
		case <-p.stop:
			return
		default:
		}

		n, err := p.fd.Read(buf)
		if err != nil {
			return
		}
		if n == 1 {
			queue.Push(buf[0])
		}
	}
}

// Close stops the reader goroutine and closes the underlying device.
func (p *Port) Close() error {
	close(p.stop)
	<-p.done
	if err := p.fd.Close(); err != nil {
		return fmt.Errorf("serialport: close: %w", err)
	}
	return nil
}
