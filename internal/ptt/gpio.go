package ptt

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// line is the subset of *gpiocdev.Line that GPIO exercises, narrowed so
// tests can substitute a fake.
type line interface {
	SetValue(value int) error
	Close() error
}

// GPIO keys PTT through a single gpiod line, active-low by convention on
// the reference hardware (a transistor pulls the rig's PTT input to
// ground when the line is driven low).
type GPIO struct {
	line line
}

// NewGPIO requests chipName/offset as an output line, initially released.
func NewGPIO(chipName string, offset int) (*GPIO, error) {
	l, err := gpiocdev.RequestLine(chipName, offset,
		gpiocdev.AsOutput(1),
		gpiocdev.WithConsumer("pico-aprs-beacon"),
	)
	if err != nil {
		return nil, fmt.Errorf("ptt: request gpio line %s:%d: %w", chipName, offset, err)
	}
	return &GPIO{line: l}, nil
}

// Key drives the line low (0) to assert PTT, high (1) to release it.
func (g *GPIO) Key(active bool) error {
	value := 1
	if active {
		value = 0
	}
	if err := g.line.SetValue(value); err != nil {
		return fmt.Errorf("ptt: set gpio value: %w", err)
	}
	return nil
}

func (g *GPIO) Close() error {
	if err := g.line.SetValue(1); err != nil {
		_ = g.line.Close()
		return fmt.Errorf("ptt: release gpio on close: %w", err)
	}
	return g.line.Close()
}
