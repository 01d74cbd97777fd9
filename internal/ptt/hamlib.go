package ptt

import (
	"fmt"

	"github.com/xylo04/goHamlib"
)

// Hamlib keys PTT through a rig's CAT interface rather than a discrete
// GPIO line, for stations where the radio's control port also carries
// PTT (common on USB-CAT rigs with no separate PTT wiring to the Pico).
type Hamlib struct {
	rig *goHamlib.Rig
}

// NewHamlib opens modelID on device at the given baud rate (e.g. a
// Kenwood or Yaesu CAT model number and its serial port).
func NewHamlib(modelID int, device string, baud int) (*Hamlib, error) {
	rig := goHamlib.NewRig(modelID)
	rig.SetConf("rig_pathname", device)
	rig.SetConf("serial_speed", fmt.Sprintf("%d", baud))

	if err := rig.Open(); err != nil {
		return nil, fmt.Errorf("ptt: open hamlib rig model %d on %s: %w", modelID, device, err)
	}

	return &Hamlib{rig: rig}, nil
}

func (h *Hamlib) Key(active bool) error {
	mode := goHamlib.RigPttOff
	if active {
		mode = goHamlib.RigPttOn
	}
	if err := h.rig.SetPtt(goHamlib.VfoCurr, mode); err != nil {
		return fmt.Errorf("ptt: hamlib set_ptt: %w", err)
	}
	return nil
}

func (h *Hamlib) Close() error {
	_ = h.rig.SetPtt(goHamlib.VfoCurr, goHamlib.RigPttOff)
	return h.rig.Close()
}
