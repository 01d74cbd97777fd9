package serialport

import (
	"fmt"

	"github.com/jochenvg/go-udev"
)

// knownVendorIDs lists the USB vendor IDs of common USB-serial GPS pucks
// (Prolific, FTDI, and the Silicon Labs CP210x boards MediaTek/u-blox
// modules are often carried on); any tty enumerated under one of these is
// considered a candidate.
var knownVendorIDs = map[string]bool{
	"067b": true, // Prolific PL2303
	"0403": true, // FTDI
	"10c4": true, // Silicon Labs CP210x
}

// DiscoverGPSDevice enumerates tty devices via udev and returns the first
// one whose USB vendor ID matches a known GPS receiver chipset, letting a
// deployment configure "auto" instead of a fixed /dev/ttyUSBn path that can
// shift across reboots.
func DiscoverGPSDevice() (string, error) {
	u := udev.Udev{}
	enumerate := u.NewEnumerate()

	if err := enumerate.AddMatchSubsystem("tty"); err != nil {
		return "", fmt.Errorf("serialport: udev match subsystem: %w", err)
	}

	devices, err := enumerate.Devices()
	if err != nil {
		return "", fmt.Errorf("serialport: udev enumerate: %w", err)
	}

	for _, dev := range devices {
		vendor := dev.PropertyValue("ID_VENDOR_ID")
		if !knownVendorIDs[vendor] {
			continue
		}
		if node := dev.Devnode(); node != "" {
			return node, nil
		}
	}

	return "", fmt.Errorf("serialport: no GPS-like tty device found")
}
