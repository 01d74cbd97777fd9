package ax25

import (
	"errors"

	"github.com/kd2vcb/pico-aprs-beacon/internal/crc16"
)

const (
	// MaxDigipeaters is the maximum number of digipeater address fields
	// allowed in a transmitted AX.25 frame.
	MaxDigipeaters = 8

	// MaxInfoLen is the maximum length of the AX.25 information field.
	MaxInfoLen = 256

	// MaxFrameLen is the maximum total length of a built UI frame,
	// including addresses, control, PID, info and FCS.
	MaxFrameLen = 330

	controlUI = 0x03
	pidNoL3   = 0xF0
)

// ErrFrameTooLong is returned by BuildUIFrame when info exceeds MaxInfoLen
// or more than MaxDigipeaters addresses are supplied.
var ErrFrameTooLong = errors.New("ax25: frame too long")

// BuildUIFrame assembles dest, src, an optional digipeater path (0-8
// addresses) and an information field (<=256 bytes) into a packed AX.25
// UI frame: addresses, control byte 0x03, PID 0xF0, info, then a 2-byte
// little-endian CRC-16/X.25 FCS. The end-of-address bit is set only on
// the final address in the stack (the last digipeater, or src if there
// are none).
func BuildUIFrame(dest, src AddressField, digipeaters []AddressField, info []byte) ([]byte, error) {
	if len(digipeaters) > MaxDigipeaters {
		return nil, ErrFrameTooLong
	}
	if len(info) > MaxInfoLen {
		return nil, ErrFrameTooLong
	}

	frame := make([]byte, 0, MaxFrameLen)

	destRaw := dest.raw7(false)
	frame = append(frame, destRaw[:]...)

	srcRaw := src.raw7(len(digipeaters) == 0)
	frame = append(frame, srcRaw[:]...)

	for i, digi := range digipeaters {
		last := i == len(digipeaters)-1
		digiRaw := digi.raw7(last)
		frame = append(frame, digiRaw[:]...)
	}

	frame = append(frame, controlUI, pidNoL3)
	frame = append(frame, info...)

	frame = crc16.AppendFCS(frame)

	if len(frame) > MaxFrameLen {
		return nil, ErrFrameTooLong
	}

	return frame, nil
}
