package hdlc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kd2vcb/pico-aprs-beacon/internal/hdlc"
)

func collectBits(t *testing.T, bitsSrc interface {
	Pull() (bool, bool)
}) []bool {
	t.Helper()
	var out []bool
	for {
		bit, ok := bitsSrc.Pull()
		if !ok {
			break
		}
		out = append(out, bit)
	}
	return out
}

func TestBuildOnAirAllZeroPayloadNoStuffing(t *testing.T) {
	frame := []byte{0x00, 0x00, 0x00, 0x00}
	b, err := hdlc.BuildOnAir(frame, 1, 1, hdlc.CapacityBits(len(frame), 1, 1))
	require.NoError(t, err)

	bits := collectBits(t, b)
	require.Len(t, bits, 48)

	// Preamble flag: 0x7E LSB-first = 0,1,1,1,1,1,1,0
	require.Equal(t, []bool{false, true, true, true, true, true, true, false}, bits[0:8])
	// Payload: 32 zero bits, unstuffed.
	for _, bit := range bits[8:40] {
		require.False(t, bit)
	}
	// Trailing flag.
	require.Equal(t, []bool{false, true, true, true, true, true, true, false}, bits[40:48])
}

func TestBuildOnAirStuffsAfterFiveOnes(t *testing.T) {
	frame := []byte{0xFF}
	b, err := hdlc.BuildOnAir(frame, 0, 0, hdlc.CapacityBits(len(frame), 0, 0))
	require.NoError(t, err)

	bits := collectBits(t, b)
	// 8 data bits + 1 stuffed bit = 9.
	require.Len(t, bits, 9)
	require.Equal(t, []bool{true, true, true, true, true, false, true, true, true}, bits)
}

func TestBuildOnAirNoSixConsecutiveOnesInPayload(t *testing.T) {
	frame := make([]byte, 40)
	for i := range frame {
		frame[i] = 0xFF
	}

	b, err := hdlc.BuildOnAir(frame, 2, 2, hdlc.CapacityBits(len(frame), 2, 2))
	require.NoError(t, err)

	bits := collectBits(t, b)
	payload := bits[16 : len(bits)-16]

	run := 0
	for _, bit := range payload {
		if bit {
			run++
			require.LessOrEqual(t, run, 5)
		} else {
			run = 0
		}
	}
}

func TestBuildOnAirDeterministic(t *testing.T) {
	frame := []byte{0x82, 0xA0, 0xB4, 0x60, 0x60, 0x60, 0xE0, 0x03, 0xF0}

	b1, err := hdlc.BuildOnAir(frame, 3, 2, hdlc.CapacityBits(len(frame), 3, 2))
	require.NoError(t, err)
	b2, err := hdlc.BuildOnAir(frame, 3, 2, hdlc.CapacityBits(len(frame), 3, 2))
	require.NoError(t, err)

	bytes1, len1 := b1.Bytes()
	bytes2, len2 := b2.Bytes()
	require.Equal(t, len1, len2)
	require.Equal(t, bytes1, bytes2)
}
