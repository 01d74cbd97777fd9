package crc16_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kd2vcb/pico-aprs-beacon/internal/crc16"
)

func TestChecksumReferenceFrame(t *testing.T) {
	data := []byte{
		0x82, 0xA0, 0xB4, 0x60, 0x60, 0x60, 0xE0,
		0x9C, 0x60, 0x86, 0x82, 0x98, 0x98, 0xE3,
		0x03, 0xF0, 0x2C, 0x41,
	}

	assert.Equal(t, uint16(0x4A76), crc16.Checksum(data))
}

func TestAppendFCSLowByteFirst(t *testing.T) {
	data := []byte{0x00}
	out := crc16.AppendFCS(append([]byte{}, data...))
	assert.Len(t, out, 3)

	crc := crc16.Checksum(data)
	assert.Equal(t, byte(crc&0xFF), out[1])
	assert.Equal(t, byte(crc>>8), out[2])
}
