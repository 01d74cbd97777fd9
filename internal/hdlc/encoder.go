// Package hdlc turns a packed AX.25 frame into the on-air bitstream: flag
// preambles, bit-stuffed payload, and trailing flags. NRZI encoding is
// the modulator's job, not this layer's -- this layer only produces the
// NRZ bit sequence a modulator will later NRZI-encode.
package hdlc

import "github.com/kd2vcb/pico-aprs-beacon/internal/bitstream"

const (
	flagOctet = 0x7E

	// DefaultPreambleFlags is the recommended number of leading flag
	// octets (~133 ms at 1200 bps) to let a radio's PTT/squelch settle.
	DefaultPreambleFlags = 20

	// DefaultTrailingFlags is the recommended number of trailing flag
	// octets that close a frame.
	DefaultTrailingFlags = 2
)

// pushFlag writes one unstuffed 0x7E octet, LSB-first.
func pushFlag(b *bitstream.Buffer) error {
	for i := 0; i < 8; i++ {
		if err := b.Push(flagOctet&(1<<i) != 0); err != nil {
			return err
		}
	}
	return nil
}

// CapacityBits returns a safe bit-capacity for BuildOnAir given a frame of
// frameLen bytes and the requested flag counts: worst-case bit-stuffing
// adds one stuffed bit per five payload bits (20% overhead).
func CapacityBits(frameLen, preambleFlags, trailingFlags int) int {
	payloadBits := frameLen * 8
	worstCaseStuffed := payloadBits + payloadBits/5 + 1
	return (preambleFlags+trailingFlags)*8 + worstCaseStuffed
}

// BuildOnAir encodes frame (one complete AX.25 frame, address through FCS)
// into a Bitstream: preambleFlags leading 0x7E octets, the frame's bits
// bit-stuffed (a 0 inserted after every run of five consecutive 1 bits,
// the stuff counter reset at each flag), then trailingFlags closing 0x7E
// octets. The result is deterministic: the same frame bytes always
// produce the same bitstream.
func BuildOnAir(frame []byte, preambleFlags, trailingFlags int, capBits int) (*bitstream.Buffer, error) {
	b := bitstream.New(capBits)

	for i := 0; i < preambleFlags; i++ {
		if err := pushFlag(b); err != nil {
			return nil, err
		}
	}

	var ones int
	for _, byteVal := range frame {
		for i := 0; i < 8; i++ {
			bit := byteVal&(1<<i) != 0

			if err := b.Push(bit); err != nil {
				return nil, err
			}

			if bit {
				ones++
				if ones == 5 {
					if err := b.Push(false); err != nil {
						return nil, err
					}
					ones = 0
				}
			} else {
				ones = 0
			}
		}
	}

	for i := 0; i < trailingFlags; i++ {
		if err := pushFlag(b); err != nil {
			return nil, err
		}
	}

	b.Finish()

	return b, nil
}
