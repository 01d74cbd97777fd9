package aprs

import "fmt"

// Coordinate is a signed latitude or longitude expressed in microdegrees.
// Sign carries hemisphere; the magnitude is not bounds-checked here (the
// caller is responsible, per spec).
type Coordinate struct {
	Microdegrees int32
}

// FromFloat scales a fractional-degree value by 1,000,000 and truncates
// toward zero. This is plain fixed-point encoding, not a geodesic
// computation, so it's bare float64 arithmetic rather than routed through
// a geodesy type.
func FromFloat(degrees float64) Coordinate {
	return Coordinate{Microdegrees: int32(degrees * 1_000_000)}
}

// deg, minutes and hundredths decompose the coordinate's magnitude per
// spec.md §4.3.
func (c Coordinate) deg() int32 {
	return absInt32(c.Microdegrees) / 1_000_000
}

func (c Coordinate) minutes() int32 {
	frac := absInt32(c.Microdegrees) % 1_000_000
	return frac * 60 / 1_000_000
}

func (c Coordinate) hundredths() int32 {
	frac := absInt32(c.Microdegrees) % 1_000_000
	return int32((int64(frac) * 6000 / 1_000_000) % 100)
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// AppendAPRS writes the fixed-width ASCII representation of the
// coordinate -- "DDMM.hh" for a latitude, "DDDMM.hh" for a longitude --
// followed by its hemisphere letter, to dst.
func (c Coordinate) AppendAPRS(dst []byte, lat bool) []byte {
	deg, min, hundredths := c.deg(), c.minutes(), c.hundredths()

	if lat {
		dst = fmt.Appendf(dst, "%02d%02d.%02d", deg, min, hundredths)
	} else {
		dst = fmt.Appendf(dst, "%03d%02d.%02d", deg, min, hundredths)
	}

	return append(dst, c.hemisphere(lat))
}

func (c Coordinate) hemisphere(lat bool) byte {
	positive := c.Microdegrees >= 0
	switch {
	case lat && positive:
		return 'N'
	case lat && !positive:
		return 'S'
	case !lat && positive:
		return 'E'
	default:
		return 'W'
	}
}
