package aprs

import "github.com/kd2vcb/pico-aprs-beacon/internal/ax25"

// BuildPositionFrame encodes report as an APRS info field and wraps it in
// an AX.25 UI frame addressed from src to dest via the given digipeater
// path (e.g. a single "WIDE1-1" hop).
func BuildPositionFrame(dest, src ax25.AddressField, digipeaters []ax25.AddressField, report PositionReport) ([]byte, error) {
	info, err := report.EncodeInfo()
	if err != nil {
		return nil, err
	}

	return ax25.BuildUIFrame(dest, src, digipeaters, info)
}
