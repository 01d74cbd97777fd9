package aprs

import (
	"errors"
	"fmt"
)

// MaxCommentLen is the maximum length, in bytes, of a position report's
// optional comment.
const MaxCommentLen = 43

// ErrCommentTooLong is returned when a comment exceeds MaxCommentLen.
var ErrCommentTooLong = errors.New("aprs: comment too long")

// TimestampKind selects which of the three APRS timestamp encodings a
// Timestamp carries.
type TimestampKind int

const (
	// TimestampNone means the position report carries no timestamp.
	TimestampNone TimestampKind = iota
	// TimestampDHM encodes day/hour/minute, UTC, suffix 'z'.
	TimestampDHM
	// TimestampHMS encodes hour/minute/second, UTC, suffix 'h'.
	TimestampHMS
	// TimestampLocalHM encodes hour/minute, local time, suffix '/'.
	TimestampLocalHM
)

// Timestamp is one of the three APRS timestamp variants.
type Timestamp struct {
	Kind              TimestampKind
	Day, Hour, Minute byte
	Second            byte
}

// AppendAPRS writes the fixed-width ASCII encoding of ts to dst.
func (ts Timestamp) AppendAPRS(dst []byte) []byte {
	switch ts.Kind {
	case TimestampDHM:
		return fmt.Appendf(dst, "%02d%02d%02dz", ts.Day, ts.Hour, ts.Minute)
	case TimestampHMS:
		return fmt.Appendf(dst, "%02d%02d%02dh", ts.Hour, ts.Minute, ts.Second)
	case TimestampLocalHM:
		return fmt.Appendf(dst, "%02d%02d/", ts.Hour, ts.Minute)
	default:
		return dst
	}
}

// PositionReport is the data carried by one APRS position beacon.
type PositionReport struct {
	Latitude, Longitude     Coordinate
	SymbolTable, SymbolCode byte
	Comment                 string
	Timestamp               Timestamp
	Messaging               bool
}

// dataTypeIdentifier selects '@' / '/' / '=' / '!' from the
// (timestamp-present, messaging) pair, per spec.md §3.
func (p PositionReport) dataTypeIdentifier() byte {
	hasTimestamp := p.Timestamp.Kind != TimestampNone
	switch {
	case hasTimestamp && p.Messaging:
		return '@'
	case hasTimestamp && !p.Messaging:
		return '/'
	case !hasTimestamp && p.Messaging:
		return '='
	default:
		return '!'
	}
}

// EncodeInfo assembles the APRS information field: data-type identifier,
// optional timestamp, latitude, symbol table ID, longitude, symbol code,
// optional comment.
func (p PositionReport) EncodeInfo() ([]byte, error) {
	if len(p.Comment) > MaxCommentLen {
		return nil, ErrCommentTooLong
	}

	info := make([]byte, 0, 1+7+8+1+9+1+MaxCommentLen)

	info = append(info, p.dataTypeIdentifier())
	info = p.Timestamp.AppendAPRS(info)
	info = p.Latitude.AppendAPRS(info, true)
	info = append(info, p.SymbolTable)
	info = p.Longitude.AppendAPRS(info, false)
	info = append(info, p.SymbolCode)
	info = append(info, p.Comment...)

	return info, nil
}
