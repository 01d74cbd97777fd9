package aprs_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/kd2vcb/pico-aprs-beacon/internal/aprs"
	"github.com/kd2vcb/pico-aprs-beacon/internal/ax25"
)

func TestCoordinateEncodeLatitude(t *testing.T) {
	c := aprs.Coordinate{Microdegrees: 49_058_334}
	got := c.AppendAPRS(nil, true)
	require.Equal(t, "4903.50N", string(got))
}

func TestCoordinateEncodeLongitude(t *testing.T) {
	c := aprs.Coordinate{Microdegrees: -72_029_167}
	got := c.AppendAPRS(nil, false)
	require.Equal(t, "07201.75W", string(got))
}

func TestCoordinateRoundTripWithinOneHundredthMinute(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lat := rapid.Float64Range(-90, 90).Draw(t, "lat")
		c := aprs.FromFloat(lat)

		buf := c.AppendAPRS(nil, true)
		// Re-derive degrees from the rendered ASCII and compare against
		// the original within 1/6000 degree (one hundredth of a minute).
		deg := float64((buf[0]-'0'))*10 + float64(buf[1]-'0')
		min := float64((buf[2]-'0'))*10 + float64(buf[3]-'0')
		hund := float64((buf[5]-'0'))*10 + float64(buf[6]-'0')
		decoded := deg + (min+hund/100)/60
		if buf[len(buf)-1] == 'S' {
			decoded = -decoded
		}

		diff := decoded - lat
		if diff < 0 {
			diff = -diff
		}
		require.LessOrEqual(t, diff, 1.0/6000.0+1e-9)
	})
}

func TestPositionReportDataTypeIdentifier(t *testing.T) {
	cases := []struct {
		hasTS     bool
		messaging bool
		want      byte
	}{
		{true, true, '@'},
		{true, false, '/'},
		{false, true, '='},
		{false, false, '!'},
	}

	for _, tc := range cases {
		r := aprs.PositionReport{Messaging: tc.messaging}
		if tc.hasTS {
			r.Timestamp = aprs.Timestamp{Kind: aprs.TimestampHMS, Hour: 1, Minute: 2, Second: 3}
		}
		info, err := r.EncodeInfo()
		require.NoError(t, err)
		require.Equal(t, tc.want, info[0])
	}
}

func TestPositionReportEncodeInfoFullExample(t *testing.T) {
	r := aprs.PositionReport{
		Latitude:    aprs.Coordinate{Microdegrees: 49_058_334},
		Longitude:   aprs.Coordinate{Microdegrees: -72_029_167},
		SymbolTable: '/',
		SymbolCode:  'b',
		Comment:     "PHG0020Test 001234",
	}

	info, err := r.EncodeInfo()
	require.NoError(t, err)
	require.Equal(t, "!4903.50N/07201.75WbPHG0020Test 001234", string(info))
}

func TestCommentTooLong(t *testing.T) {
	r := aprs.PositionReport{Comment: string(make([]byte, aprs.MaxCommentLen+1))}
	_, err := r.EncodeInfo()
	require.ErrorIs(t, err, aprs.ErrCommentTooLong)
}

func TestBuildPositionFrameReference(t *testing.T) {
	dest, _ := ax25.NewAddress("APZ", 0)
	src, _ := ax25.NewAddress("N0CALL", 7)
	digi, _ := ax25.NewAddress("WIDE1", 1)

	r := aprs.PositionReport{
		Latitude:    aprs.Coordinate{Microdegrees: 49_058_334},
		Longitude:   aprs.Coordinate{Microdegrees: -72_029_167},
		SymbolTable: '/',
		SymbolCode:  'b',
		Comment:     "PHG0020Test 001234",
	}

	frame, err := aprs.BuildPositionFrame(dest, src, []ax25.AddressField{digi}, r)
	require.NoError(t, err)

	expected := []byte{
		0x82, 0xA0, 0xB4, 0x40, 0x40, 0x40, 0x60,
		0x9C, 0x60, 0x86, 0x82, 0x98, 0x98, 0x6E,
		0xAE, 0x92, 0x88, 0x8A, 0x62, 0x40, 0x63,
		0x03, 0xF0,
		0x21, 0x34, 0x39, 0x30, 0x33, 0x2E, 0x35, 0x30, 0x4E, 0x2F,
		0x30, 0x37, 0x32, 0x30, 0x31, 0x2E, 0x37, 0x35, 0x57, 0x62,
		0x50, 0x48, 0x47, 0x30, 0x30, 0x32, 0x30, 0x54, 0x65, 0x73,
		0x74, 0x20, 0x30, 0x30, 0x31, 0x32, 0x33, 0x34,
		0xBE, 0xB3,
	}

	require.Equal(t, expected, frame)
}
