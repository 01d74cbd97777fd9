package status_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kd2vcb/pico-aprs-beacon/internal/status"
)

func TestUTMStringNorthernHemisphere(t *testing.T) {
	got, err := status.UTMString(42.662139, -71.365553)
	require.NoError(t, err)
	require.Contains(t, got, "N")
}

func TestUTMStringSouthernHemisphere(t *testing.T) {
	got, err := status.UTMString(-33.8688, 151.2093)
	require.NoError(t, err)
	require.Contains(t, got, "S")
}
