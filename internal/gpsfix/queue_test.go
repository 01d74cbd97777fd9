package gpsfix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kd2vcb/pico-aprs-beacon/internal/gpsfix"
)

func TestQueuePushDrainFIFOOrder(t *testing.T) {
	q := gpsfix.NewQueue(8)
	for _, b := range []byte("abcd") {
		q.Push(b)
	}
	require.Equal(t, 4, q.Len())

	got := q.DrainInto(nil)
	require.Equal(t, []byte("abcd"), got)
	require.Equal(t, 0, q.Len())
}

func TestQueueOverflowDropsSilently(t *testing.T) {
	q := gpsfix.NewQueue(4)
	for _, b := range []byte("abcdef") {
		q.Push(b)
	}
	require.Equal(t, 4, q.Len())
	require.Equal(t, []byte("abcd"), q.DrainInto(nil))
}
