package beacon_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kd2vcb/pico-aprs-beacon/internal/beacon"
	"github.com/kd2vcb/pico-aprs-beacon/internal/bitstream"
)

func TestTxQueueRejectsPushWhenFull(t *testing.T) {
	q := beacon.NewTxQueue(1)
	b := bitstream.New(8)
	require.True(t, q.PushBack(b))
	require.False(t, q.PushBack(b))
}

func TestTxQueuePopFrontFIFO(t *testing.T) {
	q := beacon.NewTxQueue(2)
	a := bitstream.New(8)
	b := bitstream.New(8)
	q.PushBack(a)
	q.PushBack(b)

	got, ok := q.PopFront()
	require.True(t, ok)
	require.Same(t, a, got)

	require.False(t, q.Empty())
	_, ok = q.PopFront()
	require.True(t, ok)
	require.True(t, q.Empty())

	_, ok = q.PopFront()
	require.False(t, ok)
}
