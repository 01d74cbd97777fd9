package beacon

import (
	"sync"

	"github.com/kd2vcb/pico-aprs-beacon/internal/bitstream"
	"github.com/kd2vcb/pico-aprs-beacon/internal/modem"
)

var (
	_ Enqueuer    = (*TxQueue)(nil)
	_ modem.Queue = (*TxQueue)(nil)
)

// TxQueue is the bounded hand-off between the beacon task and the
// modulator. Its capacity is set by NewTxQueue; cmd/aprsbeacon uses 2.
type TxQueue struct {
	mu    sync.Mutex
	items []*bitstream.Buffer
	cap   int
}

// NewTxQueue builds a TxQueue holding at most capacity pending frames.
func NewTxQueue(capacity int) *TxQueue {
	return &TxQueue{cap: capacity}
}

// PushBack enqueues bits, reporting false (without enqueuing) if the
// queue is already full.
func (q *TxQueue) PushBack(bits *bitstream.Buffer) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) >= q.cap {
		return false
	}
	q.items = append(q.items, bits)
	return true
}

// PopFront removes and returns the oldest queued frame, satisfying
// modem.Queue.
func (q *TxQueue) PopFront() (modem.Bits, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil, false
	}
	next := q.items[0]
	q.items = q.items[1:]
	return next, true
}

// Empty reports whether the queue currently holds no frames, satisfying
// modem.Queue.
func (q *TxQueue) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) == 0
}
