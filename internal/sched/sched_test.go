package sched_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kd2vcb/pico-aprs-beacon/internal/sched"
)

type countingTask struct {
	next  int64
	ticks []int64
}

func (c *countingTask) NextRunAt() int64 { return c.next }
func (c *countingTask) Tick(now int64) {
	c.ticks = append(c.ticks, now)
	c.next = now + 10
}

func TestSchedulerSkipsTasksNotYetDue(t *testing.T) {
	a := &countingTask{next: 0}
	b := &countingTask{next: 1000}
	s := sched.New([]sched.Tickable{a, b})

	s.Run(5)

	require.Equal(t, []int64{5}, a.ticks)
	require.Empty(t, b.ticks)
}

func TestSchedulerTicksAllDueTasksInOrder(t *testing.T) {
	a := &countingTask{next: 0}
	b := &countingTask{next: 0}
	s := sched.New([]sched.Tickable{a, b})

	s.Run(100)

	require.Equal(t, []int64{100}, a.ticks)
	require.Equal(t, []int64{100}, b.ticks)
	require.Equal(t, int64(110), a.next)
}
