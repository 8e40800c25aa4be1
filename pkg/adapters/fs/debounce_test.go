package fs

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := newDebouncer(50 * time.Millisecond)

	var calls atomic.Int32
	for range 5 {
		d.trigger(func() { calls.Add(1) })
	}

	time.Sleep(200 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	d := newDebouncer(time.Hour)

	var calls atomic.Int32
	d.trigger(func() { calls.Add(1) })
	d.stopAndWait(time.Second)

	d.trigger(func() { calls.Add(1) })

	if got := calls.Load(); got != 0 {
		t.Errorf("calls = %d, want 0", got)
	}
}
