// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bichan_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/bichan"
	"code.hybscloud.com/lfq"
)

// =============================================================================
// Builder
// =============================================================================

func TestBuilderCapacity(t *testing.T) {
	tests := []struct {
		name string
		b    *bichan.Builder
		want int
	}{
		{"SPSC", bichan.New(3), 4},
		{"MPSC", bichan.New(1000).MultiProducer(), 1024},
		{"MPSCCompact", bichan.New(64).MultiProducer().Compact(), 64},
		{"CompactIgnoredForSPSC", bichan.New(5).Compact(), 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.Capacity(); got != tt.want {
				t.Fatalf("Builder.Capacity: got %d, want %d", got, tt.want)
			}
			l, r := bichan.Build[int, string](tt.b)
			if l.Cap() != tt.want || r.Cap() != tt.want {
				t.Fatalf("Cap: got (%d, %d), want %d", l.Cap(), r.Cap(), tt.want)
			}
			if err := l.Send(1); err != nil {
				t.Fatalf("Send: %v", err)
			}
			if v, err := r.Recv(); err != nil || v != 1 {
				t.Fatalf("Recv: got (%d, %v), want (1, nil)", v, err)
			}
			if err := r.Send("a"); err != nil {
				t.Fatalf("Send: %v", err)
			}
			if v, err := l.Recv(); err != nil || v != "a" {
				t.Fatalf("Recv: got (%q, %v), want (\"a\", nil)", v, err)
			}
		})
	}
}

func TestNewPairDefaultCapacity(t *testing.T) {
	l, r := bichan.NewPair[int, int]()
	if l.Cap() != bichan.DefaultCapacity || r.Cap() != bichan.DefaultCapacity {
		t.Fatalf("Cap: got (%d, %d), want %d", l.Cap(), r.Cap(), bichan.DefaultCapacity)
	}
}

func TestNewPanicsOnSmallCapacity(t *testing.T) {
	for _, c := range []int{-1, 0, 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("New(%d): expected panic", c)
				}
			}()
			bichan.New(c)
		}()
	}
}

// =============================================================================
// Multiple Producers
// =============================================================================

func TestCloneRequiresMultiProducer(t *testing.T) {
	l, _ := bichan.NewPair[int, int]()
	defer func() {
		if recover() == nil {
			t.Fatal("Sender on single-producer pair: expected panic")
		}
	}()
	l.Sender()
}

// TestClonedSendersDisconnectTogether checks that the receiver keeps
// waiting until the last cloned Sender is closed.
func TestClonedSendersDisconnectTogether(t *testing.T) {
	for _, compact := range []bool{false, true} {
		b := bichan.New(16).MultiProducer()
		if compact {
			b.Compact()
		}
		l, r := bichan.Build[int, int](b)

		extra, err := l.Sender()
		if err != nil {
			t.Fatalf("Sender: %v", err)
		}
		more, err := extra.Clone()
		if err != nil {
			t.Fatalf("Clone: %v", err)
		}

		l.Send(1)
		extra.Send(2)
		more.Send(3)

		l.Close()
		extra.Close()
		for want := 1; want <= 3; want++ {
			if v, err := r.Recv(); err != nil || v != want {
				t.Fatalf("Recv: got (%d, %v), want (%d, nil)", v, err, want)
			}
		}
		if _, err := r.TryRecv(); !errors.Is(err, bichan.ErrEmpty) {
			t.Fatalf("TryRecv with one live clone: got %v, want ErrEmpty", err)
		}
		if got := r.State(); got != bichan.Open {
			t.Fatalf("State with one live clone: got %v, want open", got)
		}

		more.Close()
		if _, err := r.TryRecv(); !errors.Is(err, bichan.ErrDisconnected) {
			t.Fatalf("TryRecv after last clone closed: got %v, want ErrDisconnected", err)
		}
	}
}

func TestCloneAfterClose(t *testing.T) {
	l, _ := bichan.Build[int, int](bichan.New(8).MultiProducer())
	tx, _ := l.Split()
	tx.Close()

	if _, err := tx.Clone(); !errors.Is(err, bichan.ErrClosed) {
		t.Fatalf("Clone of closed Sender: got %v, want ErrClosed", err)
	}
	if err := tx.Close(); !errors.Is(err, bichan.ErrClosed) {
		t.Fatalf("second Sender.Close: got %v, want ErrClosed", err)
	}
}

// =============================================================================
// Custom Queues
// =============================================================================

// sliceQueue is a minimal single-goroutine Queue used to show that any
// implementation of the capability set can be wired.
type sliceQueue[T any] struct {
	items []T
	limit int
}

func (q *sliceQueue[T]) Enqueue(elem *T) error {
	if len(q.items) >= q.limit {
		return bichan.ErrWouldBlock
	}
	q.items = append(q.items, *elem)
	return nil
}

func (q *sliceQueue[T]) Dequeue() (T, error) {
	var zero T
	if len(q.items) == 0 {
		return zero, bichan.ErrWouldBlock
	}
	v := q.items[0]
	q.items = q.items[1:]
	return v, nil
}

func (q *sliceQueue[T]) Cap() int { return q.limit }

type drainQueue struct {
	sliceQueue[int]
	drained int
}

func (q *drainQueue) Drain() { q.drained++ }

func TestConnectCustomQueue(t *testing.T) {
	l, r := bichan.Connect[int, int](&sliceQueue[int]{limit: 2}, &sliceQueue[int]{limit: 2})

	if l.Cap() != 2 {
		t.Fatalf("Cap: got %d, want 2", l.Cap())
	}
	l.Send(1)
	l.Send(2)
	if err := l.TrySend(3); !errors.Is(err, bichan.ErrWouldBlock) {
		t.Fatalf("TrySend on full: got %v, want ErrWouldBlock", err)
	}
	for want := 1; want <= 2; want++ {
		if v, err := r.Recv(); err != nil || v != want {
			t.Fatalf("Recv: got (%d, %v), want (%d, nil)", v, err, want)
		}
	}
}

func TestConnectSharedDrainsQueue(t *testing.T) {
	ab := &drainQueue{sliceQueue: sliceQueue[int]{limit: 4}}
	l, r := bichan.ConnectShared[int, int](ab, &sliceQueue[int]{limit: 4})

	extra, err := l.Sender()
	if err != nil {
		t.Fatalf("Sender: %v", err)
	}
	l.Close()
	if ab.drained != 0 {
		t.Fatalf("Drain with a live Sender: called %d times, want 0", ab.drained)
	}
	extra.Close()
	if ab.drained != 1 {
		t.Fatalf("Drain after last Sender: called %d times, want 1", ab.drained)
	}
	if _, err := r.TryRecv(); !errors.Is(err, bichan.ErrDisconnected) {
		t.Fatalf("TryRecv: got %v, want ErrDisconnected", err)
	}
}

func TestConnectLfqQueues(t *testing.T) {
	l, r := bichan.Connect[int, string](lfq.NewSPSC[int](4), lfq.NewMPSCSeq[string](4))
	for i := range 4 {
		if err := l.Send(i); err != nil {
			t.Fatalf("Send(%d): %v", i, err)
		}
	}
	if err := l.TrySend(4); !errors.Is(err, bichan.ErrWouldBlock) {
		t.Fatalf("TrySend on full: got %v, want ErrWouldBlock", err)
	}
	r.Send("x")
	if v, err := l.Recv(); err != nil || v != "x" {
		t.Fatalf("Recv: got (%q, %v), want (\"x\", nil)", v, err)
	}
	l.Close()
	for want := range 4 {
		if v, err := r.Recv(); err != nil || v != want {
			t.Fatalf("Recv: got (%d, %v), want (%d, nil)", v, err, want)
		}
	}
	if _, err := r.Recv(); !errors.Is(err, bichan.ErrDisconnected) {
		t.Fatalf("Recv after drain: got %v, want ErrDisconnected", err)
	}
}

// TestConnectSharedDrainsLfqMPMC checks that closing the last Sender puts
// an lfq FAA queue into drain mode, so the receiver gets every buffered
// message regardless of the queue's livelock threshold.
func TestConnectSharedDrainsLfqMPMC(t *testing.T) {
	const n = 8
	l, r := bichan.ConnectShared[int, int](lfq.NewMPMC[int](n), lfq.NewMPMC[int](n))
	extra, err := l.Sender()
	if err != nil {
		t.Fatalf("Sender: %v", err)
	}
	for i := range n {
		if err := extra.Send(i); err != nil {
			t.Fatalf("Send(%d): %v", i, err)
		}
	}
	extra.Close()
	l.Close()
	if got := r.State(); got != bichan.HalfClosed {
		t.Fatalf("State after senders closed: got %v, want half-closed", got)
	}
	for want := range n {
		if v, err := r.TryRecv(); err != nil || v != want {
			t.Fatalf("TryRecv: got (%d, %v), want (%d, nil)", v, err, want)
		}
	}
	if _, err := r.Recv(); !errors.Is(err, bichan.ErrDisconnected) {
		t.Fatalf("Recv after drain: got %v, want ErrDisconnected", err)
	}
	if got := r.State(); got != bichan.Closed {
		t.Fatalf("State after drain: got %v, want closed", got)
	}
}

func TestConnectNilQueuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Connect(nil, q): expected panic")
		}
	}()
	bichan.Connect[int, int](nil, &sliceQueue[int]{limit: 2})
}
