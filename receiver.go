// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bichan

import (
	"iter"
	"time"

	"code.hybscloud.com/atomix"
)

// Receiver is the receiving half of one direction of a pair.
// It is uniquely owned: only one goroutine may receive at a time.
type Receiver[T any] struct {
	link   *link[T]
	closed atomix.Bool
}

func newReceiver[T any](l *link[T]) *Receiver[T] {
	return &Receiver[T]{link: l}
}

// TryRecv returns the next message without waiting.
//
// Returns ErrEmpty if nothing is queued while a Sender is still live, and
// ErrDisconnected once every Sender is closed and the queue is drained.
func (r *Receiver[T]) TryRecv() (T, error) {
	var zero T
	if r.closed.LoadAcquire() {
		return zero, ErrClosed
	}
	m, err := r.link.q.Dequeue()
	if !IsWouldBlock(err) {
		return m, err
	}
	if !r.link.sendersGone() {
		return zero, ErrEmpty
	}
	// The last Close happened after the last Enqueue, so one more look
	// sees anything published in between.
	m, err = r.link.q.Dequeue()
	if !IsWouldBlock(err) {
		return m, err
	}
	r.link.drained.StoreRelease(true)
	return zero, ErrDisconnected
}

// Recv waits for the next message.
//
// Recv spins and then backs off until a message arrives. It returns
// ErrDisconnected once every Sender is closed and the queue is drained.
// Messages from one Sender arrive in the order they were sent.
func (r *Receiver[T]) Recv() (T, error) {
	var w waiter
	for {
		m, err := r.TryRecv()
		if !IsWouldBlock(err) {
			return m, err
		}
		w.wait()
	}
}

// RecvTimeout waits up to d for the next message.
// Returns ErrTimeout if d elapses first; it never gives up before d has
// passed, and no backoff sleep extends past the deadline. A non-positive d behaves like TryRecv, except that an empty
// queue reports ErrTimeout.
func (r *Receiver[T]) RecvTimeout(d time.Duration) (T, error) {
	deadline := time.Now().Add(d)
	var w waiter
	for {
		m, err := r.TryRecv()
		if !IsWouldBlock(err) {
			return m, err
		}
		if !time.Now().Before(deadline) {
			return m, ErrTimeout
		}
		w.waitUntil(deadline)
	}
}

// Iter returns a sequence of received messages. The sequence blocks
// like Recv between messages and ends once Recv would return an error.
// Each call to Iter starts a new sequence over the same Receiver.
func (r *Receiver[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			m, err := r.Recv()
			if err != nil || !yield(m) {
				return
			}
		}
	}
}

// TryIter returns a sequence of the messages that are pending right now.
// It never blocks and ends at the first empty or terminal TryRecv.
func (r *Receiver[T]) TryIter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			m, err := r.TryRecv()
			if err != nil || !yield(m) {
				return
			}
		}
	}
}

// Close releases the Receiver. Subsequent sends on this direction fail
// with ErrDisconnected and messages still queued are never delivered.
// Close does not touch the queue, so it may be called while a Recv is
// pending on another goroutine; that Recv returns ErrClosed.
// Closing twice returns ErrClosed.
func (r *Receiver[T]) Close() error {
	if !r.closed.CompareAndSwapAcqRel(false, true) {
		return ErrClosed
	}
	r.link.closeReceiver()
	return nil
}

// State reports the lifecycle state of the direction this Receiver
// drains.
func (r *Receiver[T]) State() State {
	return r.link.state()
}

// Serial returns the serial of the pair this Receiver belongs to.
func (r *Receiver[T]) Serial() Serial {
	return r.link.serial
}
