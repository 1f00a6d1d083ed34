// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bichan

import "code.hybscloud.com/atomix"

// Sender is a sending half of one direction of a pair.
//
// A Sender must be used by one goroutine at a time. In a multi-producer
// pair, [Sender.Clone] hands out further Senders that can be used
// concurrently; the receiver disconnects once all of them are closed.
type Sender[T any] struct {
	link   *link[T]
	closed atomix.Bool
}

func newSender[T any](l *link[T]) *Sender[T] {
	return &Sender[T]{link: l}
}

// Send enqueues m for the counterpart.
//
// Send returns as soon as m is queued; it never waits for m to be read.
// If the queue is full, Send spins and then backs off until there is
// room. It returns ErrDisconnected, discarding m, once the counterpart's
// receiving half is closed.
func (s *Sender[T]) Send(m T) error {
	var w waiter
	for {
		err := s.TrySend(m)
		if !IsWouldBlock(err) {
			return err
		}
		w.wait()
	}
}

// TrySend enqueues m without waiting.
// Returns ErrWouldBlock if the queue is full and ErrDisconnected if the
// counterpart's receiving half is closed.
func (s *Sender[T]) TrySend(m T) error {
	if s.closed.LoadAcquire() {
		return ErrClosed
	}
	if s.link.receiverGone() {
		return ErrDisconnected
	}
	return s.link.q.Enqueue(&m)
}

// Clone returns another Sender for the same direction.
// Panics unless the pair was built multi-producer.
func (s *Sender[T]) Clone() (*Sender[T], error) {
	if !s.link.shared {
		panic("bichan: Clone requires a multi-producer pair")
	}
	if s.closed.LoadAcquire() {
		return nil, ErrClosed
	}
	s.link.acquire()
	return newSender(s.link), nil
}

// Close releases this Sender. When the last Sender of a direction is
// closed, the receiver drains what is buffered and then reports
// ErrDisconnected. Closing twice returns ErrClosed.
func (s *Sender[T]) Close() error {
	if !s.closed.CompareAndSwapAcqRel(false, true) {
		return ErrClosed
	}
	s.link.release()
	return nil
}

// Cap returns the capacity of the queue behind this Sender.
func (s *Sender[T]) Cap() int {
	return s.link.q.Cap()
}

// Serial returns the serial of the pair this Sender belongs to.
func (s *Sender[T]) Serial() Serial {
	return s.link.serial
}
