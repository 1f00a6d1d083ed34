// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bichan

import (
	"errors"
	"iter"
	"time"
)

// Endpoint is one side of a bidirectional channel. It sends values of
// type S to its counterpart and receives values of type R from it.
//
// An Endpoint owns the sending half of its outbound direction and the
// receiving half of its inbound direction. The two directions are
// independent: closing one does not stop the other from draining.
//
// Example:
//
//	left, right := bichan.NewPair[int, int]()
//
//	left.Send(1)
//	v, _ := right.Recv() // 1
//
//	right.Send(2)
//	v, _ = left.Recv() // 2
type Endpoint[S, R any] struct {
	tx *Sender[S]
	rx *Receiver[R]
}

// Send enqueues m for the counterpart. See [Sender.Send].
func (e *Endpoint[S, R]) Send(m S) error {
	return e.tx.Send(m)
}

// TrySend enqueues m without waiting. See [Sender.TrySend].
func (e *Endpoint[S, R]) TrySend(m S) error {
	return e.tx.TrySend(m)
}

// Recv waits for the next message from the counterpart. See [Receiver.Recv].
func (e *Endpoint[S, R]) Recv() (R, error) {
	return e.rx.Recv()
}

// TryRecv returns the next message without waiting. See [Receiver.TryRecv].
func (e *Endpoint[S, R]) TryRecv() (R, error) {
	return e.rx.TryRecv()
}

// RecvTimeout waits up to d for the next message. See [Receiver.RecvTimeout].
func (e *Endpoint[S, R]) RecvTimeout(d time.Duration) (R, error) {
	return e.rx.RecvTimeout(d)
}

// Iter returns a blocking sequence of received messages that ends when
// the counterpart disconnects. See [Receiver.Iter].
func (e *Endpoint[S, R]) Iter() iter.Seq[R] {
	return e.rx.Iter()
}

// TryIter returns a sequence of the messages pending right now.
func (e *Endpoint[S, R]) TryIter() iter.Seq[R] {
	return e.rx.TryIter()
}

// Sender returns a new Sender for the outbound direction, sharing the
// queue with this Endpoint. The caller must Close it.
// Panics unless the pair was built multi-producer.
func (e *Endpoint[S, R]) Sender() (*Sender[S], error) {
	return e.tx.Clone()
}

// Split returns the Endpoint's two halves. The Endpoint must not be used
// afterwards; close the halves instead.
func (e *Endpoint[S, R]) Split() (*Sender[S], *Receiver[R]) {
	return e.tx, e.rx
}

// Close closes both halves. The counterpart's Recv drains what is already
// buffered and then reports ErrDisconnected; its Send fails with
// ErrDisconnected. Closing twice returns ErrClosed.
func (e *Endpoint[S, R]) Close() error {
	return errors.Join(e.tx.Close(), e.rx.Close())
}

// State reports the lifecycle state of the inbound direction.
func (e *Endpoint[S, R]) State() State {
	return e.rx.State()
}

// Cap returns the capacity of the outbound queue.
func (e *Endpoint[S, R]) Cap() int {
	return e.tx.Cap()
}

// Serial returns the serial shared by both endpoints of the pair.
func (e *Endpoint[S, R]) Serial() Serial {
	return e.tx.Serial()
}

// Connect wires two caller-supplied queues into a pair. ab carries
// left→right traffic and ba carries right→left. Each queue gets one
// Sender; Clone panics on the resulting endpoints.
func Connect[S, R any](ab Queue[S], ba Queue[R]) (*Endpoint[S, R], *Endpoint[R, S]) {
	return connect(ab, ba, false)
}

// ConnectShared is Connect for multi-producer queues. The caller vouches
// that ab and ba tolerate concurrent Enqueue calls, so Senders of the
// resulting endpoints may be cloned.
func ConnectShared[S, R any](ab Queue[S], ba Queue[R]) (*Endpoint[S, R], *Endpoint[R, S]) {
	return connect(ab, ba, true)
}

func connect[S, R any](ab Queue[S], ba Queue[R], shared bool) (*Endpoint[S, R], *Endpoint[R, S]) {
	if ab == nil || ba == nil {
		panic("bichan: nil queue")
	}
	serial := newSerial()
	toRight := newLink(ab, shared, serial)
	toLeft := newLink(ba, shared, serial)

	l := &Endpoint[S, R]{tx: newSender(toRight), rx: newReceiver(toLeft)}
	r := &Endpoint[R, S]{tx: newSender(toLeft), rx: newReceiver(toRight)}
	debug("bichan: pair created", "serial", uint64(serial), "cap", ab.Cap())
	return l, r
}
