// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bichan

import "code.hybscloud.com/atomix"

// State is the lifecycle state of one direction of a pair.
type State uint8

const (
	// Open: senders and receiver are both live.
	Open State = iota
	// HalfClosed: every sender is closed; the receiver may still drain
	// buffered messages.
	HalfClosed
	// Closed: nothing more will ever be received. Either the buffer was
	// drained after the senders left, or the receiver itself was closed.
	Closed
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case HalfClosed:
		return "half-closed"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Serial identifies a pair. Both endpoints of a pair report the same
// Serial; serials increase monotonically within a process.
type Serial uint64

var nextSerial atomix.Uint64

func newSerial() Serial {
	return Serial(nextSerial.AddAcqRel(1))
}

// link is one direction of a pair: a queue plus the bookkeeping that lets
// the receiver tell "empty for now" from "empty forever".
type link[T any] struct {
	_        pad
	senders  atomix.Int64 // live Sender handles
	_        pad
	rxClosed atomix.Bool // Receiver closed; sends fail
	drained  atomix.Bool // senders gone and buffer observed empty
	q        Queue[T]
	shared   bool // q is multi-producer safe; Senders may be cloned
	serial   Serial
}

func newLink[T any](q Queue[T], shared bool, serial Serial) *link[T] {
	l := &link[T]{q: q, shared: shared, serial: serial}
	l.senders.StoreRelaxed(1)
	return l
}

// acquire registers one more Sender handle.
func (l *link[T]) acquire() {
	l.senders.AddAcqRel(1)
}

// release drops one Sender handle. The release that drops the count to
// zero moves the link to HalfClosed and tells a Drainer queue about it.
func (l *link[T]) release() {
	if l.senders.AddAcqRel(-1) != 0 {
		return
	}
	if d, ok := l.q.(Drainer); ok {
		d.Drain()
	}
	debug("bichan: senders gone", "serial", uint64(l.serial))
}

// sendersGone reports whether every Sender has been closed. Once true,
// every message those senders enqueued is visible to the consumer.
func (l *link[T]) sendersGone() bool {
	return l.senders.LoadAcquire() <= 0
}

func (l *link[T]) closeReceiver() {
	l.rxClosed.StoreRelease(true)
	debug("bichan: receiver closed", "serial", uint64(l.serial))
}

func (l *link[T]) receiverGone() bool {
	return l.rxClosed.LoadAcquire()
}

func (l *link[T]) state() State {
	switch {
	case l.drained.LoadAcquire() || l.rxClosed.LoadAcquire():
		return Closed
	case l.sendersGone():
		return HalfClosed
	default:
		return Open
	}
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
