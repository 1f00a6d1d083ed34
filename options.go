// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bichan

import (
	"math/bits"

	"code.hybscloud.com/lfq"
)

// DefaultCapacity is the per-direction capacity used by [NewPair].
const DefaultCapacity = 1024

// minCapacity is the smallest capacity an lfq queue accepts.
const minCapacity = 2

// Options configures pair creation and queue selection.
type Options struct {
	// Producer constraint (the consumer side is always single)
	multiProducer bool

	// Performance hints
	compact bool // Effort to save slots

	// Per-direction capacity (rounds up to next power of 2)
	capacity int
}

// Builder creates pairs with fluent configuration.
//
// The builder picks the queue behind each direction from the producer
// constraint and performance hints.
//
// Example:
//
//	// 1:1 pair over SPSC queues (same as NewPair with a custom capacity)
//	l, r := bichan.Build[Req, Resp](bichan.New(256))
//
//	// Senders can be cloned and shared across goroutines
//	l, r := bichan.Build[Event, Ack](bichan.New(4096).MultiProducer())
//
//	// Multi-producer with n slots instead of 2n
//	l, r := bichan.Build[Event, Ack](bichan.New(4096).MultiProducer().Compact())
type Builder struct {
	opts Options
}

// New creates a pair builder with the given per-direction capacity.
//
// Capacity rounds up to the next power of 2.
// Panics if capacity < 2.
func New(capacity int) *Builder {
	if capacity < minCapacity {
		panic("bichan: capacity must be >= 2")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// MultiProducer allows Senders to be cloned, so several goroutines can
// send in the same direction. Order across clones is unspecified.
func (b *Builder) MultiProducer() *Builder {
	b.opts.multiProducer = true
	return b
}

// Compact selects the CAS-based multi-producer queue with n physical slots
// instead of the FAA-based one with 2n.
//
// Trade-off: half the memory, less scalability under heavy contention.
// Single-producer pairs already use n slots and ignore Compact().
func (b *Builder) Compact() *Builder {
	b.opts.compact = true
	return b
}

// Capacity returns the per-direction capacity pairs from b will have.
func (b *Builder) Capacity() int {
	return 1 << bits.Len(uint(b.opts.capacity-1))
}

// queueBuilder translates the pair options into the lfq builder for one
// direction. The receiving half is always the single consumer.
func (b *Builder) queueBuilder() *lfq.Builder {
	qb := lfq.New(b.opts.capacity).SingleConsumer()
	if !b.opts.multiProducer {
		return qb.SingleProducer()
	}
	if b.opts.compact {
		qb.Compact()
	}
	return qb
}

// Build creates a connected pair.
//
// Queue selection per direction:
//
//	default                   → lfq.SPSC (Lamport ring)
//	MultiProducer             → lfq.MPSC (FAA, 2n slots)
//	MultiProducer + Compact   → lfq.MPSCSeq (CAS, n slots)
func Build[S, R any](b *Builder) (*Endpoint[S, R], *Endpoint[R, S]) {
	if !b.opts.multiProducer {
		return Connect[S, R](lfq.BuildSPSC[S](b.queueBuilder()), lfq.BuildSPSC[R](b.queueBuilder()))
	}
	return ConnectShared[S, R](lfq.BuildMPSC[S](b.queueBuilder()), lfq.BuildMPSC[R](b.queueBuilder()))
}

// NewPair creates a 1:1 pair with DefaultCapacity per direction.
//
// left.Send(m) makes m available to right.Recv() and right.Send(m) makes
// m available to left.Recv(), each in FIFO order.
func NewPair[S, R any]() (*Endpoint[S, R], *Endpoint[R, S]) {
	return Build[S, R](New(DefaultCapacity))
}
