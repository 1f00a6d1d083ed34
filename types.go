// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bichan

// Queue is the capability set a link needs from its underlying queue.
//
// Enqueue and Dequeue must be non-blocking and return ErrWouldBlock when
// the queue is full or empty. Delivery must be FIFO per producer.
// Disconnect detection is not the queue's job; the link tracks it.
//
// Every generic queue in [code.hybscloud.com/lfq] satisfies Queue. [Build]
// uses lfq.SPSC, lfq.MPSC and lfq.MPSCSeq; [Connect] accepts any of them,
// or any other implementation.
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the sending side of a Queue.
type Producer[T any] interface {
	// Enqueue copies *elem into the queue.
	// Returns nil on success, ErrWouldBlock if the queue is full.
	Enqueue(elem *T) error
}

// Consumer is the receiving side of a Queue.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Dequeue() (T, error)
}

// Drainer matches [lfq.Drainer]. When the last Sender of a direction is
// closed, the link calls Drain on a queue that implements it, so FAA-based
// lfq queues skip their livelock threshold and the receiver can take every
// buffered message before reporting ErrDisconnected.
type Drainer interface {
	Drain()
}
