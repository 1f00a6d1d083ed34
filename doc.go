// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bichan provides bidirectional in-process channels.
//
// A pair of [Endpoint] values is built from two bounded lock-free queues
// running in opposite directions. Each endpoint sends to and receives
// from its counterpart:
//
//	left, right := bichan.NewPair[string, string]()
//
//	// Send from the left to the right
//	left.Send("ping")
//	msg, _ := right.Recv() // "ping"
//
//	// Send from the right to the left
//	right.Send("pong")
//	msg, _ = left.Recv() // "pong"
//
// The type parameters are the outbound and inbound message types of the
// left endpoint; the right endpoint has them swapped.
//
// # Construction
//
//	bichan.NewPair[S, R]()                          // SPSC, DefaultCapacity
//	bichan.Build[S, R](bichan.New(256))             // SPSC, custom capacity
//	bichan.Build[S, R](bichan.New(256).MultiProducer())            // MPSC (FAA)
//	bichan.Build[S, R](bichan.New(256).MultiProducer().Compact())  // MPSC (CAS)
//	bichan.Connect[S, R](queueAB, queueBA)          // bring your own [Queue]
//
// Capacity is per direction and rounds up to the next power of 2.
//
// # Operations
//
// Both endpoints expose the same operations:
//
//   - Send: enqueue; waits only while the queue is full
//   - TrySend: enqueue or return [ErrWouldBlock]
//   - Recv: wait for the next message
//   - TryRecv: next message or [ErrEmpty]
//   - RecvTimeout: wait at most a duration, then [ErrTimeout]
//   - Iter / TryIter: range over received messages
//
// Waiting spins with [code.hybscloud.com/spin.Wait] first, then sleeps
// with growing intervals through [code.hybscloud.com/iox.Backoff]. A
// RecvTimeout sleep never extends past its deadline. No goroutine is
// parked on a channel or mutex.
//
// # Lifecycle
//
// Each direction moves through three states and never goes back:
//
//	Open ──(all senders closed)──▶ HalfClosed ──(buffer drained)──▶ Closed
//
// Closing an endpoint closes its sending half and its receiving half.
// The counterpart keeps receiving what was already buffered, then Recv,
// TryRecv, RecvTimeout and Iter report [ErrDisconnected]. Sending to a
// closed endpoint fails with [ErrDisconnected] and the message is dropped.
// The two directions are independent.
//
// Close may be called while another goroutine is blocked in Recv on the
// same endpoint; that Recv returns [ErrClosed].
//
// # Error Handling
//
//	ErrDisconnected  terminal: the counterpart is gone
//	ErrWouldBlock    transient: full (TrySend) or empty (TryRecv, alias ErrEmpty)
//	ErrTimeout       transient: RecvTimeout expired
//	ErrClosed        the caller used its own closed endpoint
//
// Nothing is retried internally beyond the waits described above, and
// nothing is logged on error paths.
//
// # Multiple Producers
//
// Pairs are 1:1 by default. A pair built with MultiProducer lets
// [Endpoint.Sender] and [Sender.Clone] hand out extra Senders for the same
// direction; the receiver disconnects only after every clone is closed.
// Messages from one Sender stay in order, interleaving across Senders is
// unspecified. Receiving is always single-consumer.
//
// # Race Detection
//
// The lfq queues synchronize through acquire-release sequences that Go's race
// detector cannot observe. Cross-goroutine tests check [RaceEnabled] and
// skip themselves under -race.
//
// # Debugging
//
// Building with -tags bichan_debug traces pair creation and close
// transitions through log/slog. See [SetLogger].
package bichan
