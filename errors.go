// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bichan

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For TrySend: the outbound queue is full (backpressure)
// For TryRecv: the inbound queue is empty (no data available)
//
// ErrWouldBlock is a control flow signal, not a failure. Retry later.
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrEmpty is what TryRecv returns when nothing is queued.
// It is the same value as ErrWouldBlock.
var ErrEmpty = ErrWouldBlock

// ErrDisconnected reports that the counterpart half of a link is gone.
//
// On the receive side it is returned only once every Sender of the link
// has been closed and the buffered messages have all been received.
// On the send side it is returned as soon as the Receiver is closed; the
// message is discarded.
//
// ErrDisconnected is terminal for that direction.
var ErrDisconnected = errors.New("bichan: counterpart disconnected")

// ErrTimeout is returned by RecvTimeout when no message arrived in time.
// It is transient.
var ErrTimeout = errors.New("bichan: receive timed out")

// ErrClosed is returned when an endpoint or half is used after the caller
// closed it.
var ErrClosed = errors.New("bichan: use of closed endpoint")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// IsDisconnected reports whether err is, or wraps, ErrDisconnected.
func IsDisconnected(err error) bool {
	return errors.Is(err, ErrDisconnected)
}

// IsTimeout reports whether err is, or wraps, ErrTimeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
