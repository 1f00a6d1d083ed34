// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bichan

import (
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// spinLimit is the number of spin steps taken before a waiter starts
// sleeping.
const spinLimit = 64

// waiter paces a retry loop on a full or empty queue: it spins first,
// then falls back to iox.Backoff sleeps. The zero value is ready to use.
type waiter struct {
	sw      spin.Wait
	spins   int
	backoff iox.Backoff
}

// wait performs one pacing step.
func (w *waiter) wait() {
	if w.spins < spinLimit {
		w.spins++
		w.sw.Once()
		return
	}
	w.backoff.Wait()
}

// waitUntil performs one pacing step that does not sleep past deadline.
// Backoff jitter adds up to 1/8 of the sleep, so the cap is 8/9 of the
// time left.
func (w *waiter) waitUntil(deadline time.Time) {
	if w.spins < spinLimit {
		w.spins++
		w.sw.Once()
		return
	}
	limit := time.Until(deadline)
	if limit > iox.DefaultBackoffMax {
		limit = iox.DefaultBackoffMax
	} else {
		limit = limit * 8 / 9
	}
	if limit <= 0 {
		w.sw.Once()
		return
	}
	w.backoff.SetMax(limit)
	w.backoff.Wait()
}
