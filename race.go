// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package bichan

// RaceEnabled is true when the race detector is active.
// Tests use it to skip cross-goroutine exchanges over the queues, which
// the detector misreports because it cannot see their memory ordering.
const RaceEnabled = true
