// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !bichan_debug

package bichan

import "log/slog"

// SetLogger sets the logger used for lifecycle tracing.
// Tracing is compiled in only with the bichan_debug build tag; in release
// builds SetLogger does nothing.
func SetLogger(l *slog.Logger) {}

// debug is a no-op in release builds and is inlined away.
func debug(msg string, args ...any) {}
