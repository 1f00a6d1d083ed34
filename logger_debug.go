// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build bichan_debug

package bichan

import (
	"log/slog"
	"os"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

// SetLogger sets the logger used for lifecycle tracing.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

func debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}
