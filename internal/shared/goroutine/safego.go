// Package goroutine runs fire-and-forget work without letting a panic or a
// hung dependency outlive the request that started it.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/fiberops/subcore/internal/shared/logger"
)

// Go runs fn in a new goroutine with a context that expires after timeout.
// A returned error is logged at warn level with attrs; a panic is logged
// with its stack and swallowed.
func Go(log logger.Interface, name string, timeout time.Duration, fn func(ctx context.Context) error, attrs ...any) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			log.Warnw(name+" failed", append(attrs, "error", err)...)
		}
	}()
}
