//go:build !windows

package maps

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// WatchResize calls InvalidateSize on the map given, delay after
// each terminal window resize, until the context is canceled.
func WatchResize(ctx context.Context, delay time.Duration, resizable Resizable) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGWINCH)
	defer signal.Stop(signals)
	watchResize(ctx, signals, delay, resizable, time.AfterFunc)
}
