//go:build windows

package maps

import (
	"context"
	"time"
)

// WatchResize blocks until the context is canceled, since
// terminal resize signals are not available on Windows.
func WatchResize(ctx context.Context, _ time.Duration, _ Resizable) {
	<-ctx.Done()
}
