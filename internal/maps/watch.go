package maps

import (
	"context"
	"os"
	"time"
)

type Resizable interface {
	InvalidateSize()
}

func watchResize(ctx context.Context, signals <-chan os.Signal,
	delay time.Duration, resizable Resizable,
	afterFunc func(d time.Duration, f func()) *time.Timer) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-signals:
			afterFunc(delay, resizable.InvalidateSize)
		}
	}
}
