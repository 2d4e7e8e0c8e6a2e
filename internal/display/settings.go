package display

import "time"

type Settings struct {
	// Colors enables colored output.
	Colors bool
	// FadeDelay is the delay between the values fading out
	// and the new values being shown.
	FadeDelay time.Duration
}
