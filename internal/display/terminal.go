package display

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

type Terminal struct {
	writer    io.Writer
	fadeDelay time.Duration
	afterFunc func(d time.Duration, f func())
	pending   sync.WaitGroup

	mutex   sync.Mutex
	panel   Panel
	loading bool
	message string

	label   *color.Color
	value   *color.Color
	faded   *color.Color
	spinner *color.Color
	banner  *color.Color
}

func New(writer io.Writer, settings Settings) *Terminal {
	t := &Terminal{
		writer:    writer,
		fadeDelay: settings.FadeDelay,
		label:     color.New(color.FgHiBlack, color.Bold),
		value:     color.New(color.FgHiWhite, color.Bold),
		faded:     color.New(color.Faint),
		spinner:   color.New(color.FgCyan),
		banner:    color.New(color.FgWhite, color.BgRed, color.Bold),
	}
	t.afterFunc = func(d time.Duration, f func()) {
		time.AfterFunc(d, f)
	}

	if !settings.Colors {
		for _, c := range []*color.Color{t.label, t.value, t.faded, t.spinner, t.banner} {
			c.DisableColor()
		}
	}

	return t
}

// Update fades the current values out, and shows the new panel
// values after the fade delay.
func (t *Terminal) Update(panel Panel) {
	t.mutex.Lock()
	t.renderPanel(t.panel, t.faded)
	t.mutex.Unlock()

	t.pending.Add(1)
	t.afterFunc(t.fadeDelay, func() {
		defer t.pending.Done()
		t.mutex.Lock()
		defer t.mutex.Unlock()
		t.panel = panel
		t.renderPanel(t.panel, t.value)
	})
}

// Panel returns the panel values currently shown.
func (t *Terminal) Panel() Panel {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.panel
}

func (t *Terminal) SetLoading(loading bool) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if loading == t.loading {
		return
	}
	t.loading = loading
	if loading {
		_, _ = t.spinner.Fprintln(t.writer, "⟳ Loading...")
	}
}

func (t *Terminal) Loading() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.loading
}

func (t *Terminal) ShowError(message string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.message = message
	_, _ = t.banner.Fprintf(t.writer, " ✗ %s ", message)
	_, _ = fmt.Fprintln(t.writer)
}

func (t *Terminal) HideError() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.message = ""
}

// ErrorMessage returns the error message shown, or the empty
// string if no error is shown.
func (t *Terminal) ErrorMessage() string {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.message
}

// Wait waits for pending panel updates to be rendered.
func (t *Terminal) Wait() {
	t.pending.Wait()
}

func (t *Terminal) renderPanel(panel Panel, valueColor *color.Color) {
	if panel == (Panel{}) {
		return
	}
	rows := [...]struct{ label, value string }{
		{"IP ADDRESS", panel.IP},
		{"LOCATION", panel.Location},
		{"TIMEZONE", panel.Timezone},
		{"ISP", panel.ISP},
	}
	for _, row := range rows {
		_, _ = t.label.Fprintf(t.writer, "%-10s ", row.label)
		_, _ = valueColor.Fprintln(t.writer, row.value)
	}
}
