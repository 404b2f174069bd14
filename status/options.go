package status

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"go.uber.org/zap"
)

// Option configures a widget at construction.
type Option func(*Widget)

// WithRegistry binds the widget to a specific registry instead of the
// process-wide default.
func WithRegistry(r *Registry) Option {
	return func(w *Widget) { w.reg = r }
}

// WithLogger sets the logger attach diagnostics are written to.
// Defaults to a nop logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(w *Widget) { w.log = log }
}

// WithStyles replaces the widget's style set.
func WithStyles(s Styles) Option {
	return func(w *Widget) {
		w.styles = s
		w.spin.Style = s.Spinner
	}
}

// WithSpinner replaces the progress indicator's frame set.
func WithSpinner(sp spinner.Spinner) Option {
	return func(w *Widget) { w.spin.Spinner = sp }
}

// WithDismissKey sets the key that dismisses a visible widget.
// Defaults to "x".
func WithDismissKey(key string) Option {
	return func(w *Widget) { w.dismissKey = key }
}

// WithDismissDestroy makes the dismiss key destroy the widget (unregister and
// dispose) instead of only hiding it. Default is hide-only.
func WithDismissDestroy(destroy bool) Option {
	return func(w *Widget) { w.dismissDestroy = destroy }
}

// WithFadeDurations sets the show and hide transition lengths. Zero values
// keep the defaults; Hide's per-call duration still wins.
func WithFadeDurations(show, hide time.Duration) Option {
	return func(w *Widget) {
		if show > 0 {
			w.showDuration = show
		}
		if hide > 0 {
			w.hideDuration = hide
		}
	}
}

// WithMaxWidth clamps the rendered message to n terminal columns, truncating
// with an ellipsis. Zero means no clamp.
func WithMaxWidth(n int) Option {
	return func(w *Widget) { w.maxWidth = n }
}
