package status

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"smartstatus/internal/textutil"
)

// Version is informational, reported by hosts that surface widget versions.
const Version = "2.1.0"

// LoadingMessage is the message Reset restores.
const LoadingMessage = "Loading..."

// Phase is the lifecycle state of a widget's displayed status.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseFinal   Phase = "final"
)

// Outcome qualifies a Final phase.
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Widget is one status indicator: spinner (or terminal mark), message, and
// dismiss hint. Construct detached with New, bind with Attach, then drive it
// with Show/Final/Reset/Hide. Methods return the widget for chaining.
type Widget struct {
	id  string // instance UUID; log correlation and tick routing
	key string // registry key, set once at successful Attach

	reg    *Registry
	log    *zap.SugaredLogger
	styles Styles

	message string
	phase   Phase
	outcome Outcome

	visible bool
	opacity float64
	fade    *fade
	spin    spinner.Model

	target   Target
	attached bool

	superseded bool
	destroyed  bool

	dismissKey     string
	dismissDestroy bool
	showDuration   time.Duration
	hideDuration   time.Duration
	maxWidth       int
}

// New builds a detached widget: no registry entry, not visible. An empty
// message defaults to LoadingMessage.
func New(message string, opts ...Option) *Widget {
	if message == "" {
		message = LoadingMessage
	}
	w := &Widget{
		id:           uuid.NewString(),
		reg:          Default(),
		log:          zap.NewNop().Sugar(),
		styles:       DefaultStyles(),
		message:      message,
		phase:        PhaseLoading,
		spin:         spinner.New(),
		dismissKey:   "x",
		showDuration: DefaultShowDuration,
		hideDuration: DefaultHideDuration,
	}
	w.spin.Spinner = spinner.Dot
	w.spin.Style = w.styles.Spinner
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Attached builds a widget and immediately binds it to t.
func Attached(message string, t Target, opts ...Option) (*Widget, error) {
	return New(message, opts...).Attach(t, false)
}

// Attach binds the widget to t and registers it under the derived key.
//
// A screen-level attach fails with ErrAlreadyAttached when the page sentinel
// is taken; nothing is mutated. An element attach with an empty ID fails with
// ErrInvalidTarget and the widget destroys itself. When the element key is
// taken, overwrite transfers the incumbent's visual state onto this widget
// (the caller's message wins) and marks the incumbent superseded; without
// overwrite the attach fails with ErrAlreadyAttached and nothing is mutated.
func (w *Widget) Attach(t Target, overwrite bool) (*Widget, error) {
	if w.destroyed {
		w.log.Warnw("attach on destroyed widget", "widget", w.id)
		return nil, ErrInvalidTarget
	}

	if t.Page {
		if !w.reg.claim(PageKey, w) {
			w.log.Warnw("page status already attached", "widget", w.id)
			return nil, ErrAlreadyAttached
		}
		w.key = PageKey
		w.target = t
		w.attached = true
		return w, nil
	}

	if t.ID == "" {
		w.log.Warnw("attach target has no identifier", "widget", w.id)
		w.Destroy()
		return nil, ErrInvalidTarget
	}

	key := t.Key()
	if w.reg.claim(key, w) {
		w.key = key
		w.target = t
		w.attached = true
		return w, nil
	}

	if !overwrite {
		w.log.Warnw("target already has a status widget", "key", key, "widget", w.id)
		return nil, ErrAlreadyAttached
	}

	old, _ := w.reg.replace(key, w)
	w.adoptVisuals(old)
	w.key = key
	w.attached = true
	if old != nil {
		old.supersede()
		w.log.Infow("took over status widget",
			"key", key, "widget", w.id, "superseded", old.id)
	}
	return w, nil
}

// adoptVisuals transfers the incumbent's on-screen state: spinner frames,
// opacity, visibility, armed fade, and placement. The caller's message and
// phase are kept.
func (w *Widget) adoptVisuals(old *Widget) {
	if old == nil {
		return
	}
	w.spin = old.spin
	w.visible = old.visible
	w.opacity = old.opacity
	w.fade = old.fade
	w.target = old.target
	old.fade = nil
}

// supersede detaches a widget whose key was taken over. The object stays
// valid so stale holders can observe Superseded.
func (w *Widget) supersede() {
	w.superseded = true
	w.attached = false
	w.visible = false
}

// Destroy removes the widget's registry entry and its visual presence.
// Safe to call repeatedly; a superseded widget never evicts its successor.
func (w *Widget) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	if w.key != "" {
		w.reg.release(w.key, w)
	}
	w.attached = false
	w.visible = false
	if w.fade != nil {
		close(w.fade.done)
		w.fade = nil
	}
}

// discard disposes a widget the registry has already dropped (Reset path).
func (w *Widget) discard() {
	if w.destroyed {
		return
	}
	w.key = ""
	w.Destroy()
}

// Reset restores the in-progress state: message back to LoadingMessage,
// phase Loading, outcome cleared.
func (w *Widget) Reset() *Widget {
	w.message = LoadingMessage
	w.phase = PhaseLoading
	w.outcome = OutcomeNone
	return w
}

// Show makes the widget visible with a fade-in, optionally replacing the
// message first.
func (w *Widget) Show(text ...string) *Widget {
	if len(text) > 0 {
		w.message = text[0]
	}
	w.visible = true
	w.arm(fadeIn, w.showDuration)
	return w
}

// Hide fades the widget out over d (default 1.5s). Phase, message, and
// registry membership are untouched.
func (w *Widget) Hide(d ...time.Duration) *Widget {
	dur := w.hideDuration
	if len(d) > 0 && d[0] > 0 {
		dur = d[0]
	}
	w.arm(fadeOut, dur)
	return w
}

// Final ends the loading phase: the spinner is swapped for a check mark
// (success) or warning mark (failure) and the message replaced.
func (w *Widget) Final(text string, success bool) *Widget {
	w.phase = PhaseFinal
	if success {
		w.outcome = OutcomeSuccess
	} else {
		w.outcome = OutcomeFailure
	}
	w.message = text
	return w
}

// Init implements the Elm triple.
func (w *Widget) Init() tea.Cmd {
	return w.Animate()
}

// Update advances the spinner, armed fades, and the dismiss key.
func (w *Widget) Update(msg tea.Msg) (*Widget, tea.Cmd) {
	if w.destroyed {
		return w, nil
	}
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if w.phase != PhaseLoading || !w.visible {
			return w, nil
		}
		var cmd tea.Cmd
		w.spin, cmd = w.spin.Update(msg)
		return w, cmd
	case fadeTickMsg:
		if msg.id != w.id || w.fade == nil {
			return w, nil
		}
		opacity, settled := w.fade.at(msg.at)
		w.opacity = opacity
		if !settled {
			return w, w.fadeTick()
		}
		if w.fade.direction == fadeOut {
			w.visible = false
		}
		close(w.fade.done)
		w.fade = nil
		return w, nil
	case tea.KeyMsg:
		if w.visible && msg.String() == w.dismissKey {
			if w.dismissDestroy {
				w.Destroy()
				return w, nil
			}
			w.Hide()
			return w, w.Animate()
		}
	}
	return w, nil
}

// View renders the widget box. Hidden widgets render empty.
func (w *Widget) View() string {
	if w.destroyed || (!w.visible && w.fade == nil) {
		return ""
	}

	var indicator string
	switch {
	case w.phase == PhaseLoading:
		indicator = w.spin.View()
	case w.outcome == OutcomeSuccess:
		indicator = w.styles.Success.Render(successMark)
	default:
		indicator = w.styles.Failure.Render(failureMark)
	}

	msg := w.message
	if w.maxWidth > 0 {
		msg = textutil.Truncate(msg, w.maxWidth)
	}

	hint := dismissMark + " " + w.dismissKey

	if w.fade != nil || w.opacity < 1 {
		// Mid-fade frames render on the gray ramp instead of the style set.
		ramp := lipgloss.NewStyle().Foreground(fadeColor(w.opacity))
		line := indicator + " " + ramp.Render(msg) + "  " + ramp.Render(hint)
		return w.styles.Box.BorderForeground(fadeColor(w.opacity)).Render(line)
	}

	line := indicator + " " + w.styles.Message.Render(msg) + "  " + w.styles.Dismiss.Render(hint)
	return w.styles.Box.Render(line)
}

// Offset returns the cell position of the widget's top-left corner: directly
// under its target. Screen-level widgets return the origin; use Overlay.
func (w *Widget) Offset() (x, y int) {
	if w.target.Page {
		return 0, 0
	}
	return w.target.X, w.target.Y + w.target.Height
}

// Overlay centers a screen-level widget in a width x height region.
func (w *Widget) Overlay(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, w.View())
}

// Message returns the current display text.
func (w *Widget) Message() string { return w.message }

// SetMessage replaces the display text; content is rendered verbatim and may
// carry its own styling.
func (w *Widget) SetMessage(text string) { w.message = text }

// Key returns the registry key, set once at successful Attach. Empty while
// detached.
func (w *Widget) Key() string { return w.key }

// Phase returns the lifecycle state.
func (w *Widget) Phase() Phase { return w.phase }

// Outcome returns the Final outcome, OutcomeNone while loading.
func (w *Widget) Outcome() Outcome { return w.outcome }

// Visible reports whether the widget currently renders.
func (w *Widget) Visible() bool { return w.visible }

// Superseded reports whether another widget took over this widget's key.
func (w *Widget) Superseded() bool { return w.superseded }

// Destroyed reports whether Destroy has run.
func (w *Widget) Destroyed() bool { return w.destroyed }

// Opacity returns the current fade level, 0 (hidden) to 1 (fully shown).
func (w *Widget) Opacity() float64 { return w.opacity }
