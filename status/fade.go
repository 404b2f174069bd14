package status

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Fade transition defaults. Hide keeps the original widget's 1.5s fade-out.
const (
	DefaultShowDuration = 400 * time.Millisecond
	DefaultHideDuration = 1500 * time.Millisecond

	fadeInterval = 50 * time.Millisecond
)

type fadeDirection int

const (
	fadeIn fadeDirection = iota + 1
	fadeOut
)

// fadeTickMsg advances the fade of one widget. Carries the widget instance ID
// so ticks from other widgets in the same program are ignored.
type fadeTickMsg struct {
	id string
	at time.Time
}

// fade is one armed opacity transition. Progress is computed from wall time so
// dropped ticks don't stall the animation.
type fade struct {
	direction fadeDirection
	from, to  float64
	start     time.Time
	duration  time.Duration
	done      chan struct{}
}

func newFade(dir fadeDirection, from float64, d time.Duration) *fade {
	to := 1.0
	if dir == fadeOut {
		to = 0.0
	}
	return &fade{
		direction: dir,
		from:      from,
		to:        to,
		start:     time.Now(),
		duration:  d,
		done:      make(chan struct{}),
	}
}

// at returns the opacity at time now and whether the transition has settled.
func (f *fade) at(now time.Time) (float64, bool) {
	if f.duration <= 0 {
		return f.to, true
	}
	frac := float64(now.Sub(f.start)) / float64(f.duration)
	if frac >= 1 {
		return f.to, true
	}
	if frac < 0 {
		frac = 0
	}
	return f.from + (f.to-f.from)*frac, false
}

// closedChan is returned by TransitionDone when no transition is armed.
var closedChan = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// arm starts a transition toward dir, superseding any armed one. The
// superseded transition's done channel is closed; overlapping fades are
// allowed and the newest wins.
func (w *Widget) arm(dir fadeDirection, d time.Duration) {
	if w.fade != nil {
		close(w.fade.done)
	}
	w.fade = newFade(dir, w.opacity, d)
}

// Animate returns the command pumping the spinner and any armed fade.
// Hosts return it from Init and after calling Show, Hide, or Reset.
func (w *Widget) Animate() tea.Cmd {
	if w.destroyed {
		return nil
	}
	var cmds []tea.Cmd
	if w.visible && w.phase == PhaseLoading {
		cmds = append(cmds, w.spin.Tick)
	}
	if w.fade != nil {
		cmds = append(cmds, w.fadeTick())
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// TransitionDone returns a channel closed when the armed fade settles (or is
// superseded). Returns an already-closed channel when the widget is idle, so
// callers can always select on it.
func (w *Widget) TransitionDone() <-chan struct{} {
	if w.fade != nil {
		return w.fade.done
	}
	return closedChan
}

func (w *Widget) fadeTick() tea.Cmd {
	id := w.id
	return tea.Tick(fadeInterval, func(t time.Time) tea.Msg {
		return fadeTickMsg{id: id, at: t}
	})
}
