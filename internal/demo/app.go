// Package demo is the smartstatus showcase app: a row of fake action buttons,
// each of which runs a simulated async operation with a status widget
// attached underneath.
package demo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	oteltrace "go.opentelemetry.io/otel/trace"

	"smartstatus/internal/config"
	"smartstatus/status"
)

const (
	buttonWidth = 14
	buttonGap   = 2
)

// button is a fake action target. Its bounds feed the widget's placement.
type button struct {
	label  string
	op     operation
	target status.Target
}

// Model is the demo's root tea model.
type Model struct {
	cfg    config.Config
	log    *zap.SugaredLogger
	tracer oteltrace.Tracer
	ctx    context.Context

	reg     *status.Registry
	buttons []button
	widgets map[string]*status.Widget // key -> live widget
	page    *status.Widget
	spans   map[string]oteltrace.Span // opID -> open span

	selected int
	width    int
	height   int
}

var (
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(status.ColorMuted)).
			Padding(0, 1).
			Width(buttonWidth)
	buttonSelectedStyle = buttonStyle.
				BorderForeground(lipgloss.Color(status.ColorAccent)).
				Bold(true)
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(status.ColorMuted))
)

// New builds the demo model.
func New(cfg config.Config, log *zap.SugaredLogger, tracer oteltrace.Tracer) *Model {
	m := &Model{
		cfg:     cfg,
		log:     log,
		tracer:  tracer,
		ctx:     context.Background(),
		reg:     status.NewRegistry(),
		widgets: make(map[string]*status.Widget),
		spans:   make(map[string]oteltrace.Span),
	}
	defs := []struct {
		label string
		id    string
		op    operation
	}{
		{"Upload", "btn-upload", operation{"Uploading", "Upload complete", "Upload failed", 40}},
		{"Sync", "btn-sync", operation{"Syncing", "Sync complete", "Sync failed", 20}},
		{"Export", "btn-export", operation{"Exporting", "Export complete", "Export failed", 30}},
	}
	for i, s := range defs {
		m.buttons = append(m.buttons, button{
			label: s.label,
			op:    s.op,
			target: status.Target{
				ID:     s.id,
				X:      i * (buttonWidth + buttonGap),
				Y:      1,
				Width:  buttonWidth,
				Height: 3,
			},
		})
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// widgetOptions carries the config-driven options every demo widget gets.
func (m *Model) widgetOptions() []status.Option {
	return []status.Option{
		status.WithRegistry(m.reg),
		status.WithLogger(m.log),
		status.WithDismissKey(m.cfg.DismissKey),
		status.WithDismissDestroy(m.cfg.DismissDestroys),
		status.WithFadeDurations(m.cfg.ShowDuration(), m.cfg.HideDuration()),
		status.WithMaxWidth(m.cfg.MaxMessageWidth),
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	case OpDoneMsg:
		m.finishOp(msg)
		if w, ok := m.reg.Find(msg.Key); ok {
			w.Final(msg.Text, msg.Success)
		}
		return m, nil
	}

	// Fan the message out to every live widget (spinner and fade ticks,
	// dismiss keys).
	for key, w := range m.widgets {
		updated, cmd := w.Update(msg)
		m.widgets[key] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if m.page != nil {
		var cmd tea.Cmd
		m.page, cmd = m.page.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit, true
	case "left", "h":
		if m.selected > 0 {
			m.selected--
		}
		return nil, true
	case "right", "l":
		if m.selected < len(m.buttons)-1 {
			m.selected++
		}
		return nil, true
	case "enter":
		return m.trigger(m.buttons[m.selected]), true
	case "r":
		if w, ok := m.reg.Find(m.buttons[m.selected].target.Key()); ok {
			w.Reset().Show()
			return w.Animate(), true
		}
		return nil, true
	case "D":
		key := m.buttons[m.selected].target.Key()
		if w, ok := m.reg.Find(key); ok {
			w.Destroy()
			delete(m.widgets, key)
		}
		return nil, true
	case "p":
		return m.togglePage(), true
	}
	return nil, false
}

// trigger starts the selected button's operation. A second trigger while a
// widget is still bound takes the binding over, keeping the fresh message.
func (m *Model) trigger(b button) tea.Cmd {
	key := b.target.Key()
	_, taken := m.reg.Find(key)

	w, err := status.New(runningMessage(b.op), m.widgetOptions()...).Attach(b.target, taken)
	if err != nil {
		if errors.Is(err, status.ErrAlreadyAttached) {
			m.log.Warnw("attach rejected", "key", key)
		}
		return nil
	}
	m.widgets[key] = w
	w.Show()
	return tea.Batch(w.Animate(), m.startOp(b, b.op))
}

// togglePage shows or hides the screen-level widget.
func (m *Model) togglePage() tea.Cmd {
	if m.page != nil && !m.page.Destroyed() {
		m.page.Hide()
		cmd := m.page.Animate()
		m.page.Destroy()
		m.page = nil
		return cmd
	}
	w, err := status.New("Working...", m.widgetOptions()...).Attach(status.PageTarget(), false)
	if err != nil {
		m.log.Warnw("page attach rejected", "err", err)
		return nil
	}
	m.page = w
	w.Show()
	return w.Animate()
}

// View implements tea.Model.
func (m *Model) View() string {
	var row []string
	for i, b := range m.buttons {
		style := buttonStyle
		if i == m.selected {
			style = buttonSelectedStyle
		}
		row = append(row, style.Render(b.label))
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, row...)

	var widgetRow []string
	for _, b := range m.buttons {
		cell := ""
		if w, ok := m.reg.Find(b.target.Key()); ok {
			cell = w.View()
		}
		widgetRow = append(widgetRow, lipgloss.NewStyle().Width(buttonWidth+buttonGap).Render(cell))
	}
	widgets := lipgloss.JoinHorizontal(lipgloss.Top, widgetRow...)

	hint := hintStyle.Render(fmt.Sprintf(
		"enter: run  r: reset  %s: dismiss  D: destroy  p: page status  q: quit",
		m.cfg.DismissKey))

	sections := []string{buttons, widgets, "", hint}
	base := strings.Join(sections, "\n")

	if m.page != nil && m.page.View() != "" {
		overlayHeight := m.height - lipgloss.Height(base) - 1
		if overlayHeight < 5 {
			overlayHeight = 5
		}
		base += "\n" + m.page.Overlay(max(m.width, 20), overlayHeight)
	}
	return base
}

// Close ends any open spans and tears the registry down. Call on exit.
func (m *Model) Close() {
	for _, span := range m.spans {
		span.End()
	}
	m.reg.Reset()
}
