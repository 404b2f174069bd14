package status

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testTarget(id string) Target {
	return Target{ID: id, X: 4, Y: 2, Width: 10, Height: 3}
}

// settleFade drives the widget's armed fade to completion with synthetic
// ticks.
func settleFade(t *testing.T, w *Widget) {
	t.Helper()
	for i := 0; i < 100; i++ {
		if w.fade == nil {
			return
		}
		w.Update(fadeTickMsg{id: w.id, at: time.Now().Add(time.Hour)})
	}
	t.Fatal("fade did not settle")
}

func TestAttachOncePerIdentifier(t *testing.T) {
	reg := NewRegistry()

	a, err := New("Uploading", WithRegistry(reg)).Attach(testTarget("btn1"), false)
	if err != nil {
		t.Fatalf("first attach: %v", err)
	}
	if a.Key() != "smart-btn1" {
		t.Errorf("Key = %q, want smart-btn1", a.Key())
	}

	b := New("Second", WithRegistry(reg))
	if _, err := b.Attach(testTarget("btn1"), false); !errors.Is(err, ErrAlreadyAttached) {
		t.Fatalf("second attach: err = %v, want ErrAlreadyAttached", err)
	}
	// Failed attach leaves the registry unchanged.
	if got, _ := reg.Find("smart-btn1"); got != a {
		t.Error("registry entry changed after rejected attach")
	}
	if reg.Len() != 1 {
		t.Errorf("registry Len = %d, want 1", reg.Len())
	}
	if b.Destroyed() {
		t.Error("rejected attach must not destroy the widget")
	}
}

func TestAttachEmptyIdentifier(t *testing.T) {
	reg := NewRegistry()
	w := New("Loading", WithRegistry(reg))

	_, err := w.Attach(Target{}, false)
	if !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("err = %v, want ErrInvalidTarget", err)
	}
	if !w.Destroyed() {
		t.Error("widget should self-destroy on invalid target")
	}
	if reg.Len() != 0 {
		t.Errorf("registry Len = %d, want 0", reg.Len())
	}
}

func TestPageSentinelHeldOnce(t *testing.T) {
	reg := NewRegistry()

	a, err := New("Working", WithRegistry(reg)).Attach(PageTarget(), false)
	if err != nil {
		t.Fatalf("page attach: %v", err)
	}
	if a.Key() != PageKey {
		t.Errorf("Key = %q, want %q", a.Key(), PageKey)
	}

	b := New("Other", WithRegistry(reg))
	if _, err := b.Attach(PageTarget(), false); !errors.Is(err, ErrAlreadyAttached) {
		t.Fatalf("second page attach: err = %v, want ErrAlreadyAttached", err)
	}
	// Page-level collision does not self-destroy.
	if b.Destroyed() {
		t.Error("widget destroyed after page collision")
	}

	a.Destroy()
	if _, err := New("Again", WithRegistry(reg)).Attach(PageTarget(), false); err != nil {
		t.Errorf("page attach after destroy: %v", err)
	}
}

func TestFinalSetsMessageAndOutcome(t *testing.T) {
	w := New("Working", WithRegistry(NewRegistry()))

	w.Final("All done", true)
	if w.Message() != "All done" {
		t.Errorf("Message = %q", w.Message())
	}
	if w.Phase() != PhaseFinal || w.Outcome() != OutcomeSuccess {
		t.Errorf("phase/outcome = %v/%v", w.Phase(), w.Outcome())
	}

	w.Final("Broke", false)
	if w.Outcome() != OutcomeFailure {
		t.Errorf("Outcome = %v, want failure", w.Outcome())
	}
}

func TestResetRestoresLoading(t *testing.T) {
	w := New("Working", WithRegistry(NewRegistry()))
	w.Final("Broke", false)

	w.Reset()
	if w.Message() != LoadingMessage {
		t.Errorf("Message = %q, want %q", w.Message(), LoadingMessage)
	}
	if w.Phase() != PhaseLoading || w.Outcome() != OutcomeNone {
		t.Errorf("phase/outcome = %v/%v after Reset", w.Phase(), w.Outcome())
	}
}

func TestDestroyFreesKey(t *testing.T) {
	reg := NewRegistry()
	w, err := New("Working", WithRegistry(reg)).Attach(testTarget("btn2"), false)
	if err != nil {
		t.Fatal(err)
	}

	w.Destroy()
	w.Destroy() // repeated calls are safe

	if reg.Len() != 0 {
		t.Errorf("registry Len = %d after destroy", reg.Len())
	}
	if _, err := New("Next", WithRegistry(reg)).Attach(testTarget("btn2"), false); err != nil {
		t.Errorf("re-attach after destroy: %v", err)
	}
}

func TestOverwriteTransfersOwnership(t *testing.T) {
	reg := NewRegistry()

	a, err := New("Uploading", WithRegistry(reg)).Attach(testTarget("btn1"), false)
	if err != nil {
		t.Fatal(err)
	}
	a.Show()
	settleFade(t, a)
	if got, ok := reg.Find("smart-btn1"); !ok || got != a {
		t.Fatal("find should resolve to A before takeover")
	}

	a.Final("Upload failed", false)
	if a.Message() != "Upload failed" {
		t.Fatalf("A message = %q", a.Message())
	}

	b, err := New("Retrying", WithRegistry(reg)).Attach(testTarget("btn1"), true)
	if err != nil {
		t.Fatalf("overwrite attach: %v", err)
	}
	got, ok := reg.Find("smart-btn1")
	if !ok || got != b {
		t.Fatal("find should resolve to B after takeover")
	}
	if got.Message() != "Retrying" {
		t.Errorf("message after takeover = %q, want caller's", got.Message())
	}
	// B adopted A's on-screen state.
	if !b.Visible() {
		t.Error("B should inherit A's visibility")
	}
	if b.Opacity() != a.Opacity() {
		t.Errorf("B opacity = %v, want A's %v", b.Opacity(), a.Opacity())
	}
	// A is stale but observable.
	if !a.Superseded() {
		t.Error("A should report superseded")
	}
	if a.Destroyed() {
		t.Error("superseded is not destroyed")
	}

	// A stale Destroy must not evict B.
	a.Destroy()
	if _, ok := reg.Find("smart-btn1"); !ok {
		t.Error("stale destroy evicted the takeover widget")
	}
}

func TestShowHideFade(t *testing.T) {
	w := New("Working", WithRegistry(NewRegistry()))

	w.Show("Uploading")
	if w.Message() != "Uploading" {
		t.Errorf("Show text: got %q", w.Message())
	}
	if !w.Visible() {
		t.Error("visible after Show")
	}
	done := w.TransitionDone()
	settleFade(t, w)
	select {
	case <-done:
	default:
		t.Error("fade-in done channel not closed")
	}
	if w.Opacity() != 1 {
		t.Errorf("opacity = %v after fade-in", w.Opacity())
	}

	w.Hide(200 * time.Millisecond)
	if !w.Visible() {
		t.Error("Hide takes effect only after the fade settles")
	}
	settleFade(t, w)
	if w.Visible() {
		t.Error("visible after fade-out settled")
	}
	if w.Opacity() != 0 {
		t.Errorf("opacity = %v after fade-out", w.Opacity())
	}
	// Phase and message survive Hide.
	if w.Phase() != PhaseLoading || w.Message() != "Uploading" {
		t.Error("Hide must not change phase or message")
	}
}

func TestOverlappingFadesNewestWins(t *testing.T) {
	w := New("Working", WithRegistry(NewRegistry()))
	w.Show()
	first := w.TransitionDone()
	w.Hide()

	// Arming the second fade settles the first immediately.
	select {
	case <-first:
	default:
		t.Error("superseded fade's done channel should be closed")
	}
	settleFade(t, w)
	if w.Visible() {
		t.Error("hide should win")
	}
}

func TestDismissKeyHides(t *testing.T) {
	reg := NewRegistry()
	w, err := New("Working", WithRegistry(reg)).Attach(testTarget("btn1"), false)
	if err != nil {
		t.Fatal(err)
	}
	w.Show()
	settleFade(t, w)

	w.Update(keyMsg("x"))
	settleFade(t, w)
	if w.Visible() {
		t.Error("dismiss key should hide the widget")
	}
	// Hide-only dismiss keeps the registry entry.
	if _, ok := reg.Find("smart-btn1"); !ok {
		t.Error("dismiss must not unregister by default")
	}
}

func TestDismissKeyDestroyMode(t *testing.T) {
	reg := NewRegistry()
	w, err := New("Working", WithRegistry(reg), WithDismissDestroy(true)).
		Attach(testTarget("btn1"), false)
	if err != nil {
		t.Fatal(err)
	}
	w.Show()
	settleFade(t, w)

	w.Update(keyMsg("x"))
	if !w.Destroyed() {
		t.Error("dismiss should destroy in destroy mode")
	}
	if reg.Len() != 0 {
		t.Error("destroy-mode dismiss should unregister")
	}
}

func TestViewContent(t *testing.T) {
	w := New("Working", WithRegistry(NewRegistry()))
	if w.View() != "" {
		t.Error("detached hidden widget should render empty")
	}

	w.Show("Uploading files")
	settleFade(t, w)
	out := w.View()
	if !strings.Contains(out, "Uploading files") {
		t.Errorf("view missing message: %q", out)
	}
	if !strings.Contains(out, "✕ x") {
		t.Errorf("view missing dismiss hint: %q", out)
	}

	w.Final("Upload complete", true)
	if out := w.View(); !strings.Contains(out, "✓") {
		t.Errorf("success view missing check mark: %q", out)
	}
	w.Final("Upload failed", false)
	if out := w.View(); !strings.Contains(out, "⚠") {
		t.Errorf("failure view missing warning mark: %q", out)
	}

	w.Destroy()
	if w.View() != "" {
		t.Error("destroyed widget should render empty")
	}
}

func TestViewTruncatesMessage(t *testing.T) {
	w := New("Working", WithRegistry(NewRegistry()), WithMaxWidth(10))
	w.Show("a very long status message")
	settleFade(t, w)
	if out := w.View(); !strings.Contains(out, "…") {
		t.Errorf("expected truncated message in view: %q", out)
	}
}

func TestOffset(t *testing.T) {
	reg := NewRegistry()
	w, err := New("Working", WithRegistry(reg)).Attach(testTarget("btn1"), false)
	if err != nil {
		t.Fatal(err)
	}
	// Directly under the target: same left edge, below its bottom.
	x, y := w.Offset()
	if x != 4 || y != 5 {
		t.Errorf("Offset = (%d,%d), want (4,5)", x, y)
	}

	p, err := New("Working", WithRegistry(reg)).Attach(PageTarget(), false)
	if err != nil {
		t.Fatal(err)
	}
	if x, y := p.Offset(); x != 0 || y != 0 {
		t.Errorf("page Offset = (%d,%d)", x, y)
	}
}

func TestAttachedConstructor(t *testing.T) {
	reg := NewRegistry()
	w, err := Attached("Uploading", testTarget("btn9"), WithRegistry(reg))
	if err != nil {
		t.Fatal(err)
	}
	if w.Key() != "smart-btn9" || w.Message() != "Uploading" {
		t.Errorf("Attached: key=%q message=%q", w.Key(), w.Message())
	}
}

func TestEmptyMessageDefaultsToLoading(t *testing.T) {
	w := New("", WithRegistry(NewRegistry()))
	if w.Message() != LoadingMessage {
		t.Errorf("Message = %q, want %q", w.Message(), LoadingMessage)
	}
}
