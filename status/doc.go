// Package status provides an embeddable status widget for Bubble Tea programs.
//
// A Widget shows a spinner, a message, and a dismiss hint for one in-flight
// operation, bound either to a named region of the host UI (a Target) or to
// the whole screen. A process-wide Registry guarantees at most one widget per
// target, keyed by "smart-<id>" (or the page sentinel for screen-level
// widgets).
//
// Core pieces:
//   - Widget: Elm-style component (Init/Update/View) with chainable
//     Show/Hide/Final/Reset state transitions
//   - Registry: key -> widget ownership table; injectable, with a
//     process-wide default for convenience
//   - Target: the region a widget visually tracks; widgets sit directly
//     under their target
//   - fades: show/hide run as tick-driven transitions; fire-and-forget by
//     default, awaitable through TransitionDone
//
// All widget methods are meant to be called from the host's update loop; the
// registry is safe for concurrent lookup from commands.
package status
