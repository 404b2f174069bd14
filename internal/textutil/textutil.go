// Package textutil provides unicode-aware text helpers for TUI rendering.
package textutil

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended when a string is truncated.
const Ellipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the column width of a string that may carry ANSI
// escape codes.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate clamps s to maxWidth visual columns, appending an ellipsis when
// anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}

	budget := maxWidth - VisualWidth(Ellipsis)
	if budget < 0 {
		return Ellipsis
	}

	var out []rune
	used := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > budget {
			break
		}
		out = append(out, r)
		used += rw
	}
	return string(out) + Ellipsis
}

// PadRightVisual pads s with spaces to targetWidth columns, truncating when
// it is already wider.
func PadRightVisual(s string, targetWidth int) string {
	width := VisualWidth(s)
	if width >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + runewidth.FillRight("", targetWidth-width)
}
