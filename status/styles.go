package status

import "github.com/charmbracelet/lipgloss"

// Theme colors used by the default styles.
const (
	ColorAccent  = "86"  // Cyan/green - spinner, border
	ColorSuccess = "78"  // Green - success mark
	ColorDanger  = "196" // Red - failure mark
	ColorMuted   = "241" // Gray - dismiss hint
	ColorText    = "252" // Light gray - message text
)

// Terminal state marks. The spinner is swapped for one of these when a
// widget goes Final.
const (
	successMark = "✓"
	failureMark = "⚠"
	dismissMark = "✕"
)

// Styles contains the style set a widget renders with. Replace individual
// entries or the whole set via WithStyles.
type Styles struct {
	Box     lipgloss.Style // container border
	Spinner lipgloss.Style
	Message lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Dismiss lipgloss.Style // dismiss hint (✕ plus the key)
}

// DefaultStyles returns the stock widget appearance.
func DefaultStyles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorAccent)).
			Padding(0, 1),
		Spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			Bold(true),
		Failure: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger)).
			Bold(true),
		Dismiss: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
	}
}

// fadeRamp maps opacity onto a dim-to-bright gray ramp; mid-fade frames render
// with a ramp color instead of the full style set.
var fadeRamp = [...]string{"235", "237", "239", "241", "243", "246", "249", "252"}

func fadeColor(opacity float64) lipgloss.Color {
	if opacity <= 0 {
		return lipgloss.Color(fadeRamp[0])
	}
	idx := int(opacity * float64(len(fadeRamp)-1))
	if idx >= len(fadeRamp) {
		idx = len(fadeRamp) - 1
	}
	return lipgloss.Color(fadeRamp[idx])
}
