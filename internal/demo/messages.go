package demo

// OpDoneMsg is sent when a simulated operation finishes.
type OpDoneMsg struct {
	OpID    string // operation UUID, matches the span and log entries
	Key     string // registry key of the widget driving this operation
	Text    string // final message for the widget
	Success bool
}
