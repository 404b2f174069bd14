package status

// keyPrefix derives a registry key from a target identifier.
const keyPrefix = "smart-"

// PageKey is the sentinel registry key claimed by screen-level widgets.
// At most one widget holds it at a time.
const PageKey = "smart-page"

// Target is the region of the host UI a widget visually tracks.
// X/Y/Width/Height are terminal cell coordinates within the host layout.
type Target struct {
	ID     string
	X, Y   int
	Width  int
	Height int

	// Page marks a screen-level target. ID and bounds are ignored.
	Page bool
}

// PageTarget returns the screen-level target.
func PageTarget() Target {
	return Target{Page: true}
}

// Key returns the registry key this target binds under.
func (t Target) Key() string {
	if t.Page {
		return PageKey
	}
	return keyPrefix + t.ID
}
