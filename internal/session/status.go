// ABOUTME: Load status state machine for the session lifecycle.
// ABOUTME: NotLoaded -> Loading -> Loaded; Loaded is terminal per session.
package session

// LoadStatus tracks whether the initial cloud load for the current
// session has resolved. The autosave scheduler never fires before
// StatusLoaded - otherwise a burst of default values could overwrite a
// returning user's cloud document.
type LoadStatus int

const (
	StatusNotLoaded LoadStatus = iota
	StatusLoading
	StatusLoaded
)

func (s LoadStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	default:
		return "not_loaded"
	}
}
