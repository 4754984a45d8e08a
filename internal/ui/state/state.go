package state

// AppState contains the presenter's UI state that is not navigation
type AppState struct {
	// Terminal size in cells
	Width  int
	Height int

	// UI state
	ShowHelp      bool
	StatusMessage string // status bar message
	StatusIsError bool
	StatusSeq     int  // bumped on every new status so stale expiries are ignored
	InPagerMode   bool // an external pager owns the terminal
	Quitting      bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// SetStatus replaces the status message and returns its sequence number
func (s *AppState) SetStatus(msg string, isError bool) int {
	s.StatusSeq++
	s.StatusMessage = msg
	s.StatusIsError = isError
	return s.StatusSeq
}

// ClearStatus clears the status message if seq is still the latest one
func (s *AppState) ClearStatus(seq int) {
	if seq != s.StatusSeq {
		return
	}
	s.StatusMessage = ""
	s.StatusIsError = false
}
