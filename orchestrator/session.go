package orchestrator

import "sync"

// Mode reports whether a session is still talking to the real evaluation
// service or has switched to locally generated demo data.
type Mode int

const (
	ModeUnset Mode = iota
	ModeLive
	ModeDemo
)

func (m Mode) String() string {
	switch m {
	case ModeLive:
		return "live"
	case ModeDemo:
		return "demo"
	default:
		return "unset"
	}
}

// Session holds the idea under evaluation and the live/demo flag consulted by
// the analysis flows. Demo mode is sticky: once a session has fallen back, the
// condition that caused it (typically quota exhaustion) is assumed not to
// self-heal, so the session stays on demo data until an explicit Reset.
type Session struct {
	mu          sync.Mutex
	mode        Mode
	title       string
	description string
}

func NewSession() *Session {
	return &Session{}
}

// Begin records the idea being evaluated. The mode is left alone so a demo
// session stays demo across resubmissions.
func (s *Session) Begin(title, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
	s.description = description
}

// Idea returns the current idea's title and description.
func (s *Session) Idea() (title, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title, s.description
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// markLive records a successful live evaluation. It does not override sticky
// demo mode.
func (s *Session) markLive() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeDemo {
		s.mode = ModeLive
	}
}

func (s *Session) markDemo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeDemo
}

// Reset clears the mode and the held idea, used at logout and back-navigation.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeUnset
	s.title = ""
	s.description = ""
}
