package game

import "sync"

// StateSnapshot is a point-in-time copy of the session flags.
type StateSnapshot struct {
	Started bool
	Paused  bool
	Over    bool
}

// Running reports whether the world should advance.
func (s StateSnapshot) Running() bool {
	return s.Started && !s.Paused && !s.Over
}

// State holds the session lifecycle. Its methods are the only way to change
// it; transitions that make no sense from the current state are ignored and
// report false.
type State struct {
	mu      sync.Mutex
	started bool
	paused  bool
	over    bool
}

// Start begins a session that has not started yet.
func (s *State) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return false
	}
	s.started = true
	return true
}

// End finishes a started session.
func (s *State) End() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.over {
		return false
	}
	s.over = true
	s.paused = false
	return true
}

// Pause freezes a running session.
func (s *State) Pause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.over || s.paused {
		return false
	}
	s.paused = true
	return true
}

// Resume unfreezes a paused session.
func (s *State) Resume() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.paused {
		return false
	}
	s.paused = false
	return true
}

// TogglePause pauses a running session or resumes a paused one.
func (s *State) TogglePause() bool {
	if s.Snapshot().Paused {
		return s.Resume()
	}
	return s.Pause()
}

// Reset returns to the not-started state.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.started = false
	s.paused = false
	s.over = false
}

// Snapshot copies the current flags.
func (s *State) Snapshot() StateSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return StateSnapshot{Started: s.started, Paused: s.paused, Over: s.over}
}

// Running reports whether the world should advance.
func (s *State) Running() bool {
	return s.Snapshot().Running()
}
