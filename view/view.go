// Package view holds the two-state view machine driving the UI: Home and
// Details. Transitions are pure functions over State; Session serializes
// access to the one logical browser session the process serves.
package view

import (
	"errors"
	"sync"
)

// ErrNoSelection indicates a Details transition without a usable movie id.
var ErrNoSelection = errors.New("details view requires a positive movie id")

// Screen identifies a top-level UI mode
type Screen int

const (
	// Home shows the search box and the category feed
	Home Screen = iota
	// Details shows one movie's metadata and its recommendations
	Details
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case Home:
		return "home"
	case Details:
		return "details"
	default:
		return "unknown"
	}
}

// State is the session view state. The zero value is the initial state:
// Home with no selection.
type State struct {
	Screen     Screen
	SelectedID int64
}

// GoHome returns the Home state with the selection cleared
func (State) GoHome() State {
	return State{Screen: Home}
}

// GoDetails returns the Details state selecting id. The id must be positive;
// otherwise the state is unchanged and ErrNoSelection is returned.
func (s State) GoDetails(id int64) (State, error) {
	if id <= 0 {
		return s, ErrNoSelection
	}
	return State{Screen: Details, SelectedID: id}, nil
}

// Valid reports whether the selection invariant holds: Details always has a
// positive SelectedID.
func (s State) Valid() bool {
	return s.Screen != Details || s.SelectedID > 0
}

// Session owns the view state for the single logical browser session this
// process serves. HTTP handlers run on separate goroutines, so access is
// mutex-guarded.
type Session struct {
	mu    sync.Mutex
	state State
}

// NewSession returns a session in the initial Home state
func NewSession() *Session {
	return &Session{}
}

// Current returns the current view state
func (s *Session) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// GoHome transitions the session to Home and returns the new state
func (s *Session) GoHome() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.GoHome()
	return s.state
}

// GoDetails transitions the session to Details for id
func (s *Session) GoDetails(id int64) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.state.GoDetails(id)
	if err != nil {
		return s.state, err
	}
	s.state = next
	return s.state, nil
}
