// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package alert

// State is the presentation flag of the overlay.
//
// It stores whether the alert is suppressed: the zero value is not
// suppressed, so the overlay is visible.
type State struct {
	suppressed bool
}

// NewState returns a State with the given suppression flag.
func NewState(suppressed bool) State {
	return State{suppressed: suppressed}
}

// Suppressed reports whether the overlay is hidden.
func (s State) Suppressed() bool {
	return s.suppressed
}

// Visible reports whether the overlay is shown.
func (s State) Visible() bool {
	return !s.suppressed
}

// Toggle flips the flag.
func (s *State) Toggle() {
	s.suppressed = !s.suppressed
}

// Suppress hides the overlay. Calling it on a hidden overlay is a no-op.
func (s *State) Suppress() {
	s.suppressed = true
}

// Show makes the overlay visible.
func (s *State) Show() {
	s.suppressed = false
}
