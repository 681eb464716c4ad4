package shell

import "fmt"

// captureState tracks the shell's raw capture mode during a file write. The
// storage write command switches the remote shell from command interpretation
// to capturing payload bytes, and only an interrupt byte switches it back.
// Modeling the mode explicitly keeps payload writes out of command mode and
// command writes out of capture mode.
type captureState uint8

const (
	// captureIdle: the shell interprets commands, no transfer in flight
	captureIdle captureState = iota

	// captureStreaming: the shell is in raw capture mode, payload bytes flow
	captureStreaming

	// captureAwaitingPrompt: the interrupt byte was sent, waiting for the
	// post-capture prompt that confirms the shell left capture mode
	captureAwaitingPrompt
)

func (c captureState) String() string {
	switch c {
	case captureIdle:
		return "idle"
	case captureStreaming:
		return "streaming"
	case captureAwaitingPrompt:
		return "awaiting-prompt"
	default:
		return fmt.Sprintf("captureState(%d)", uint8(c))
	}
}

// validCaptureTransition reports whether the capture machine allows moving
// from one state to another. The only cycle is
// idle -> streaming -> awaiting-prompt -> idle.
func validCaptureTransition(from, to captureState) bool {
	switch from {
	case captureIdle:
		return to == captureStreaming
	case captureStreaming:
		return to == captureAwaitingPrompt
	case captureAwaitingPrompt:
		return to == captureIdle
	}
	return false
}

// setCapture advances the capture machine, rejecting illegal transitions.
func (s *Session) setCapture(to captureState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !validCaptureTransition(s.capture, to) {
		return fmt.Errorf("illegal capture transition %s -> %s", s.capture, to)
	}
	s.capture = to
	return nil
}

// captureMode returns the current capture state.
func (s *Session) captureMode() captureState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capture
}
