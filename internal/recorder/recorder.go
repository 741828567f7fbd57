// Package recorder implements the hand-presence debounce that decides which
// captured frames make up a gesture sample.
//
// The machine is generic over the frame type so it can be driven with plain
// integers in tests and with gocv.Mat values by the capture loop.
package recorder

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is returned by Params.Validate.
var ErrInvalidParams = errors.New("invalid recorder parameters")

// State is the recording state after a step.
type State int

const (
	// Idle means no hand is visible and nothing is buffered.
	Idle State = iota
	// Recording means frames are being accumulated.
	Recording
	// ConfirmingStop means the hand disappeared and the machine is waiting
	// out the grace delay before finalizing the sample.
	ConfirmingStop
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recording:
		return "recording"
	case ConfirmingStop:
		return "confirming-stop"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Overlay is the status banner to show for a step.
type Overlay int

const (
	// OverlayNone is used for warm-up frames inside the leading margin.
	OverlayNone Overlay = iota
	// OverlayRecording is shown while frames are being kept.
	OverlayRecording
	// OverlayWaiting is shown when the machine is idle.
	OverlayWaiting
)

// Params controls how recordings are debounced and trimmed.
type Params struct {
	// MarginFrames are dropped at the start of a recording and, together
	// with DelayFrames, trimmed from its end.
	MarginFrames int
	// MinFrames is the minimum sample length before trimming, on top of
	// MarginFrames.
	MinFrames int
	// DelayFrames is how many hand-less frames are tolerated before a
	// recording is finalized.
	DelayFrames int
}

// DefaultParams returns the parameters the capture tool ships with.
func DefaultParams() Params {
	return Params{
		MarginFrames: 1,
		MinFrames:    5,
		DelayFrames:  3,
	}
}

// Validate checks that the parameters describe a usable debounce.
func (p Params) Validate() error {
	if p.MarginFrames < 0 {
		return fmt.Errorf("%w: margin frames must be >= 0, got %d", ErrInvalidParams, p.MarginFrames)
	}
	if p.MinFrames < 1 {
		return fmt.Errorf("%w: min frames must be >= 1, got %d", ErrInvalidParams, p.MinFrames)
	}
	if p.DelayFrames < 0 {
		return fmt.Errorf("%w: delay frames must be >= 0, got %d", ErrInvalidParams, p.DelayFrames)
	}
	return nil
}

// MinBuffered is the buffer length a recording needs to become a sample.
func (p Params) MinBuffered() int {
	return p.MinFrames + p.MarginFrames
}

// Trim is the number of frames cut from the tail of a finished recording.
func (p Params) Trim() int {
	return p.MarginFrames + p.DelayFrames
}

// Step describes what happened to one frame.
//
// Frames handed in with Kept == false, and every frame in Released, are
// back in the caller's ownership. Sample frames are too, once the caller
// has persisted them.
type Step[F any] struct {
	State   State
	Overlay Overlay
	Kept    bool
	// Sample holds the trimmed frames of a finished recording, in capture
	// order. Nil unless a sample was completed on this step.
	Sample []F
	// Released holds buffered frames dropped on this step: the trimmed
	// tail of a sample or a recording that was too short.
	Released []F
}

// Machine is the Idle / Recording / ConfirmingStop state machine.
// It is not safe for concurrent use.
type Machine[F any] struct {
	params   Params
	state    State
	frames   []F
	count    int
	debounce int
	sticky   bool
}

// New creates a Machine in the Idle state.
func New[F any](params Params) *Machine[F] {
	return &Machine[F]{
		params: params,
		state:  Idle,
	}
}

// Step feeds one frame and its hand-presence signal into the machine.
func (m *Machine[F]) Step(present bool, frame F) Step[F] {
	if present || m.sticky {
		m.sticky = false
		m.count++
		m.state = Recording

		if m.count <= m.params.MarginFrames {
			return Step[F]{State: m.state, Overlay: OverlayNone}
		}

		m.frames = append(m.frames, frame)
		return Step[F]{State: m.state, Overlay: OverlayRecording, Kept: true}
	}

	if len(m.frames) >= m.params.MinBuffered() {
		m.debounce++
		if m.debounce < m.params.DelayFrames {
			// Grace window: the next frame is recorded whatever the
			// detector says.
			m.sticky = true
			m.state = ConfirmingStop
			return Step[F]{State: m.state, Overlay: OverlayRecording}
		}

		sample, released := m.split()
		m.reset()
		return Step[F]{State: m.state, Overlay: OverlayWaiting, Sample: sample, Released: released}
	}

	released := m.frames
	m.reset()
	return Step[F]{State: m.state, Overlay: OverlayWaiting, Released: released}
}

// split cuts the trailing margin and delay frames off the buffer.
// Frames added during the grace window can leave fewer frames than the
// trim needs, so the remaining length is re-checked here.
func (m *Machine[F]) split() (sample, released []F) {
	keep := len(m.frames) - m.params.Trim()
	if keep <= 0 {
		return nil, m.frames
	}
	return m.frames[:keep:keep], m.frames[keep:]
}

func (m *Machine[F]) reset() {
	m.state = Idle
	m.frames = nil
	m.count = 0
	m.debounce = 0
	m.sticky = false
}

// Drain discards the current recording and returns its buffered frames.
// The capture loop calls it on exit so no frame is leaked.
func (m *Machine[F]) Drain() []F {
	frames := m.frames
	m.reset()
	return frames
}

// State returns the current state.
func (m *Machine[F]) State() State {
	return m.state
}

// Len returns the number of buffered frames.
func (m *Machine[F]) Len() int {
	return len(m.frames)
}

// Params returns the parameters the machine was created with.
func (m *Machine[F]) Params() Params {
	return m.params
}
