package animation

import "fmt"

// AnimationState represents the observable state of an [Animable].
//
// The state machine allows every transition except Stopped -> Paused:
//
//	              SetState(Running)
//	Stopped ──────────────────────► Running ◄──┐
//	   ▲                              │  ▲     │ SetState(Running)
//	   │  SetState(Stopped)           │  └─────┤
//	   ├──────────────────────────────┘        │
//	   │                 SetState(Paused)      │
//	   └───────────────────────── Paused ──────┘
//
// Requested transitions take effect on the next [AnimableGroup.Step] call,
// not at request time.
type AnimationState uint8

const (
	// Stopped means the animation is not advancing. This is the initial
	// state; restarting from it begins a fresh episode at local time zero.
	Stopped AnimationState = iota
	// Paused means the animation keeps its elapsed time but receives no
	// updates until it is resumed.
	Paused
	// Running means the animation receives an update on every step.
	Running
)

// String returns a human-readable representation of the state.
func (s AnimationState) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	default:
		return fmt.Sprintf("AnimationState(%d)", int(s))
	}
}
