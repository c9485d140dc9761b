// Package animation provides the per-frame animation scheduler for Lumen
// applications.
//
// # Core Components
//
//   - [Animable]: a single timed behavior with its own state machine,
//     duration and repeat policy, and lifecycle hooks.
//
//   - [AnimableGroup]: an ordered collection of animables with the single
//     scheduling entry point [AnimableGroup.Step], called once per frame.
//
//   - [Runner]: drives a group from a wall clock at a fixed frame interval.
//
//   - [Tween] and [Curve]: map an animable's local time to interpolated
//     values with optional easing.
//
// # Scheduling model
//
// State changes requested through [Animable.SetState] are deferred: the
// request is recorded immediately, but lifecycle hooks fire and the group's
// running count changes only when the owning group processes its next Step.
// Everything an animable observes therefore changes atomically once per
// frame, never interleaved with arbitrary caller code.
//
//	group := animation.NewAnimableGroup()
//	fade := animation.NewAnimable(object, 1.5, group)
//	fade.OnStep = func(localTime, delta float64) { ... }
//	fade.SetState(animation.Running)
//
//	// once per frame, from the driving loop:
//	group.Step(absoluteTime, deltaTime)
//
// The package performs no internal locking: all mutation is expected to
// happen on the goroutine driving the frame loop, and one Step call is the
// atomic unit of consistency.
package animation

import "github.com/go-lumen/lumen/pkg/scene"

// Animable is a single timed behavior attached to a host scene object.
//
// An animable advances only while it belongs to a group and that group is
// stepped. Its five hooks are all optional; a nil hook is a no-op. Hooks
// are invoked exclusively from within [AnimableGroup.Step]. Calling
// SetState from inside a hook records a request for the next frame and
// never affects the frame being processed.
type Animable struct {
	// OnStarted fires when a Stopped -> Running transition is applied.
	OnStarted func()
	// OnPaused fires when a Running -> Paused transition is applied.
	OnPaused func()
	// OnResumed fires when a Paused -> Running transition is applied.
	OnResumed func()
	// OnStopped fires when a transition to Stopped is applied, whether
	// requested or automatic (duration or repeat limit exhausted).
	OnStopped func()
	// OnStep fires on every step while the animable is running. localTime
	// is the elapsed time within the current episode (wrapped into the
	// current loop iteration for repeated animables); delta is the frame
	// delta passed to Step, forwarded untouched.
	OnStep func(localTime, delta float64)

	object *scene.Object
	group  *AnimableGroup

	duration    float64
	repeated    bool
	repeatCount int

	// currentState is what SetState last recorded and what State reports.
	// previousState is what the scheduler last applied; the two differing
	// is the pending-transition marker consumed by the next Step.
	currentState  AnimationState
	previousState AnimationState

	// startTime is the absolute time the current running episode's clock
	// was established. pauseTime is the elapsed time captured when a pause
	// was applied, used to rebuild startTime on resume.
	startTime float64
	pauseTime float64
}

// NewAnimable creates an animable associated with the given host object.
//
// duration is in seconds; zero means unbounded (the animable never stops on
// its own). If group is non-nil the animable is added to it immediately.
// The host object is opaque to the scheduler: it exists so external
// subsystems can map an animable back to scene placement.
func NewAnimable(object *scene.Object, duration float64, group *AnimableGroup) *Animable {
	a := &Animable{
		object:   object,
		duration: duration,
	}
	if group != nil {
		group.Add(a)
	}
	return a
}

// Object returns the host object the animable is associated with.
func (a *Animable) Object() *scene.Object { return a.object }

// Group returns the group the animable currently belongs to, or nil.
func (a *Animable) Group() *AnimableGroup { return a.group }

// Duration returns the animation duration in seconds; zero means unbounded.
func (a *Animable) Duration() float64 { return a.duration }

// SetDuration changes the animation duration. Takes effect on the next
// step; changing the duration of a running animable rescales its remaining
// lifetime against the same start time.
func (a *Animable) SetDuration(duration float64) *Animable {
	a.duration = duration
	return a
}

// IsRepeated reports whether the animation loops when its duration elapses.
func (a *Animable) IsRepeated() bool { return a.repeated }

// SetRepeated enables or disables looping. Repeating has effect only with a
// positive duration.
func (a *Animable) SetRepeated(repeated bool) *Animable {
	a.repeated = repeated
	return a
}

// RepeatCount returns the loop iteration cap; zero means unlimited.
func (a *Animable) RepeatCount() int { return a.repeatCount }

// SetRepeatCount caps the number of loop iterations. Zero removes the cap.
func (a *Animable) SetRepeatCount(count int) *Animable {
	a.repeatCount = count
	return a
}

// State returns the animable's observable state. Immediately after a
// SetState call this reflects the requested state, even though the
// transition's hooks and bookkeeping run only on the next group step.
func (a *Animable) State() AnimationState { return a.currentState }

// SetState requests a state transition.
//
// The request is applied by the owning group's next Step call; SetState
// itself never fires hooks, never touches timing fields and never changes
// the group's running count. Requests overwrite each other: only the last
// one recorded before a step is honored. A Stopped -> Paused request is
// invalid and silently ignored. Returns the animable for chaining.
func (a *Animable) SetState(state AnimationState) *Animable {
	if a.currentState == state {
		return a
	}
	// There is no elapsed time to freeze before the animation ever ran.
	if a.currentState == Stopped && state == Paused {
		return a
	}
	a.currentState = state
	return a
}
