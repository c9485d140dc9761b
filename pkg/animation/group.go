package animation

import "math"

// AnimableGroup is an ordered collection of animables sharing one
// scheduling entry point.
//
// A group maintains its running count incrementally: every applied
// transition adjusts the counter by exactly the edge it crosses, so
// [AnimableGroup.RunningCount] is an O(1) read that is exact after every
// Step call without ever rescanning the members.
type AnimableGroup struct {
	members []*Animable
	running int
}

// NewAnimableGroup creates an empty group.
func NewAnimableGroup() *AnimableGroup {
	return &AnimableGroup{}
}

// Add appends an animable to the group. An animable belongs to at most one
// group; if it is already a member of another group it is moved. Membership
// changes never touch the running count: a freshly added animable with a
// pending Running request is only counted once a later Step applies it.
func (g *AnimableGroup) Add(a *Animable) {
	if a.group == g {
		return
	}
	if a.group != nil {
		a.group.Remove(a)
	}
	a.group = g
	g.members = append(g.members, a)
}

// Remove detaches an animable from the group.
//
// Like Add, this is a pure membership edit: it does not adjust the running
// count. Stop an animable and step the group before removing it, otherwise
// the counter keeps accounting for the departed member.
func (g *AnimableGroup) Remove(a *Animable) {
	if a.group != g {
		return
	}
	for i, m := range g.members {
		if m == a {
			g.members = append(g.members[:i], g.members[i+1:]...)
			break
		}
	}
	a.group = nil
}

// Len returns the number of members.
func (g *AnimableGroup) Len() int { return len(g.members) }

// RunningCount returns the number of members currently in the Running
// state.
func (g *AnimableGroup) RunningCount() int { return g.running }

// Step advances the group by one frame.
//
// absolute is the driving loop's absolute time and delta the time since the
// previous frame, both in seconds; absolute is trusted to be monotonically
// non-decreasing. For each member, in insertion order, Step first applies
// any pending state transition (firing the matching lifecycle hook and
// adjusting the running count). If the member ended up running it then
// invokes its update hook with the local time reconstructed from the same
// absolute time. A member that just started or resumed therefore receives
// an update in the same call; one that just paused or stopped does not.
//
// Stepping an empty or fully stopped group does nothing.
func (g *AnimableGroup) Step(absolute, delta float64) {
	for _, a := range g.members {
		// Snapshot the state being applied: a hook requesting another
		// transition mid-step must not affect this frame.
		state := a.currentState

		if state != a.previousState {
			switch state {
			case Running:
				if a.previousState == Paused {
					a.startTime = absolute - a.pauseTime
					a.previousState = Running
					g.running++
					if a.OnResumed != nil {
						a.OnResumed()
					}
				} else {
					a.startTime = absolute
					a.previousState = Running
					g.running++
					if a.OnStarted != nil {
						a.OnStarted()
					}
				}
			case Paused:
				// Only reachable from Running; SetState rejects the
				// Stopped -> Paused request outright.
				a.pauseTime = absolute - a.startTime
				a.previousState = Paused
				g.running--
				if a.OnPaused != nil {
					a.OnPaused()
				}
				continue
			case Stopped:
				if a.previousState == Running {
					g.running--
				}
				a.previousState = Stopped
				if a.OnStopped != nil {
					a.OnStopped()
				}
				continue
			}
		} else if state != Running {
			continue
		}

		elapsed := absolute - a.startTime
		switch {
		case a.duration == 0:
			if a.OnStep != nil {
				a.OnStep(elapsed, delta)
			}
		case !a.repeated:
			if elapsed > a.duration {
				g.autoStop(a)
				continue
			}
			if a.OnStep != nil {
				a.OnStep(elapsed, delta)
			}
		default:
			iteration := math.Floor(elapsed / a.duration)
			if a.repeatCount > 0 && int(iteration) >= a.repeatCount {
				g.autoStop(a)
				continue
			}
			if a.OnStep != nil {
				a.OnStep(elapsed-iteration*a.duration, delta)
			}
		}
	}
}

// autoStop applies a Running -> Stopped transition on the scheduler's own
// initiative, with the same hook and counter semantics as a requested stop.
func (g *AnimableGroup) autoStop(a *Animable) {
	a.currentState = Stopped
	a.previousState = Stopped
	g.running--
	if a.OnStopped != nil {
		a.OnStopped()
	}
}
