package timeline

import (
	"github.com/go-lumen/lumen/pkg/animation"
	"github.com/go-lumen/lumen/pkg/graphics"
	"github.com/go-lumen/lumen/pkg/scene"
)

// Sink receives the values produced by instantiated clips. The rendering
// side of an application implements this to route animated values onto
// whatever holds the real properties.
type Sink interface {
	SetFloat(target *scene.Object, property string, value float64)
	SetColor(target *scene.Object, property string, value graphics.Color)
}

// Instance is a timeline bound to a group: one host object per distinct
// target and one animable per clip.
type Instance struct {
	// Objects maps target names to their host objects.
	Objects map[string]*scene.Object
	// Animables maps clip names to their animables, in case individual
	// clips need to be controlled after instantiation.
	Animables map[string]*animation.Animable
}

// Instantiate builds the timeline's clips as animables in group, routing
// produced values to sink.
//
// Clips sharing a target name share one host object. The animables are
// created stopped; request Running on them (or call [Instance.StartAll])
// and step the group to begin playback.
func (t *Timeline) Instantiate(group *animation.AnimableGroup, sink Sink) *Instance {
	inst := &Instance{
		Objects:   make(map[string]*scene.Object),
		Animables: make(map[string]*animation.Animable, len(t.Clips)),
	}

	for _, clip := range t.Clips {
		obj, ok := inst.Objects[clip.Target]
		if !ok {
			obj = scene.NewObject(clip.Target)
			inst.Objects[clip.Target] = obj
		}

		a := animation.NewAnimable(obj, clip.Duration, group).
			SetRepeated(clip.Repeat).
			SetRepeatCount(clip.RepeatLimit)

		property := clip.Property
		switch clip.Kind {
		case ColorClip:
			animation.TweenColor(clip.ColorFrom, clip.ColorTo).
				Drive(a, clip.Curve, func(v graphics.Color) {
					sink.SetColor(obj, property, v)
				})
		default:
			animation.TweenFloat64(clip.From, clip.To).
				Drive(a, clip.Curve, func(v float64) {
					sink.SetFloat(obj, property, v)
				})
		}

		inst.Animables[clip.Name] = a
	}
	return inst
}

// StartAll requests Running on every animable. Transitions apply on the
// group's next step, as with any other state request.
func (inst *Instance) StartAll() {
	for _, a := range inst.Animables {
		a.SetState(animation.Running)
	}
}

// StopAll requests Stopped on every animable.
func (inst *Instance) StopAll() {
	for _, a := range inst.Animables {
		a.SetState(animation.Stopped)
	}
}
