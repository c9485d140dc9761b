// Package timeline loads declarative animation clips from YAML and
// instantiates them as animables in a group.
//
// A timeline document is a list of clips, each naming a target object, a
// property, a duration/repeat policy, an easing curve and a value range:
//
//	clips:
//	  - name: fade-in
//	    target: title
//	    property: opacity
//	    duration: 1.5
//	    curve: out-quad
//	    from: 0
//	    to: 1
//	  - name: tint
//	    target: badge
//	    property: fill
//	    duration: 2
//	    repeat: true
//	    repeat_limit: 3
//	    curve: in-out-sine
//	    color_from: black
//	    color_to: "#ff8040"
//
// Validation happens entirely at load time; instantiated animables cannot
// fail at runtime.
package timeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-lumen/lumen/pkg/animation"
	"github.com/go-lumen/lumen/pkg/errors"
	"github.com/go-lumen/lumen/pkg/graphics"
)

// ClipKind distinguishes what value type a clip animates.
type ClipKind int

const (
	// FloatClip animates a scalar property between From and To.
	FloatClip ClipKind = iota
	// ColorClip animates a color property between ColorFrom and ColorTo.
	ColorClip
)

// Clip is one validated animation definition.
type Clip struct {
	// Name identifies the clip within its timeline.
	Name string
	// Target names the scene object the clip animates.
	Target string
	// Property names the animated property on the target.
	Property string
	// Duration is the clip length in seconds, always positive: a tween
	// needs an end. Unbounded animations are built directly against
	// pkg/animation, not declared in a timeline.
	Duration float64
	// Repeat loops the clip each Duration.
	Repeat bool
	// RepeatLimit caps loop iterations; zero means unlimited.
	RepeatLimit int
	// Curve shapes the clip's progress.
	Curve animation.Curve

	Kind      ClipKind
	From, To  float64
	ColorFrom graphics.Color
	ColorTo   graphics.Color
}

// Timeline is an ordered set of clips parsed from one document.
type Timeline struct {
	Clips []Clip
}

type fileConfig struct {
	Clips []clipConfig `yaml:"clips"`
}

type clipConfig struct {
	Name        string   `yaml:"name"`
	Target      string   `yaml:"target"`
	Property    string   `yaml:"property"`
	Duration    float64  `yaml:"duration"`
	Repeat      bool     `yaml:"repeat"`
	RepeatLimit int      `yaml:"repeat_limit"`
	Curve       string   `yaml:"curve"`
	From        *float64 `yaml:"from"`
	To          *float64 `yaml:"to"`
	ColorFrom   string   `yaml:"color_from"`
	ColorTo     string   `yaml:"color_to"`
}

// Load reads and parses a timeline document from path.
func Load(path string) (*Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.E("timeline.Load", errors.KindConfig, err)
	}
	return Parse(data)
}

// Parse parses a timeline document.
func Parse(data []byte) (*Timeline, error) {
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.E("timeline.Parse", errors.KindParsing, err)
	}

	t := &Timeline{Clips: make([]Clip, 0, len(cfg.Clips))}
	for i, c := range cfg.Clips {
		clip, err := c.validate(i)
		if err != nil {
			return nil, errors.E("timeline.Parse", errors.KindConfig, err)
		}
		t.Clips = append(t.Clips, clip)
	}
	return t, nil
}

func (c clipConfig) validate(index int) (Clip, error) {
	name := c.Name
	if name == "" {
		name = fmt.Sprintf("clip[%d]", index)
	}
	fail := func(format string, args ...any) (Clip, error) {
		return Clip{}, fmt.Errorf("%s: %s", name, fmt.Sprintf(format, args...))
	}

	if c.Target == "" {
		return fail("missing target")
	}
	if c.Duration <= 0 {
		return fail("duration must be positive, got %v", c.Duration)
	}
	if c.RepeatLimit < 0 {
		return fail("negative repeat_limit %d", c.RepeatLimit)
	}
	if c.RepeatLimit > 0 && !c.Repeat {
		return fail("repeat_limit without repeat")
	}

	curve := animation.Curve(animation.Linear)
	if c.Curve != "" {
		var ok bool
		if curve, ok = animation.CurveByName(c.Curve); !ok {
			return fail("unknown curve %q (known: %v)", c.Curve, animation.CurveNames())
		}
	}

	scalar := c.From != nil || c.To != nil
	colored := c.ColorFrom != "" || c.ColorTo != ""
	switch {
	case scalar && colored:
		return fail("mixes from/to with color_from/color_to")
	case colored:
		if c.ColorFrom == "" || c.ColorTo == "" {
			return fail("color clips need both color_from and color_to")
		}
		from, err := graphics.ParseColor(c.ColorFrom)
		if err != nil {
			return fail("color_from: %v", err)
		}
		to, err := graphics.ParseColor(c.ColorTo)
		if err != nil {
			return fail("color_to: %v", err)
		}
		return Clip{
			Name: name, Target: c.Target, Property: c.Property,
			Duration: c.Duration, Repeat: c.Repeat, RepeatLimit: c.RepeatLimit,
			Curve: curve, Kind: ColorClip, ColorFrom: from, ColorTo: to,
		}, nil
	case scalar:
		if c.From == nil || c.To == nil {
			return fail("scalar clips need both from and to")
		}
		return Clip{
			Name: name, Target: c.Target, Property: c.Property,
			Duration: c.Duration, Repeat: c.Repeat, RepeatLimit: c.RepeatLimit,
			Curve: curve, Kind: FloatClip, From: *c.From, To: *c.To,
		}, nil
	default:
		return fail("needs either from/to or color_from/color_to")
	}
}
