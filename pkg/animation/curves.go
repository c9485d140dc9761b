package animation

import (
	"sort"

	"github.com/fogleman/ease"
)

// Curve transforms normalized animation progress in [0, 1] into eased
// progress. Inputs are clamped, so local times that overshoot a duration
// degrade to the curve's end value instead of extrapolating.
type Curve func(t float64) float64

// Linear returns progress unchanged (no easing).
func Linear(t float64) float64 { return clampUnit(t) }

// eased adapts a fogleman/ease function into a clamping Curve.
func eased(fn func(float64) float64) Curve {
	return func(t float64) float64 { return fn(clampUnit(t)) }
}

// curves maps config-friendly names to easing functions.
var curves = map[string]Curve{
	"linear":         Linear,
	"in-quad":        eased(ease.InQuad),
	"out-quad":       eased(ease.OutQuad),
	"in-out-quad":    eased(ease.InOutQuad),
	"in-cubic":       eased(ease.InCubic),
	"out-cubic":      eased(ease.OutCubic),
	"in-out-cubic":   eased(ease.InOutCubic),
	"in-quart":       eased(ease.InQuart),
	"out-quart":      eased(ease.OutQuart),
	"in-out-quart":   eased(ease.InOutQuart),
	"in-sine":        eased(ease.InSine),
	"out-sine":       eased(ease.OutSine),
	"in-out-sine":    eased(ease.InOutSine),
	"in-expo":        eased(ease.InExpo),
	"out-expo":       eased(ease.OutExpo),
	"in-out-expo":    eased(ease.InOutExpo),
	"in-circ":        eased(ease.InCirc),
	"out-circ":       eased(ease.OutCirc),
	"in-out-circ":    eased(ease.InOutCirc),
	"in-back":        eased(ease.InBack),
	"out-back":       eased(ease.OutBack),
	"in-out-back":    eased(ease.InOutBack),
	"in-elastic":     eased(ease.InElastic),
	"out-elastic":    eased(ease.OutElastic),
	"in-out-elastic": eased(ease.InOutElastic),
	"in-bounce":      eased(ease.InBounce),
	"out-bounce":     eased(ease.OutBounce),
	"in-out-bounce":  eased(ease.InOutBounce),
}

// CurveByName looks up an easing curve by its configuration name
// (e.g. "out-quad"). The second result reports whether the name is known.
func CurveByName(name string) (Curve, bool) {
	c, ok := curves[name]
	return c, ok
}

// CurveNames returns all known curve names, sorted, for diagnostics.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// clampUnit clamps a value to the range [0, 1].
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
