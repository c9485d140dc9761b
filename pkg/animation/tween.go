package animation

import "github.com/go-lumen/lumen/pkg/graphics"

// Tween interpolates between Begin and End values based on animation
// progress.
//
// Tween maps the [0, 1] progress of a bounded animable to any value range
// or type. Use the helper constructors ([TweenFloat64], [TweenOffset],
// [TweenColor]) for common types, or create custom tweens with a Lerp
// function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp interpolates between Begin and End. Receives the begin value,
	// end value, and progress t in [0, 1]. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Drive wires the tween to an animable's update hook: on every step the
// animable's local time is normalized against its duration, shaped by
// curve, and the interpolated value handed to apply.
//
// An unbounded animable (duration zero) has no notion of progress, so it
// always receives the end value; drive bounded animables only. A nil curve
// means linear.
func (tw *Tween[T]) Drive(a *Animable, curve Curve, apply func(T)) {
	if curve == nil {
		curve = Linear
	}
	a.OnStep = func(localTime, _ float64) {
		t := 1.0
		if d := a.Duration(); d > 0 {
			t = localTime / d
		}
		apply(tw.Evaluate(curve(t)))
	}
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b graphics.Offset, t float64) graphics.Offset {
	return graphics.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpColor interpolates between two colors in CIE-Luv space, which keeps
// intermediate hues perceptually sensible where naive RGB blending turns
// muddy. Alpha is interpolated separately and linearly.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	t = clampUnit(t)
	blended := a.Colorful().BlendLuv(b.Colorful(), t)
	return graphics.FromColorful(blended).WithAlpha(LerpFloat64(a.Alpha(), b.Alpha(), t))
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenOffset creates a tween for Offset values.
func TweenOffset(begin, end graphics.Offset) *Tween[graphics.Offset] {
	return &Tween[graphics.Offset]{
		Begin: begin,
		End:   end,
		Lerp:  LerpOffset,
	}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{
		Begin: begin,
		End:   end,
		Lerp:  LerpColor,
	}
}
