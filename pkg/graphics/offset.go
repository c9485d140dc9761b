package graphics

import "math"

// Offset is a 2D translation in logical units.
type Offset struct {
	X, Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Scale returns the offset multiplied by factor.
func (o Offset) Scale(factor float64) Offset {
	return Offset{X: o.X * factor, Y: o.Y * factor}
}

// Distance returns the Euclidean length of the offset.
func (o Offset) Distance() float64 {
	return math.Hypot(o.X, o.Y)
}
