package animation_test

import (
	"fmt"

	"github.com/go-lumen/lumen/pkg/animation"
	"github.com/go-lumen/lumen/pkg/scene"
)

// This example shows the deferred transition model: requests recorded with
// SetState are applied, and hooks fired, by the group's next Step.
func ExampleAnimableGroup_Step() {
	group := animation.NewAnimableGroup()
	object := scene.NewObject("title")

	fade := animation.NewAnimable(object, 2.0, group)
	fade.OnStarted = func() { fmt.Println("started") }
	fade.OnStopped = func() { fmt.Println("stopped") }
	fade.OnStep = func(localTime, delta float64) {
		fmt.Printf("t=%.1f\n", localTime)
	}

	fade.SetState(animation.Running)
	fmt.Println("running:", group.RunningCount())

	group.Step(0.0, 0.5) // applies the start, then updates at t=0
	group.Step(0.5, 0.5)
	group.Step(2.5, 2.0) // past the 2s duration: stops instead of updating
	fmt.Println("running:", group.RunningCount())

	// Output:
	// running: 0
	// started
	// t=0.0
	// t=0.5
	// stopped
	// running: 0
}

// This example shows a repeating animation wrapping its local time each
// period until the iteration cap is reached.
func ExampleAnimable_SetRepeated() {
	group := animation.NewAnimableGroup()
	object := scene.NewObject("spinner")

	spin := animation.NewAnimable(object, 1.0, group).
		SetRepeated(true).
		SetRepeatCount(2)
	spin.OnStep = func(localTime, delta float64) {
		fmt.Printf("t=%.2f\n", localTime)
	}
	spin.SetState(animation.Running)

	group.Step(0.0, 0.25)  // first iteration
	group.Step(1.25, 0.25) // second iteration, wrapped
	group.Step(2.25, 0.25) // cap reached: stopped
	fmt.Println(spin.State())

	// Output:
	// t=0.00
	// t=0.25
	// Stopped
}

// This example shows a tween driving a scalar property through an easing
// curve.
func ExampleTween_Drive() {
	group := animation.NewAnimableGroup()
	object := scene.NewObject("panel")

	slide := animation.NewAnimable(object, 2.0, group)
	curve, _ := animation.CurveByName("in-quad")
	animation.TweenFloat64(0, 100).Drive(slide, curve, func(x float64) {
		fmt.Printf("x=%.0f\n", x)
	})

	slide.SetState(animation.Running)
	group.Step(0.0, 1.0)
	group.Step(1.0, 1.0)
	group.Step(2.0, 1.0)

	// Output:
	// x=0
	// x=25
	// x=100
}
