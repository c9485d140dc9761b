package animation

import "time"

// Clock provides time for a [Runner]. The default implementation uses
// system time; tests inject a fake clock to control animation timing
// deterministically.
type Clock interface {
	Now() time.Time
}

// systemClock uses system time.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock used by runners unless replaced.
var SystemClock Clock = systemClock{}
