// Command lumen plays a YAML timeline against the animation scheduler and
// prints the values it produces. It exists to exercise the library end to
// end from a terminal; real applications embed the scheduler in their own
// frame loop.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-lumen/lumen/pkg/animation"
	"github.com/go-lumen/lumen/pkg/graphics"
	"github.com/go-lumen/lumen/pkg/scene"
	"github.com/go-lumen/lumen/pkg/timeline"
)

// logSink prints every animated value with its target and property.
type logSink struct{}

func (logSink) SetFloat(target *scene.Object, property string, value float64) {
	log.Printf("%s.%s = %.3f", target.Name(), property, value)
}

func (logSink) SetColor(target *scene.Object, property string, value graphics.Color) {
	log.Printf("%s.%s = %s", target.Name(), property, value)
}

func main() {
	configPath := flag.String("config", "timeline.yaml", "YAML timeline file.")
	fps := flag.Int("fps", 30, "Frames per second.")
	runFor := flag.Duration("for", 5*time.Second, "How long to play.")
	flag.Parse()
	if *fps <= 0 {
		log.Fatalf("fps must be positive, got %d", *fps)
	}

	tl, err := timeline.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if len(tl.Clips) == 0 {
		log.Fatalf("%s contains no clips", *configPath)
	}

	group := animation.NewAnimableGroup()
	inst := tl.Instantiate(group, logSink{})
	inst.StartAll()
	log.Printf("playing %d clips from %s", len(tl.Clips), *configPath)

	ctx, cancel := context.WithTimeout(context.Background(), *runFor)
	defer cancel()

	runner := animation.NewRunner(group, time.Second/time.Duration(*fps))
	if err := runner.Run(ctx); err != nil && err != context.DeadlineExceeded {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for name, a := range inst.Animables {
		log.Printf("%s: %s", name, a.State())
	}
	log.Printf("%d of %d still running", group.RunningCount(), group.Len())
}
