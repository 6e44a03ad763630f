package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spriteapp/backend"
	"github.com/milk9111/spriteapp/spriteapp"
)

func main() {
	x := flag.Float64("x", 0, "left stick x")
	y := flag.Float64("y", 1, "left stick y")
	grid := flag.Int("grid", 0, "print the angle for an NxN grid of stick positions in [-1,1]")
	frames := flag.Int("frames", 0, "print the sprite rotation after this many frames at -x/-y")
	window := flag.Bool("window", false, "open a window with the stick held at -x/-y")
	flag.Parse()

	switch {
	case *window:
		runWindow(float32(*x), float32(*y))
	case *grid > 0:
		printGrid(os.Stdout, *grid)
	case *frames > 0:
		printFrames(os.Stdout, float32(*x), float32(*y), *frames)
	default:
		fmt.Printf("%.4f\n", spriteapp.StickAngle(float32(*x), float32(*y)))
	}
}

func printGrid(w io.Writer, n int) {
	steps := gridSteps(n)
	fmt.Fprintf(w, "%8s", "y\\x")
	for _, x := range steps {
		fmt.Fprintf(w, " %9.2f", x)
	}
	fmt.Fprintln(w)
	for _, y := range steps {
		fmt.Fprintf(w, "%8.2f", y)
		for _, x := range steps {
			fmt.Fprintf(w, " %9.4f", spriteapp.StickAngle(x, y))
		}
		fmt.Fprintln(w)
	}
}

func gridSteps(n int) []float32 {
	if n == 1 {
		return []float32{0}
	}
	steps := make([]float32, n)
	for i := range steps {
		steps[i] = -1 + 2*float32(i)/float32(n-1)
	}
	return steps
}

// printFrames drives the sample app with a fixed stick for the given number
// of frames and prints the rotation after each one.
func printFrames(w io.Writer, x, y float32, n int) {
	eng := backend.New(backend.Options{Gamepads: fixedStick{x: x, y: y}})
	opts := spriteapp.DefaultOptions()
	opts.FontName = ""
	opts.Logger = log.New(io.Discard, "", 0)
	app := spriteapp.New(eng, opts)
	if err := app.Init(); err != nil {
		log.Fatal(err)
	}
	defer app.CleanUp()

	for i := 1; i <= n; i++ {
		app.Update(1.0 / 60)
		s := app.Sprite()
		fmt.Fprintf(w, "%d %.4f\n", i, s.Rotation)
	}
}

func runWindow(x, y float32) {
	eng := backend.New(backend.Options{ClearColour: 0xff202020, Gamepads: fixedStick{x: x, y: y}})
	app := spriteapp.New(eng, spriteapp.DefaultOptions())
	ebiten.SetWindowSize(960, 544)
	ebiten.SetWindowTitle(fmt.Sprintf("stick %.2f,%.2f", x, y))
	if err := backend.NewDriver(eng, app).Run(nil); err != nil {
		log.Fatal(err)
	}
}
