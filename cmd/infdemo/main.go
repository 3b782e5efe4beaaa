// Command infdemo exercises the infinite-zoom canvas engine headlessly:
// it draws strokes, pinch-drills through several telescoping levels, and
// saves a software-rendered preview of the final view.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/infcanvas"
	"github.com/gogpu/infcanvas/render"
)

func main() {
	var (
		width   = flag.Int("width", 1000, "view width in pixels")
		height  = flag.Int("height", 1000, "view height in pixels")
		output  = flag.String("output", "infdemo.png", "output file")
		levels  = flag.Int("levels", 3, "telescoping levels to drill down")
		save    = flag.String("save", "", "optional path to save the document JSON")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		infcanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	eng := infcanvas.NewEngine(
		infcanvas.WithViewSize(float64(*width), float64(*height)),
	)

	center := infcanvas.Pt(float64(*width)/2, float64(*height)/2)
	for level := 0; level <= *levels; level++ {
		drawSpiral(eng, center, level)
		if level < *levels {
			drillOnce(eng, center)
		}
	}

	// A little rotation and pan so the preview shows the full camera.
	eng.RotateBegan(center, 2)
	eng.RotateChanged(math.Pi/12, center, 2)
	eng.RotateEnded()
	eng.PanChanged(infcanvas.Pt(30, -20))

	cam := eng.Camera()
	log.Printf("active frame depth %d, zoom %.3f, %d strokes in view",
		eng.ActiveFrame().DepthFromRoot, cam.Zoom, len(eng.FrameInstances()))

	if *save != "" {
		f, err := os.Create(*save)
		if err != nil {
			log.Fatalf("Failed to create document file: %v", err)
		}
		if err := eng.SaveDocument(f); err != nil {
			log.Fatalf("Failed to save document: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("Failed to close document file: %v", err)
		}
	}

	target := render.NewPixmapTarget(*width, *height)
	renderer := render.NewSoftwareRenderer()
	if err := renderer.Render(target, eng.FrameInstances()); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	out, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := target.EncodePNG(out); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("Failed to close output: %v", err)
	}
	log.Printf("Preview saved to %s (%dx%d)", *output, *width, *height)
}

// drawSpiral commits a few strokes around the view center so every
// telescoping level leaves visible ink. Colors rotate with the level.
func drawSpiral(eng *infcanvas.Engine, center infcanvas.Point, level int) {
	colors := []infcanvas.RGBA{
		infcanvas.RGB(0.85, 0.2, 0.2),
		infcanvas.RGB(0.2, 0.55, 0.85),
		infcanvas.RGB(0.2, 0.7, 0.3),
		infcanvas.RGB(0.8, 0.6, 0.1),
	}
	eng.SetBrush(colors[level%len(colors)], 5, true)

	const arms = 3
	for arm := 0; arm < arms; arm++ {
		phase := float64(arm) * 2 * math.Pi / arms
		start := center.Add(infcanvas.Pt(60*math.Cos(phase), 60*math.Sin(phase)))
		eng.TouchBegan(start)
		for i := 1; i <= 24; i++ {
			t := float64(i) / 24
			angle := phase + 3*math.Pi*t
			radius := 60 + 180*t
			eng.TouchMoved(center.Add(infcanvas.Pt(radius*math.Cos(angle), radius*math.Sin(angle))))
		}
		eng.TouchEnded(center.Add(infcanvas.Pt(240*math.Cos(phase+3*math.Pi), 240*math.Sin(phase+3*math.Pi))))
	}
}

// drillOnce pinches at the view center until the zoom crosses the
// drill-down threshold, in incremental ticks the way a recognizer
// delivers them.
func drillOnce(eng *infcanvas.Engine, center infcanvas.Point) {
	eng.PinchBegan(center, 2)
	before := eng.ActiveFrame().DepthFromRoot
	for eng.ActiveFrame().DepthFromRoot == before {
		eng.PinchChanged(1.6, center, 2)
	}
	eng.PinchEnded()
}
