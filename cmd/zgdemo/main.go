// Command zgdemo demonstrates the zedgraph charting library.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	zedgraph "github.com/DragonZX/ZedGraph"
	"github.com/DragonZX/ZedGraph/render"
)

func main() {
	var (
		width   = flag.Int("width", 900, "image width")
		height  = flag.Int("height", 540, "image height")
		output  = flag.String("output", "demo.png", "output file (.png or .svg)")
		days    = flag.Int("days", 90, "number of days of sample data")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		zedgraph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	pane := zedgraph.NewGraphPane(
		zedgraph.WithTitle("Server Response Time"),
		zedgraph.WithTargetSteps(8, 6),
	)
	pane.XAxis.Title = "Date"
	pane.YAxis.Title = "Latency (ms)"

	times, p50, p99 := sampleSeries(*days)
	pane.AddTimeCurve("p50", times, p50).Color = zedgraph.Hex("#1f77b4")
	pane.AddTimeCurve("p99", times, p99).Color = zedgraph.Hex("#d62728")

	if err := save(pane, *output, *width, *height); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func save(pane *zedgraph.GraphPane, output string, w, h int) error {
	if strings.HasSuffix(output, ".svg") {
		svg := render.NewSVG(w, h)
		if err := pane.Draw(svg); err != nil {
			return err
		}
		return svg.Save(output)
	}
	img := render.NewImage(w, h)
	if err := pane.Draw(img); err != nil {
		return err
	}
	return img.SavePNG(output)
}

// sampleSeries builds a deterministic latency-like series: a daily cycle on
// a slow upward drift, with the tail percentile spiking once a week.
func sampleSeries(days int) (times []time.Time, p50, p99 []float64) {
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < days; i++ {
		t := start.AddDate(0, 0, i)
		base := 40 + 0.08*float64(i) + 6*math.Sin(2*math.Pi*float64(i)/7)
		tail := base*2.5 + 15*math.Sin(2*math.Pi*float64(i)/30)
		if i%7 == 5 {
			tail += 60
		}
		times = append(times, t)
		p50 = append(p50, base)
		p99 = append(p99, tail)
	}
	return times, p50, p99
}
