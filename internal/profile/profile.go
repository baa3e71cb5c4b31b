// Package profile records how long each scanline takes to render and
// plots the results.
package profile

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"
	"time"

	"github.com/thelolagemann/ndsppu/internal/ppu"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Recorder accumulates scanline render times per engine. It
// implements gpu.Profiler.
type Recorder struct {
	mu     sync.Mutex
	total  [2][ppu.ScreenHeight]time.Duration
	counts [2][ppu.ScreenHeight]int
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record adds the render time d of scanline line of engine id.
func (r *Recorder) Record(id ppu.ID, line int, d time.Duration) {
	if line < 0 || line >= ppu.ScreenHeight {
		return
	}
	r.mu.Lock()
	r.total[id&1][line] += d
	r.counts[id&1][line]++
	r.mu.Unlock()
}

// Mean returns the mean render time of each scanline of engine id.
// Scanlines never recorded are 0.
func (r *Recorder) Mean(id ppu.ID) []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	means := make([]time.Duration, ppu.ScreenHeight)
	for y, n := range r.counts[id&1] {
		if n > 0 {
			means[y] = r.total[id&1][y] / time.Duration(n)
		}
	}
	return means
}

// Total returns the total render time recorded for engine id.
func (r *Recorder) Total(id ppu.ID) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total time.Duration
	for _, d := range r.total[id&1] {
		total += d
	}
	return total
}

// Reset discards every recorded time.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.total = [2][ppu.ScreenHeight]time.Duration{}
	r.counts = [2][ppu.ScreenHeight]int{}
	r.mu.Unlock()
}

var lineColours = [2]color.Color{
	color.RGBA{R: 0xD0, G: 0x30, B: 0x30, A: 0xFF},
	color.RGBA{R: 0x30, G: 0x60, B: 0xD0, A: 0xFF},
}

// Plot draws the mean render time of each scanline of both engines,
// in microseconds, to an image of the given size.
func (r *Recorder) Plot(width, height int) (*image.RGBA, error) {
	p := plot.New()
	p.Title.Text = "Scanline Time"
	p.X.Label.Text = "scanline"
	p.Y.Label.Text = "µs"

	for _, id := range []ppu.ID{ppu.Main, ppu.Sub} {
		means := r.Mean(id)
		xys := make(plotter.XYs, len(means))
		for y, d := range means {
			xys[y].X = float64(y)
			xys[y].Y = float64(d) / float64(time.Microsecond)
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("profile: plotting %s engine: %w", id, err)
		}
		line.Color = lineColours[id]
		p.Add(line)
		p.Legend.Add(id.String(), line)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	c := vgimg.NewWith(vgimg.UseImage(img))
	p.Draw(draw.New(c))
	return img, nil
}

// WritePlot encodes the plot of Plot to w as a PNG.
func (r *Recorder) WritePlot(w io.Writer, width, height int) error {
	img, err := r.Plot(width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
