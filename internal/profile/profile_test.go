package profile

import (
	"bytes"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/thelolagemann/ndsppu/internal/ppu"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Record(ppu.Main, 0, 10*time.Microsecond)
	r.Record(ppu.Main, 0, 20*time.Microsecond)
	r.Record(ppu.Sub, 191, 5*time.Microsecond)
	r.Record(ppu.Sub, 192, time.Second)
	r.Record(ppu.Sub, -1, time.Second)

	if got := r.Mean(ppu.Main)[0]; got != 15*time.Microsecond {
		t.Errorf("expected mean of 15µs, got %s", got)
	}
	if got := r.Mean(ppu.Main)[1]; got != 0 {
		t.Errorf("expected unrecorded scanline to be 0, got %s", got)
	}
	if got := r.Total(ppu.Sub); got != 5*time.Microsecond {
		t.Errorf("expected out of range scanlines to be ignored, got %s", got)
	}

	r.Reset()
	if got := r.Total(ppu.Main); got != 0 {
		t.Errorf("expected reset to clear the recorder, got %s", got)
	}
}

func TestRecorderConcurrent(t *testing.T) {
	r := NewRecorder()
	var wg sync.WaitGroup
	for _, id := range []ppu.ID{ppu.Main, ppu.Sub} {
		wg.Add(1)
		go func(id ppu.ID) {
			defer wg.Done()
			for y := 0; y < ppu.ScreenHeight; y++ {
				r.Record(id, y, time.Microsecond)
			}
		}(id)
	}
	wg.Wait()

	for _, id := range []ppu.ID{ppu.Main, ppu.Sub} {
		if got := r.Total(id); got != ppu.ScreenHeight*time.Microsecond {
			t.Errorf("%s: expected %s, got %s", id, ppu.ScreenHeight*time.Microsecond, got)
		}
	}
}

func TestPlot(t *testing.T) {
	r := NewRecorder()
	for y := 0; y < ppu.ScreenHeight; y++ {
		r.Record(ppu.Main, y, time.Duration(y)*time.Microsecond)
		r.Record(ppu.Sub, y, 2*time.Microsecond)
	}

	var buf bytes.Buffer
	if err := r.WritePlot(&buf, 320, 240); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("expected 320x240 plot, got %v", b)
	}
}
