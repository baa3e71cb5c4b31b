// Package gpu provides the 2D graphics system of the Nintendo DS: a
// main and a sub engine sharing one memory, addressed through their
// IO registers.
package gpu

import (
	"fmt"
	"sync"
	"time"

	"github.com/thelolagemann/ndsppu/internal/ppu"
	"github.com/thelolagemann/ndsppu/internal/types/registers"
	"github.com/thelolagemann/ndsppu/pkg/log"
)

// Profiler receives the time taken to render each scanline. It is
// called from both engines concurrently.
type Profiler interface {
	Record(id ppu.ID, line int, d time.Duration)
}

// GPU owns the two 2D engines.
type GPU struct {
	engines [2]*ppu.Engine
	regs    [2]*registers.Set

	swap     bool
	affine   bool
	profiler Profiler

	log.Logger
}

// New returns a new GPU reading from mem.
func New(mem ppu.Memory, opts ...Opt) (*GPU, error) {
	g := &GPU{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	for _, id := range []ppu.ID{ppu.Main, ppu.Sub} {
		engineOpts := []ppu.Opt{ppu.WithLogger(g.Logger)}
		if g.affine {
			engineOpts = append(engineOpts, ppu.WithAffineSprites())
		}
		e, err := ppu.New(id, mem, engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("gpu: creating %s engine: %w", id, err)
		}
		g.engines[id] = e
		g.regs[id] = newRegisterSet(e)
	}

	return g, nil
}

// Engine returns the engine with the given id.
func (g *GPU) Engine(id ppu.ID) *ppu.Engine {
	return g.engines[id&1]
}

// Reset resets the engine with the given id and its registers.
func (g *GPU) Reset(id ppu.ID) {
	id &= 1
	g.engines[id].Reset()
	g.regs[id].Reset()
}

// SetSwap selects which screen each engine is shown on. By default
// the main engine drives the top screen.
func (g *GPU) SetSwap(swap bool) {
	g.swap = swap
}

// Swapped reports whether the main engine drives the bottom screen.
func (g *GPU) Swapped() bool { return g.swap }

// RenderLine renders scanline line of the engine with the given id.
func (g *GPU) RenderLine(id ppu.ID, line int) [ppu.ScreenWidth]uint16 {
	if g.profiler == nil {
		return g.engines[id&1].RenderScanline(line)
	}

	start := time.Now()
	out := g.engines[id&1].RenderScanline(line)
	g.profiler.Record(id&1, line, time.Since(start))
	return out
}

// RenderFrame renders every scanline of both engines, one engine per
// goroutine, and arranges them on the two screens.
func (g *GPU) RenderFrame() *Frame {
	var screens [2]Screen
	var wg sync.WaitGroup
	for _, id := range []ppu.ID{ppu.Main, ppu.Sub} {
		wg.Add(1)
		go func(id ppu.ID) {
			defer wg.Done()
			for y := 0; y < ppu.ScreenHeight; y++ {
				screens[id][y] = g.RenderLine(id, y)
			}
		}(id)
	}
	wg.Wait()

	f := &Frame{Top: screens[ppu.Main], Bottom: screens[ppu.Sub]}
	if g.swap {
		f.Top, f.Bottom = f.Bottom, f.Top
	}
	return f
}
