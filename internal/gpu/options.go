package gpu

import "github.com/thelolagemann/ndsppu/pkg/log"

// Opt is a function that modifies a GPU instance.
type Opt func(g *GPU)

// WithLogger sets the logger of the GPU and its engines.
func WithLogger(l log.Logger) Opt {
	return func(g *GPU) {
		g.Logger = l
	}
}

// WithSwap shows the main engine on the bottom screen.
func WithSwap() Opt {
	return func(g *GPU) {
		g.swap = true
	}
}

// WithAffineSprites enables rotation/scaling of objects on both
// engines.
func WithAffineSprites() Opt {
	return func(g *GPU) {
		g.affine = true
	}
}

// WithProfiler reports the render time of each scanline to p.
func WithProfiler(p Profiler) Opt {
	return func(g *GPU) {
		g.profiler = p
	}
}
