package ppu

import "github.com/thelolagemann/ndsppu/pkg/log"

// Opt is a function that modifies an Engine instance.
type Opt func(e *Engine)

// WithLogger sets the logger used by the engine.
func WithLogger(l log.Logger) Opt {
	return func(e *Engine) {
		e.log = l
	}
}

// WithAffineSprites enables sampling rotation/scaling objects through
// their matrix. Without it, such objects are drawn unrotated.
func WithAffineSprites() Opt {
	return func(e *Engine) {
		e.Debug.AffineSprites = true
	}
}
