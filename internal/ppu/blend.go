package ppu

import (
	"github.com/thelolagemann/ndsppu/internal/ppu/lcd"
	"github.com/thelolagemann/ndsppu/internal/ppu/palette"
)

// composite merges colour c of layer l into the scanline at x,
// applying the window rules and colour special effects. It reports
// whether the pixel was written.
func (e *Engine) composite(l lcd.Layer, x, y int, c palette.Colour) bool {
	return e.blend(l, x, y, c, false)
}

// blend is composite with forceAlpha selecting alpha blending
// regardless of BLDCNT, as used by semi-transparent objects.
func (e *Engine) blend(l lcd.Layer, x, y int, c palette.Colour, forceAlpha bool) bool {
	if x < 0 || x >= ScreenWidth {
		return false
	}

	draw, effect := e.checkWindows(l, x, y)
	if !draw {
		return false
	}

	if effect && (forceAlpha || e.bldCnt.Source(l)) {
		effectType := e.bldCnt.Effect()
		if forceAlpha {
			effectType = lcd.EffectAlpha
		}

		switch effectType {
		case lcd.EffectAlpha:
			eva := e.bldAlpha.EVA()
			if eva == 0 {
				return false
			}
			c = palette.Alpha(c, e.line[x], eva, e.bldAlpha.EVB())
		case lcd.EffectBrighten:
			c = palette.Brighten(c, e.bldY.EVY())
		case lcd.EffectDarken:
			c = palette.Darken(c, e.bldY.EVY())
		}
	}

	e.line[x] = c | palette.Visible
	if l < lcd.OBJ {
		e.linePrio[x] = e.bg[l].cnt.Priority()
	}

	return true
}
