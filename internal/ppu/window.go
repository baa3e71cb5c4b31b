package ppu

import "github.com/thelolagemann/ndsppu/internal/ppu/lcd"

// withinSpan reports whether v lies within [start, end]. When start is
// greater than end the span wraps around, covering [start, max] and
// [0, end].
func withinSpan(v int, start, end uint8) bool {
	s, e := int(start), int(end)
	if s > e {
		return v >= s || v <= e
	}
	return v >= s && v <= e
}

func (w window) contains(x, y int) bool {
	return withinSpan(x, w.x1, w.x2) && withinSpan(y, w.y1, w.y2)
}

// inObjWindow reports whether (x, y) is covered by an object window
// object. Coordinates off the screen are never covered.
func (e *Engine) inObjWindow(x, y int) bool {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return false
	}
	return e.objWindow[y][x]
}

func (e *Engine) setObjWindow(x, y int) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return
	}
	e.objWindow[y][x] = true
}

// checkWindows returns whether layer l may draw at (x, y), and whether
// colour special effects apply there. Regions are tested in priority
// order: window 0, window 1, the object window, then outside.
func (e *Engine) checkWindows(l lcd.Layer, x, y int) (draw, effect bool) {
	if !e.dispCnt.AnyWindowEnabled() {
		return true, true
	}

	var m lcd.WindowMask
	switch {
	case e.dispCnt.Window0Enabled() && e.win[0].contains(x, y):
		m = e.winIn.Low()
	case e.dispCnt.Window1Enabled() && e.win[1].contains(x, y):
		m = e.winIn.High()
	case e.dispCnt.OBJWindowEnabled() && e.inObjWindow(x, y):
		// effect is WINOUT.13
		m = e.winOut.High()
	default:
		m = e.winOut.Low()
	}

	return m.Draws(l), m.Effects()
}
