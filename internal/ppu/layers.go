package ppu

import "github.com/thelolagemann/ndsppu/internal/ppu/lcd"

// resort recomputes the effective visibility of each layer and the
// order in which the backgrounds are drawn. Each priority bucket holds
// its backgrounds in ascending index, so that at equal priority a
// higher index is drawn later and covers a lower one.
func (e *Engine) resort() {
	e.objWindow = [ScreenHeight][ScreenWidth]bool{}

	for l := lcd.BG0; l <= lcd.OBJ; l++ {
		hw := e.dispCnt.LayerEnabled(l)
		if l == lcd.BG0 && e.id == Main && e.dispCnt.BG0Is3D() {
			hw = false
		}
		// a cleared software toggle inverts the hardware state
		e.enabled[l] = e.visible[l] != !hw
	}

	e.counts = [4]int{}
	for i := 0; i < 4; i++ {
		if !e.enabled[i] {
			continue
		}
		p := e.bg[i].cnt.Priority()
		e.order[p][e.counts[p]] = i
		e.counts[p]++
	}
}

// SetLayerVisible sets the software visibility toggle of layer l
// (BG0-BG3 or OBJ).
func (e *Engine) SetLayerVisible(l lcd.Layer, visible bool) {
	if l < lcd.BG0 || l > lcd.OBJ {
		return
	}
	e.visible[l] = visible
	e.resort()
}

// ToggleLayer inverts the software visibility toggle of layer l.
func (e *Engine) ToggleLayer(l lcd.Layer) {
	if l < lcd.BG0 || l > lcd.OBJ {
		return
	}
	e.SetLayerVisible(l, !e.visible[l])
}
