package ppu

import (
	"github.com/thelolagemann/ndsppu/internal/ppu/background"
	"github.com/thelolagemann/ndsppu/internal/ppu/lcd"
)

// SetDisplayControl writes the display control register (DISPCNT) and
// recomputes the state derived from it.
func (e *Engine) SetDisplayControl(v uint32) {
	old := e.dispCnt
	e.dispCnt = lcd.DisplayControl(v)

	mode := e.dispCnt.DisplayMode()
	if e.id == Sub {
		mode &= 1
	} else {
		mode &= 3
	}
	if mode != e.displayMode {
		e.log.Debugf("ppu %s: display mode %d -> %d", e.id, e.displayMode, mode)
	}
	e.displayMode = mode

	switch mode {
	case lcd.DisplayOff:
		return
	case lcd.DisplayVRAM, lcd.DisplayMainMemory:
		// the BG/OBJ pipeline is bypassed
		e.vramBlock = e.dispCnt.VRAMBlock()
		return
	}

	if e.dispCnt.OBJTile1D() {
		bound := e.dispCnt.OBJTileBoundary()
		e.objBoundary = 5 + bound
		if e.id == Sub && bound == 3 {
			e.objBoundary = 7
		}
		e.sprite1D = true
	} else {
		e.objBoundary = 5
		e.sprite1D = false
	}

	if e.id == Main && e.dispCnt.OBJBitmapBoundary() {
		e.objBMPBoundary = 8
	} else {
		e.objBMPBoundary = 7
	}

	if old.BGMode() != e.dispCnt.BGMode() {
		e.log.Debugf("ppu %s: bg mode %d -> %d", e.id, old.BGMode(), e.dispCnt.BGMode())
	}

	for i := 3; i >= 0; i-- {
		e.SetBackgroundControl(i, uint16(e.bg[i].cnt))
	}
	e.resort()
}

// SetBackgroundControl writes the control register of background i
// (BGxCNT) and recomputes its base offsets, size and renderer kind.
func (e *Engine) SetBackgroundControl(i int, v uint16) {
	if i < 0 || i > 3 {
		return
	}
	l := &e.bg[i]
	l.cnt = lcd.BackgroundControl(v)
	e.resort()

	// the main engine adds the DISPCNT base blocks
	var charBase, screenBase uint32
	if e.id == Main {
		charBase = e.dispCnt.CharBase()
		screenBase = e.dispCnt.ScreenBase()
	}
	l.tileBase = charBase + l.cnt.CharBase()
	l.bmpBase = l.cnt.BitmapBase()
	l.mapBase = screenBase + l.cnt.ScreenBase()

	l.extSlot = i
	if i < 2 && l.cnt.Wrap() {
		l.extSlot = i + 2
	}

	l.extMode = l.cnt.CharBlock() & 1
	if l.cnt.Colour256() {
		l.extMode |= 2
	}

	l.kind = background.KindFor(e.dispCnt.BGMode(), i)
	l.size = background.SizeFor(background.ClassFor(l.kind, l.cnt.Colour256()), l.cnt.ScreenSize())
}
