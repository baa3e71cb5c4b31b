package ppu

import (
	"github.com/thelolagemann/ndsppu/internal/ppu/background"
	"github.com/thelolagemann/ndsppu/internal/ppu/lcd"
	"github.com/thelolagemann/ndsppu/internal/ppu/palette"
)

// noPriority marks a pixel holding only the backdrop.
const noPriority = 4

// RenderScanline renders scanline y and returns its pixels as 15-bit
// colours with the visible bit set. Scanlines outside of the screen
// are black.
func (e *Engine) RenderScanline(y int) [ScreenWidth]uint16 {
	var out [ScreenWidth]uint16
	if y < 0 || y >= ScreenHeight {
		e.log.Debugf("ppu %s: scanline %d out of range", e.id, y)
		return out
	}

	switch e.displayMode {
	case lcd.DisplayOff:
		e.fill(palette.White | palette.Visible)
	case lcd.DisplayVRAM:
		e.renderVRAM(y)
	case lcd.DisplayMainMemory:
		e.renderMainMemory()
	default:
		if e.dispCnt.ForcedBlank() {
			e.fill(palette.White | palette.Visible)
		} else {
			e.renderLayers(y)
		}
	}

	if e.displayMode != lcd.DisplayOff {
		e.applyMasterBrightness()
	}

	for x, c := range e.line {
		out[x] = uint16(c)
	}
	return out
}

func (e *Engine) fill(c palette.Colour) {
	for x := range e.line {
		e.line[x] = c
	}
}

// renderLayers composites the backgrounds and objects of scanline y
// over the backdrop.
func (e *Engine) renderLayers(y int) {
	backdrop := palette.Lookup(e.mem.Bank(RegionPalette), e.palBase+palette.BGOffset, 0)
	e.fill(backdrop | palette.Visible)
	for x := range e.linePrio {
		e.linePrio[x] = noPriority
	}

	objects := e.enabled[lcd.OBJ]
	if objects && e.dispCnt.OBJWindowEnabled() {
		e.objWindow[y] = [ScreenWidth]bool{}
		e.renderSprites(y, true)
	}

	for p := 3; p >= 0; p-- {
		for _, i := range e.order[p][:e.counts[p]] {
			e.renderBackground(i, y)
		}
	}

	if objects {
		e.renderSprites(y, false)
	}
}

// renderBackground draws scanline y of background i with the renderer
// selected by its last control register write.
func (e *Engine) renderBackground(i, y int) {
	switch e.bg[i].kind {
	case background.Text:
		e.renderText(i, y)
	case background.Affine, background.Extended:
		e.renderAffine(i, y)
	}
}

// renderVRAM copies scanline y of the selected LCDC bank.
func (e *Engine) renderVRAM(y int) {
	bank := e.mem.Bank(LCDCRegion(e.vramBlock))
	if bank == nil {
		e.fill(palette.Black | palette.Visible)
		return
	}
	base := uint32(y * ScreenWidth * 2)
	for x := range e.line {
		e.line[x] = palette.Colour(bank.Read16(base+uint32(x)*2)) | palette.Visible
	}
}

// renderMainMemory pulls a scanline from the main memory FIFO.
func (e *Engine) renderMainMemory() {
	src, ok := e.mem.(FIFOSource)
	if !ok {
		e.fill(palette.Black | palette.Visible)
		return
	}
	for x := 0; x < ScreenWidth; x += 2 {
		v := src.ReadFIFO()
		e.line[x] = palette.Colour(v) | palette.Visible
		e.line[x+1] = palette.Colour(v>>16) | palette.Visible
	}
}

func (e *Engine) applyMasterBrightness() {
	f := e.bright.Factor()
	switch e.bright.Mode() {
	case 1:
		for x, c := range e.line {
			e.line[x] = palette.Brighten(c, f)
		}
	case 2:
		for x, c := range e.line {
			e.line[x] = palette.Darken(c, f)
		}
	}
}
