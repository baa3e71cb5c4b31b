package ppu

import (
	"github.com/thelolagemann/ndsppu/internal/ppu/background"
	"github.com/thelolagemann/ndsppu/internal/ppu/lcd"
	"github.com/thelolagemann/ndsppu/internal/ppu/palette"
)

// sampler returns the colour of a background at texel (x, y), which
// lies within the background, and whether it is opaque.
type sampler func(x, y int) (palette.Colour, bool)

// Extended background selectors.
const (
	extTiled       = 0 // and 1, 16-bit map entries with extended palettes
	extBitmap256   = 2
	extBitmapColor = 3
)

// renderAffine draws scanline y of rotation/scaling background i. The
// texel sampled by each pixel starts at the reference point moved by
// (PB, PD) for each scanline and steps by (PA, PC) for each pixel.
func (e *Engine) renderAffine(i, y int) {
	l := &e.bg[i]
	sample := e.affineSampler(l)
	if sample == nil {
		return
	}

	w, h := l.size.Width, l.size.Height
	wrap := l.cnt.Wrap()
	fx := l.refX + int32(l.pb)*int32(y)
	fy := l.refY + int32(l.pd)*int32(y)

	for x := 0; x < ScreenWidth; x, fx, fy = x+1, fx+int32(l.pa), fy+int32(l.pc) {
		tx, ty := int(fx>>8), int(fy>>8)
		if wrap {
			tx &= w - 1
			ty &= h - 1
		} else if tx < 0 || tx >= w || ty < 0 || ty >= h {
			continue
		}

		if c, ok := sample(tx, ty); ok {
			e.composite(i, x, y, c)
		}
	}
}

// affineSampler selects how the texels of background l are read. It
// returns nil when the background cannot be drawn.
func (e *Engine) affineSampler(l *layer) sampler {
	vram := e.mem.Bank(BGRegion(e.id))
	if vram == nil {
		return nil
	}
	pal := e.mem.Bank(RegionPalette)
	palBase := e.palBase + palette.BGOffset
	tilesPerRow := l.size.Width >> 3

	if l.kind == background.Affine {
		return func(x, y int) (palette.Colour, bool) {
			tile := uint32(vram.Read8(l.mapBase + uint32((y>>3)*tilesPerRow+x>>3)))
			index := uint32(vram.Read8(l.tileBase + tile*64 + uint32(y&7)*8 + uint32(x&7)))
			if index == 0 {
				return 0, false
			}
			return palette.Lookup(pal, palBase, index), true
		}
	}

	switch l.extMode {
	case extBitmap256:
		return func(x, y int) (palette.Colour, bool) {
			index := uint32(vram.Read8(l.bmpBase + uint32(y*l.size.Width+x)))
			if index == 0 {
				return 0, false
			}
			return palette.Lookup(pal, palBase, index), true
		}
	case extBitmapColor:
		return func(x, y int) (palette.Colour, bool) {
			c := palette.Colour(vram.Read16(l.bmpBase + uint32(y*l.size.Width+x)*2))
			return c &^ palette.Visible, c.IsVisible()
		}
	}

	ext := e.mem.Bank(BGExtPaletteRegion(e.id, l.extSlot))
	if ext == nil {
		return nil
	}
	return func(x, y int) (palette.Colour, bool) {
		entry := lcd.MapEntry(vram.Read16(l.mapBase + uint32((y>>3)*tilesPerRow+x>>3)*2))
		tx, ty := uint32(x&7), uint32(y&7)
		if entry.HFlip() {
			tx = 7 - tx
		}
		if entry.VFlip() {
			ty = 7 - ty
		}
		index := uint32(vram.Read8(l.tileBase + entry.Tile()*64 + ty*8 + tx))
		if index == 0 {
			return 0, false
		}
		return palette.Lookup(ext, 0, entry.Palette()*256+index), true
	}
}
