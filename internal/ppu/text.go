package ppu

import (
	"github.com/thelolagemann/ndsppu/internal/ppu/lcd"
	"github.com/thelolagemann/ndsppu/internal/ppu/palette"
)

// renderText draws scanline y of text background i.
//
// The map of a text background is made of 32x32 entry pages of 2K.
// Larger backgrounds place their pages side by side, then below:
//
//	256x256: [0]      512x256: [0][1]
//	256x512: [0]      512x512: [0][1]
//	         [1]               [2][3]
func (e *Engine) renderText(i, y int) {
	l := &e.bg[i]
	vram := e.mem.Bank(BGRegion(e.id))
	if vram == nil {
		return
	}
	pal := e.mem.Bank(RegionPalette)

	var ext Bank
	extended := l.cnt.Colour256() && e.dispCnt.BGExtPalettes()
	if extended {
		if ext = e.mem.Bank(BGExtPaletteRegion(e.id, l.extSlot)); ext == nil {
			return
		}
	}

	// mosaic only applies to 16 colour backgrounds
	mw := 1
	ybg := y + int(l.scrollY)
	if l.cnt.Mosaic() && !l.cnt.Colour256() {
		mh := e.mosaic.BGHeight()
		ybg = ybg / mh * mh
		mw = e.mosaic.BGWidth()
	}
	ybg &= l.size.Height - 1

	row := ybg >> 3
	mapRow := l.mapBase + uint32(row&31)*64
	if row > 31 {
		mapRow += 512 << l.cnt.ScreenSize()
	}

	var entry lcd.MapEntry
	var held uint32
	for x := 0; x < ScreenWidth; x++ {
		xbg := (x + int(l.scrollX)) & (l.size.Width - 1)
		if x == 0 || xbg&7 == 0 {
			col := xbg >> 3
			addr := mapRow + uint32(col&31)*2
			if col > 31 {
				addr += 0x800
			}
			entry = lcd.MapEntry(vram.Read16(addr))
		}

		tx, ty := uint32(xbg&7), uint32(ybg&7)
		if entry.HFlip() {
			tx = 7 - tx
		}
		if entry.VFlip() {
			ty = 7 - ty
		}

		var c palette.Colour
		if l.cnt.Colour256() {
			index := uint32(vram.Read8(l.tileBase + entry.Tile()*64 + ty*8 + tx))
			if index == 0 {
				continue
			}
			if extended {
				c = palette.Lookup(ext, 0, entry.Palette()*256+index)
			} else {
				c = palette.Lookup(pal, e.palBase+palette.BGOffset, index)
			}
		} else {
			if x%mw == 0 {
				b := vram.Read8(l.tileBase + entry.Tile()*32 + ty*4 + tx>>1)
				nibble := uint32(b & 0xF)
				if tx&1 == 1 {
					nibble = uint32(b >> 4)
				}
				held = 0
				if nibble != 0 {
					held = entry.Palette()*16 + nibble
				}
			}
			if held == 0 {
				continue
			}
			c = palette.Lookup(pal, e.palBase+palette.BGOffset, held)
		}

		e.composite(i, x, y, c)
	}
}
