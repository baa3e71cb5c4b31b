package ppu

import (
	"github.com/thelolagemann/ndsppu/internal/ppu/lcd"
	"github.com/thelolagemann/ndsppu/internal/ppu/palette"
)

// object reads descriptor i from OAM.
func (e *Engine) object(oam Bank, i int) lcd.Object {
	addr := e.oamBase + uint32(i)*lcd.ObjectSize
	return lcd.Object{
		Attr0: oam.Read16(addr),
		Attr1: oam.Read16(addr + 2),
		Attr2: oam.Read16(addr + 4),
	}
}

// affineParams reads rotation/scaling parameter set n (0-31). The
// parameters are interleaved with the object descriptors, occupying
// the fourth half word of four consecutive descriptors.
func (e *Engine) affineParams(oam Bank, n uint8) AffineParams {
	addr := e.oamBase + uint32(n)*0x20
	return AffineParams{
		PA: int16(oam.Read16(addr + 0x06)),
		PB: int16(oam.Read16(addr + 0x0E)),
		PC: int16(oam.Read16(addr + 0x16)),
		PD: int16(oam.Read16(addr + 0x1E)),
	}
}

// renderSprites draws the objects intersecting scanline y. With window
// set only object window objects are processed, marking the object
// window instead of drawing. Objects are walked from the last
// descriptor to the first, and a pixel is only drawn if its priority
// is at least that of the pixel beneath, so the first descriptor wins
// between objects of equal priority.
func (e *Engine) renderSprites(y int, window bool) {
	oam := e.mem.Bank(RegionOAM)
	vram := e.mem.Bank(OBJRegion(e.id))
	if oam == nil || vram == nil {
		return
	}

	for i := ObjectCount - 1; i >= 0; i-- {
		o := e.object(oam, i)
		if o.Disabled() || (o.Mode() == lcd.ObjectWindow) != window {
			continue
		}

		if o.Affine() {
			e.objAffine[i] = e.affineParams(oam, o.AffineIndex())
			if e.Debug.AffineSprites {
				e.renderAffineSprite(vram, o, e.objAffine[i], y)
				continue
			}
		}
		e.renderSprite(vram, o, y)
	}
}

// spriteY returns the top of object o, wrapping coordinates below the
// screen to negative ones.
func spriteY(o lcd.Object) int {
	if o.Y() > ScreenHeight {
		return int(int8(o.Y()))
	}
	return int(o.Y())
}

// renderSprite draws scanline y of an unrotated object.
func (e *Engine) renderSprite(vram Bank, o lcd.Object, y int) {
	w, h := o.Dimensions()
	sx, sy := o.X(), spriteY(o)
	if y < sy || y >= sy+h {
		return
	}
	if sx >= ScreenWidth || sx+w <= 0 {
		return
	}

	row := y - sy
	if o.VFlip() {
		row = h - 1 - row
	}
	sample := e.spriteSampler(vram, o, w)
	if sample == nil {
		return
	}

	start, end := max(sx, 0), min(sx+w, ScreenWidth)
	for x := start; x < end; x++ {
		col := x - sx
		if o.HFlip() {
			col = w - 1 - col
		}
		if c, ok := sample(col, row); ok {
			e.plotSprite(o, x, y, c)
		}
	}
}

// renderAffineSprite draws scanline y of a rotation/scaling object,
// mapping each pixel of its bounding box through the matrix p around
// the centre of the object.
func (e *Engine) renderAffineSprite(vram Bank, o lcd.Object, p AffineParams, y int) {
	w, h := o.Dimensions()
	bw, bh := w, h
	if o.DoubleSize() {
		bw, bh = w*2, h*2
	}
	sx, sy := o.X(), spriteY(o)
	if y < sy || y >= sy+bh {
		return
	}
	if sx >= ScreenWidth || sx+bw <= 0 {
		return
	}

	sample := e.spriteSampler(vram, o, w)
	if sample == nil {
		return
	}

	dy := y - sy - bh/2
	start, end := max(sx, 0), min(sx+bw, ScreenWidth)
	for x := start; x < end; x++ {
		dx := x - sx - bw/2
		tx := (int(p.PA)*dx+int(p.PB)*dy)>>8 + w/2
		ty := (int(p.PC)*dx+int(p.PD)*dy)>>8 + h/2
		if tx < 0 || tx >= w || ty < 0 || ty >= h {
			continue
		}
		if c, ok := sample(tx, ty); ok {
			e.plotSprite(o, x, y, c)
		}
	}
}

// plotSprite submits an opaque object pixel.
func (e *Engine) plotSprite(o lcd.Object, x, y int, c palette.Colour) {
	if o.Mode() == lcd.ObjectWindow {
		e.setObjWindow(x, y)
		return
	}

	prio := o.Priority()
	if prio > e.linePrio[x] {
		return
	}
	semi := o.Mode() == lcd.ObjectSemiTransparent
	if e.blend(lcd.OBJ, x, y, c, semi) {
		e.linePrio[x] = prio
	}
}

// spriteSampler returns a function reading texel (x, y) of object o
// of width w, or nil when the object has nothing to draw.
func (e *Engine) spriteSampler(vram Bank, o lcd.Object, w int) sampler {
	tile := o.Tile()

	if o.Mode() == lcd.ObjectBitmap {
		return func(x, y int) (palette.Colour, bool) {
			c := palette.Colour(vram.Read16(e.bitmapAddress(tile, w, x, y)))
			return c &^ palette.Visible, c.IsVisible()
		}
	}

	pal := e.mem.Bank(RegionPalette)
	objPal := e.palBase + palette.OBJOffset

	if o.Colour256() {
		var ext Bank
		if e.dispCnt.OBJExtPalettes() {
			if ext = e.mem.Bank(OBJExtPaletteRegion(e.id)); ext == nil {
				return nil
			}
		}
		return func(x, y int) (palette.Colour, bool) {
			index := uint32(vram.Read8(e.tileAddress(tile, w, y, 8) + uint32(x>>3)*64 + uint32(x&7)))
			if index == 0 {
				return 0, false
			}
			if ext != nil {
				return palette.Lookup(ext, 0, o.Palette()*256+index), true
			}
			return palette.Lookup(pal, objPal, index), true
		}
	}

	bank := objPal + o.Palette()*16*palette.EntrySize
	return func(x, y int) (palette.Colour, bool) {
		b := vram.Read8(e.tileAddress(tile, w, y, 4) + uint32(x>>3)*32 + uint32(x&7)>>1)
		index := uint32(b & 0xF)
		if x&1 == 1 {
			index = uint32(b >> 4)
		}
		if index == 0 {
			return 0, false
		}
		return palette.Lookup(pal, bank, index), true
	}
}

// tileAddress returns the address of row y of the first tile of a
// tiled object of width w, with rowSize bytes per tile row (4 or 8).
//
// In 1D mapping the tiles of an object are consecutive, starting at
// tile << boundary. In 2D mapping tiles form a 32 tile wide matrix of
// 32 byte units, so each row of tiles is 1K further on.
func (e *Engine) tileAddress(tile uint32, w, y int, rowSize uint32) uint32 {
	ty, py := uint32(y>>3), uint32(y&7)
	if e.sprite1D {
		return tile<<e.objBoundary + ty*uint32(w)*rowSize + py*rowSize
	}
	return tile<<5 + ty<<10 + py*rowSize
}

// bitmapAddress returns the address of pixel (x, y) of a bitmap object
// of width w.
//
// In 1D mapping the bitmap starts at tile << boundary and is stored
// row after row. In 2D mapping the tile number selects an 8x8 cell of
// a 128 or 256 pixel wide bitmap.
func (e *Engine) bitmapAddress(tile uint32, w, x, y int) uint32 {
	if e.sprite1D {
		return tile<<e.objBMPBoundary + uint32(y*w+x)*2
	}

	if e.dispCnt.OBJBitmapWide() {
		cx, cy := tile&0x1F, tile>>5
		return ((cy*8+uint32(y))*256 + cx*8 + uint32(x)) * 2
	}
	cx, cy := tile&0x0F, tile>>4
	return ((cy*8+uint32(y))*128 + cx*8 + uint32(x)) * 2
}
