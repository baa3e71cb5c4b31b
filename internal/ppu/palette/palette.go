package palette

import (
	"image"
	"image/color"
)

// Reader is implemented by memory holding palette entries.
type Reader interface {
	Read16(address uint32) uint16
}

const (
	// EntrySize is the size in bytes of a palette entry.
	EntrySize = 2
	// BGOffset is the offset of the background palette within an
	// engine's palette memory.
	BGOffset = 0x000
	// OBJOffset is the offset of the object palette within an
	// engine's palette memory.
	OBJOffset = 0x200
	// EngineSize is the size of the palette memory owned by one engine.
	EngineSize = 0x400
)

// Lookup returns the colour at index of the palette starting at base.
// A nil reader yields Black.
func Lookup(r Reader, base, index uint32) Colour {
	if r == nil {
		return Black
	}
	return Colour(r.Read16(base+index*EntrySize)) &^ Visible
}

// Swatch draws count palette entries starting at base as a grid of
// 16 columns, each entry size pixels square.
func Swatch(r Reader, base uint32, count, size int) *image.NRGBA {
	rows := (count + 15) / 16
	img := image.NewNRGBA(image.Rect(0, 0, 16*size, rows*size))

	for i := 0; i < count; i++ {
		c := Lookup(r, base, uint32(i)).NRGBA()
		x0, y0 := (i%16)*size, (i/16)*size
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				img.SetNRGBA(x0+x, y0+y, c)
			}
		}
	}

	return img
}

var _ color.Color = Colour(0)
