// Package palette provides the 15-bit colour format used by the
// 2D engines, along with the colour special effects applied by the
// compositor.
package palette

import "image/color"

// Colour is a 15-bit colour as stored in palette memory. Bit 15 is
// not part of palette memory; the renderer uses it to mark a pixel
// as written.
//
//	Bit 15    - Visible (renderer only)
//	Bit 10-14 - Blue  (0-31)
//	Bit 5-9   - Green (0-31)
//	Bit 0-4   - Red   (0-31)
type Colour uint16

const (
	// Visible marks a pixel as opaque in a scanline buffer.
	Visible Colour = 0x8000
	// White is the colour shown by a blanked display.
	White Colour = 0x7FFF
	// Black is the colour shown by a disabled display.
	Black Colour = 0x0000
)

// New packs the given 5-bit channels into a Colour.
func New(r, g, b uint8) Colour {
	return Colour(r&0x1F) | Colour(g&0x1F)<<5 | Colour(b&0x1F)<<10
}

// R returns the red channel.
func (c Colour) R() uint8 { return uint8(c) & 0x1F }

// G returns the green channel.
func (c Colour) G() uint8 { return uint8(c>>5) & 0x1F }

// B returns the blue channel.
func (c Colour) B() uint8 { return uint8(c>>10) & 0x1F }

// IsVisible reports whether the visible flag is set.
func (c Colour) IsVisible() bool { return c&Visible != 0 }

// RGB expands the colour to 8 bits per channel, replicating the
// upper bits into the lower ones so that 31 maps to 255.
func (c Colour) RGB() [3]uint8 {
	return [3]uint8{expand(c.R()), expand(c.G()), expand(c.B())}
}

// RGBA implements color.Color.
func (c Colour) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts the colour to an opaque color.NRGBA.
func (c Colour) NRGBA() color.NRGBA {
	rgb := c.RGB()
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}
}

// FromColor converts any color.Color to the nearest Colour.
func FromColor(c color.Color) Colour {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return New(n.R>>3, n.G>>3, n.B>>3)
}

func expand(v uint8) uint8 {
	return v<<3 | v>>2
}
