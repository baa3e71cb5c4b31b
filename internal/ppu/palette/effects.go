package palette

import "github.com/thelolagemann/ndsppu/pkg/utils"

// Alpha blends src over dst. Each channel of src is weighted by eva/16
// and, when evb is non-zero, the matching channel of dst by evb/16. The
// result saturates at 31 and carries the visible flag.
func Alpha(src, dst Colour, eva, evb uint8) Colour {
	r := int(src.R()) * int(eva) >> 4
	g := int(src.G()) * int(eva) >> 4
	b := int(src.B()) * int(eva) >> 4
	if evb != 0 {
		r += int(dst.R()) * int(evb) >> 4
		g += int(dst.G()) * int(evb) >> 4
		b += int(dst.B()) * int(evb) >> 4
	}

	return pack(r, g, b) | Visible
}

// Brighten moves each channel of c towards 31 by f/16 of the
// remaining distance. A factor of 0 returns c unchanged.
func Brighten(c Colour, f uint8) Colour {
	if f == 0 {
		return c
	}
	r, g, b := int(c.R()), int(c.G()), int(c.B())
	r += (31 - r) * int(f) >> 4
	g += (31 - g) * int(f) >> 4
	b += (31 - b) * int(f) >> 4

	return pack(r, g, b) | c&Visible
}

// Darken moves each channel of c towards 0 by f/16 of its value. A
// factor of 0 returns c unchanged.
func Darken(c Colour, f uint8) Colour {
	if f == 0 {
		return c
	}
	r, g, b := int(c.R()), int(c.G()), int(c.B())
	r -= r * int(f) >> 4
	g -= g * int(f) >> 4
	b -= b * int(f) >> 4

	return pack(r, g, b) | c&Visible
}

func pack(r, g, b int) Colour {
	return New(
		uint8(utils.Clamp(0, r, 31)),
		uint8(utils.Clamp(0, g, 31)),
		uint8(utils.Clamp(0, b, 31)),
	)
}
