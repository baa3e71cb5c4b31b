package gpu

import (
	"encoding/binary"
	"image"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/ndsppu/internal/ppu"
	"github.com/thelolagemann/ndsppu/internal/ppu/palette"
)

// Screen holds the scanlines of one screen as 15-bit colours.
type Screen [ppu.ScreenHeight][ppu.ScreenWidth]uint16

// Image converts the screen to an image.
func (s *Screen) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	s.draw(img, 0)
	return img
}

func (s *Screen) draw(img *image.NRGBA, top int) {
	for y := range s {
		for x, c := range s[y] {
			rgb := palette.Colour(c).RGB()
			i := img.PixOffset(x, top+y)
			copy(img.Pix[i:i+3], rgb[:])
			img.Pix[i+3] = 0xFF
		}
	}
}

// Frame is a rendered frame of both screens.
type Frame struct {
	Top    Screen
	Bottom Screen
}

// Image returns both screens in one image, with the top screen above
// the bottom screen.
func (f *Frame) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight*2))
	f.Top.draw(img, 0)
	f.Bottom.draw(img, ppu.ScreenHeight)
	return img
}

// Bytes returns the frame as little endian 16-bit colours, top screen
// first.
func (f *Frame) Bytes() []byte {
	b := make([]byte, 0, ppu.ScreenWidth*ppu.ScreenHeight*4)
	for _, s := range []*Screen{&f.Top, &f.Bottom} {
		for y := range s {
			for _, c := range s[y] {
				b = binary.LittleEndian.AppendUint16(b, c)
			}
		}
	}
	return b
}

// Hash returns the xxhash of the frame's colours, which identifies
// a frame independently of the output format.
func (f *Frame) Hash() uint64 {
	return xxhash.Sum64(f.Bytes())
}
