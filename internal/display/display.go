// Package display provides the outputs a rendered frame can be
// presented to.
package display

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/thelolagemann/ndsppu/internal/gpu"
	"github.com/thelolagemann/ndsppu/internal/ppu"
	"golang.org/x/image/draw"
)

var (
	// ErrUnknownFormat is returned when creating an output of an
	// unknown format.
	ErrUnknownFormat = errors.New("display: unknown format")
	// ErrUnknownScreens is returned when parsing an unknown screen
	// selection.
	ErrUnknownScreens = errors.New("display: unknown screens")
)

// Output is the interface that wraps the basic methods of a frame
// output.
type Output interface {
	// Present presents a rendered frame.
	Present(f *gpu.Frame) error
	// Close flushes and releases the output.
	Close() error
}

// Screens selects the screens of a frame that an output presents.
type Screens uint8

const (
	// Both presents the top screen above the bottom screen.
	Both Screens = iota
	// Top presents the top screen only.
	Top
	// Bottom presents the bottom screen only.
	Bottom
)

var screenNames = map[string]Screens{"both": Both, "top": Top, "bottom": Bottom}

// ParseScreens parses a screen selection: both, top or bottom.
func ParseScreens(s string) (Screens, error) {
	if v, ok := screenNames[strings.ToLower(s)]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScreens, s)
}

func (s Screens) String() string {
	for name, v := range screenNames {
		if v == s {
			return name
		}
	}
	return fmt.Sprintf("Screens(%d)", uint8(s))
}

// Image returns the selected screens of f as an image.
func (s Screens) Image(f *gpu.Frame) *image.NRGBA {
	switch s {
	case Top:
		return f.Top.Image()
	case Bottom:
		return f.Bottom.Image()
	}
	return f.Image()
}

// Size returns the size of the image of the selected screens.
func (s Screens) Size() (w, h int) {
	if s == Both {
		return ppu.ScreenWidth, ppu.ScreenHeight * 2
	}
	return ppu.ScreenWidth, ppu.ScreenHeight
}

// Scale scales img by factor using nearest neighbour sampling. A
// factor below 2 returns img unchanged.
func Scale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// New creates the output described by c. Hash outputs write to w.
func New(c Config, w io.Writer) (Output, error) {
	screens, err := ParseScreens(c.Screens)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(c.Format) {
	case "png":
		return NewPNG(c.Dir, c.Prefix, c.Scale, screens), nil
	case "bmp":
		return NewBMP(c.Dir, c.Prefix, c.Scale, screens), nil
	case "hash":
		return NewHasher(w), nil
	case "none":
		return Discard, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
}
