package display

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/thelolagemann/ndsppu/internal/gpu"
	"golang.org/x/image/bmp"
)

// imageWriter writes each frame to a numbered image file.
type imageWriter struct {
	dir, prefix, ext string
	scale            int
	screens          Screens
	encode           func(w io.Writer, img image.Image) error

	frames int
}

// NewPNG returns an Output writing each frame to dir as a PNG file
// named prefix followed by the frame number.
func NewPNG(dir, prefix string, scale int, screens Screens) Output {
	return &imageWriter{
		dir:     dir,
		prefix:  prefix,
		ext:     "png",
		scale:   scale,
		screens: screens,
		encode:  png.Encode,
	}
}

// NewBMP returns an Output writing each frame to dir as a BMP file.
func NewBMP(dir, prefix string, scale int, screens Screens) Output {
	return &imageWriter{
		dir:     dir,
		prefix:  prefix,
		ext:     "bmp",
		scale:   scale,
		screens: screens,
		encode:  bmp.Encode,
	}
}

// Path returns the path frame n is written to.
func (w *imageWriter) Path(n int) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s%04d.%s", w.prefix, n, w.ext))
}

func (w *imageWriter) Present(f *gpu.Frame) error {
	img := Scale(w.screens.Image(f), w.scale)

	path := w.Path(w.frames)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("display: creating %s: %w", path, err)
	}
	if err := w.encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("display: encoding %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("display: closing %s: %w", path, err)
	}

	w.frames++
	return nil
}

func (w *imageWriter) Close() error { return nil }
