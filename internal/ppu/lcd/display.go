// Package lcd provides the control registers of a 2D display engine
// as plain integers with accessors for each field.
package lcd

import "github.com/thelolagemann/ndsppu/pkg/bits"

// Layer identifies a layer when testing per-layer register bits.
type Layer = int

const (
	BG0 Layer = iota
	BG1
	BG2
	BG3
	OBJ
	Backdrop
)

// DisplayMode is the source of the pixels sent to the screen.
type DisplayMode = uint8

const (
	// DisplayOff shows a white screen.
	DisplayOff DisplayMode = iota
	// DisplayNormal shows the composited BG and OBJ layers.
	DisplayNormal
	// DisplayVRAM shows a bitmap held in a VRAM bank mapped to LCDC.
	DisplayVRAM
	// DisplayMainMemory shows pixels streamed from main memory.
	DisplayMainMemory
)

// DisplayControl is the display control register (DISPCNT). The sub
// engine ignores the fields marked (main).
//
//	Bit 31    - OBJ Extended Palettes     (0=Disable, 1=Enable)
//	Bit 30    - BG Extended Palettes      (0=Disable, 1=Enable)
//	Bit 27-29 - Screen Base Block (main)  (64K units)
//	Bit 24-26 - Character Base Block (main) (64K units)
//	Bit 23    - OBJ Processing during H-Blank
//	Bit 22    - Bitmap OBJ 1D-Boundary (main) (0=128, 1=256 bytes)
//	Bit 20-21 - Tile OBJ 1D-Boundary      (0=32, 1=64, 2=128, 3=256 bytes)
//	Bit 18-19 - VRAM block (main)         (0-3=A-D) for DisplayVRAM
//	Bit 16-17 - Display Mode              (0=Off, 1=Normal, 2=VRAM, 3=Main memory)
//	Bit 15    - OBJ Window Display        (0=Off, 1=On)
//	Bit 14    - Window 1 Display          (0=Off, 1=On)
//	Bit 13    - Window 0 Display          (0=Off, 1=On)
//	Bit 12    - OBJ Display               (0=Off, 1=On)
//	Bit 8-11  - BG0-BG3 Display           (0=Off, 1=On)
//	Bit 7     - Forced Blank              (1=White screen)
//	Bit 6     - Bitmap OBJ Mapping        (0=2D, 1=1D)
//	Bit 5     - Bitmap OBJ 2D-Dimension   (0=128x512, 1=256x256)
//	Bit 4     - Tile OBJ Mapping          (0=2D, 1=1D)
//	Bit 3     - BG0 2D/3D Selection (main) (0=2D, 1=3D)
//	Bit 0-2   - BG Mode                   (0-7)
type DisplayControl uint32

// BGMode returns the background video mode (0-7).
func (d DisplayControl) BGMode() uint8 { return uint8(bits.Extract(d, 0, 3)) }

// BG0Is3D reports whether BG0 is used by the 3D engine.
func (d DisplayControl) BG0Is3D() bool { return bits.Test(d, 3) }

// OBJTile1D reports whether tiled objects use 1D mapping.
func (d DisplayControl) OBJTile1D() bool { return bits.Test(d, 4) }

// OBJBitmapWide reports whether 2D bitmap objects use a 256 pixel
// wide layout instead of a 128 pixel one.
func (d DisplayControl) OBJBitmapWide() bool { return bits.Test(d, 5) }

// OBJBitmap1D reports whether bitmap objects use 1D mapping.
func (d DisplayControl) OBJBitmap1D() bool { return bits.Test(d, 6) }

// ForcedBlank reports whether the screen is forced white.
func (d DisplayControl) ForcedBlank() bool { return bits.Test(d, 7) }

// LayerEnabled reports the hardware enable bit of a BG or OBJ layer.
func (d DisplayControl) LayerEnabled(l Layer) bool {
	if l < BG0 || l > OBJ {
		return false
	}
	return bits.Test(d, uint8(8+l))
}

// Window0Enabled reports whether window 0 is enabled.
func (d DisplayControl) Window0Enabled() bool { return bits.Test(d, 13) }

// Window1Enabled reports whether window 1 is enabled.
func (d DisplayControl) Window1Enabled() bool { return bits.Test(d, 14) }

// OBJWindowEnabled reports whether the object window is enabled.
func (d DisplayControl) OBJWindowEnabled() bool { return bits.Test(d, 15) }

// AnyWindowEnabled reports whether any window feature is enabled.
func (d DisplayControl) AnyWindowEnabled() bool { return bits.Extract(d, 13, 3) != 0 }

// DisplayMode returns the raw display mode field (0-3).
func (d DisplayControl) DisplayMode() DisplayMode { return uint8(bits.Extract(d, 16, 2)) }

// VRAMBlock returns the VRAM bank shown in DisplayVRAM mode.
func (d DisplayControl) VRAMBlock() uint8 { return uint8(bits.Extract(d, 18, 2)) }

// OBJTileBoundary returns the tiled object 1D boundary code (0-3).
func (d DisplayControl) OBJTileBoundary() uint8 { return uint8(bits.Extract(d, 20, 2)) }

// OBJBitmapBoundary reports whether bitmap objects use a 256 byte
// 1D boundary.
func (d DisplayControl) OBJBitmapBoundary() bool { return bits.Test(d, 22) }

// HBlankOBJ reports whether object processing continues in H-Blank.
func (d DisplayControl) HBlankOBJ() bool { return bits.Test(d, 23) }

// CharBase returns the character base offset in bytes.
func (d DisplayControl) CharBase() uint32 { return uint32(bits.Extract(d, 24, 3)) << 16 }

// ScreenBase returns the screen base offset in bytes.
func (d DisplayControl) ScreenBase() uint32 { return uint32(bits.Extract(d, 27, 3)) << 16 }

// BGExtPalettes reports whether BG extended palettes are enabled.
func (d DisplayControl) BGExtPalettes() bool { return bits.Test(d, 30) }

// OBJExtPalettes reports whether OBJ extended palettes are enabled.
func (d DisplayControl) OBJExtPalettes() bool { return bits.Test(d, 31) }
