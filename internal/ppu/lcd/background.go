package lcd

import "github.com/thelolagemann/ndsppu/pkg/bits"

// BackgroundControl is a background control register (BGxCNT).
//
//	Bit 14-15 - Screen Size               (0-3, meaning depends on BG kind)
//	Bit 13    - Ext Palette Slot (BG0/BG1) / Display Area Overflow (BG2/BG3)
//	Bit 8-12  - Screen Base Block         (2K units, 16K units for bitmaps)
//	Bit 7     - Colours/Palettes          (0=16/16, 1=256/1)
//	Bit 6     - Mosaic                    (0=Off, 1=On)
//	Bit 2-5   - Character Base Block      (16K units)
//	Bit 0-1   - Priority                  (0=Highest)
type BackgroundControl uint16

// Priority returns the drawing priority (0-3).
func (b BackgroundControl) Priority() uint8 { return uint8(bits.Extract(b, 0, 2)) }

// CharBlock returns the raw character base block (0-15).
func (b BackgroundControl) CharBlock() uint8 { return uint8(bits.Extract(b, 2, 4)) }

// CharBase returns the character base offset in bytes.
func (b BackgroundControl) CharBase() uint32 { return uint32(b.CharBlock()) << 14 }

// Mosaic reports whether mosaic is enabled.
func (b BackgroundControl) Mosaic() bool { return bits.Test(b, 6) }

// Colour256 reports whether the background uses 256 colours. For
// extended backgrounds it selects a bitmap.
func (b BackgroundControl) Colour256() bool { return bits.Test(b, 7) }

// ScreenBlock returns the raw screen base block (0-31).
func (b BackgroundControl) ScreenBlock() uint8 { return uint8(bits.Extract(b, 8, 5)) }

// ScreenBase returns the tile map offset in bytes.
func (b BackgroundControl) ScreenBase() uint32 { return uint32(b.ScreenBlock()) << 11 }

// BitmapBase returns the bitmap offset in bytes.
func (b BackgroundControl) BitmapBase() uint32 { return uint32(b.ScreenBlock()) << 14 }

// Wrap returns bit 13, selecting the extended palette slot of BG0 and
// BG1 and the area overflow behaviour of BG2 and BG3.
func (b BackgroundControl) Wrap() bool { return bits.Test(b, 13) }

// ScreenSize returns the screen size code (0-3).
func (b BackgroundControl) ScreenSize() uint8 { return uint8(bits.Extract(b, 14, 2)) }

// MapEntry is a 16-bit tile map entry, used by text backgrounds and
// extended affine backgrounds.
//
//	Bit 12-15 - Palette Number
//	Bit 11    - Vertical Flip
//	Bit 10    - Horizontal Flip
//	Bit 0-9   - Tile Number
type MapEntry uint16

// Tile returns the tile number.
func (m MapEntry) Tile() uint32 { return uint32(bits.Extract(m, 0, 10)) }

// HFlip reports whether the tile is mirrored horizontally.
func (m MapEntry) HFlip() bool { return bits.Test(m, 10) }

// VFlip reports whether the tile is mirrored vertically.
func (m MapEntry) VFlip() bool { return bits.Test(m, 11) }

// Palette returns the palette number.
func (m MapEntry) Palette() uint32 { return uint32(bits.Extract(m, 12, 4)) }
