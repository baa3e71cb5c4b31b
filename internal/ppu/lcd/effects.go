package lcd

import "github.com/thelolagemann/ndsppu/pkg/bits"

// WindowControl is the WININ or WINOUT register. Each byte is a
// WindowMask: WININ holds window 0 (low) and window 1 (high), WINOUT
// holds the outside region (low) and the object window (high).
type WindowControl uint16

// Low returns the mask held in bits 0-7.
func (w WindowControl) Low() WindowMask { return WindowMask(w) }

// High returns the mask held in bits 8-15.
func (w WindowControl) High() WindowMask { return WindowMask(w >> 8) }

// WindowMask selects what is drawn inside a window region.
//
//	Bit 5   - Colour Special Effect (0=Disable, 1=Enable)
//	Bit 4   - OBJ Enable
//	Bit 0-3 - BG0-BG3 Enable
type WindowMask uint8

// Draws reports whether layer l is drawn in the region.
func (m WindowMask) Draws(l Layer) bool { return l >= BG0 && l <= OBJ && bits.Test(m, uint8(l)) }

// Effects reports whether colour special effects apply in the region.
func (m WindowMask) Effects() bool { return bits.Test(m, 5) }

// BlendEffect is a colour special effect.
type BlendEffect = uint8

const (
	EffectNone BlendEffect = iota
	EffectAlpha
	EffectBrighten
	EffectDarken
)

// BlendControl is the colour special effects selection register (BLDCNT).
//
//	Bit 8-13 - 2nd Target BG0-BG3, OBJ, Backdrop
//	Bit 6-7  - Effect (0=None, 1=Alpha, 2=Brightness Up, 3=Brightness Down)
//	Bit 0-5  - 1st Target BG0-BG3, OBJ, Backdrop
type BlendControl uint16

// Source reports whether layer l is a 1st target.
func (b BlendControl) Source(l Layer) bool {
	return l >= BG0 && l <= Backdrop && bits.Test(b, uint8(l))
}

// Target reports whether layer l is a 2nd target.
func (b BlendControl) Target(l Layer) bool {
	return l >= BG0 && l <= Backdrop && bits.Test(b, uint8(8+l))
}

// Effect returns the selected colour special effect.
func (b BlendControl) Effect() BlendEffect { return uint8(bits.Extract(b, 6, 2)) }

// BlendAlpha holds the alpha blending coefficients (BLDALPHA).
//
//	Bit 8-12 - EVB, 2nd target coefficient (0-16, /16)
//	Bit 0-4  - EVA, 1st target coefficient (0-16, /16)
type BlendAlpha uint16

// EVA returns the 1st target coefficient.
func (b BlendAlpha) EVA() uint8 { return uint8(bits.Extract(b, 0, 5)) }

// EVB returns the 2nd target coefficient.
func (b BlendAlpha) EVB() uint8 { return uint8(bits.Extract(b, 8, 5)) }

// BlendBrightness holds the brightness coefficient (BLDY).
//
//	Bit 0-4 - EVY (0-16, /16)
type BlendBrightness uint16

// EVY returns the brightness coefficient.
func (b BlendBrightness) EVY() uint8 { return uint8(bits.Extract(b, 0, 5)) }

// Mosaic is the mosaic size register (MOSAIC). Sizes are stored
// minus one.
//
//	Bit 12-15 - OBJ Mosaic V-Size
//	Bit 8-11  - OBJ Mosaic H-Size
//	Bit 4-7   - BG Mosaic V-Size
//	Bit 0-3   - BG Mosaic H-Size
type Mosaic uint16

// BGWidth returns the background mosaic block width in pixels (1-16).
func (m Mosaic) BGWidth() int { return int(bits.Extract(m, 0, 4)) + 1 }

// BGHeight returns the background mosaic block height in pixels (1-16).
func (m Mosaic) BGHeight() int { return int(bits.Extract(m, 4, 4)) + 1 }

// OBJWidth returns the object mosaic block width in pixels (1-16).
func (m Mosaic) OBJWidth() int { return int(bits.Extract(m, 8, 4)) + 1 }

// OBJHeight returns the object mosaic block height in pixels (1-16).
func (m Mosaic) OBJHeight() int { return int(bits.Extract(m, 12, 4)) + 1 }

// MasterBrightness is the master brightness register (MASTER_BRIGHT),
// applied after composition.
//
//	Bit 14-15 - Mode   (0=Disable, 1=Up, 2=Down, 3=Reserved)
//	Bit 0-4   - Factor (0-16, values above 16 act as 16)
type MasterBrightness uint16

// Mode returns the brightness mode.
func (m MasterBrightness) Mode() uint8 { return uint8(bits.Extract(m, 14, 2)) }

// Factor returns the brightness factor, clamped to 16.
func (m MasterBrightness) Factor() uint8 {
	f := uint8(bits.Extract(m, 0, 5))
	if f > 16 {
		return 16
	}
	return f
}
