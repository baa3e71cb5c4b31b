package lcd

import "github.com/thelolagemann/ndsppu/pkg/bits"

// ObjectMode is the rendering mode of an object.
type ObjectMode = uint8

const (
	ObjectNormal ObjectMode = iota
	ObjectSemiTransparent
	ObjectWindow
	ObjectBitmap
)

// ObjectSize is the size in bytes of an object descriptor in OAM.
const ObjectSize = 8

// Object is an object descriptor as stored in OAM. The fourth half
// word of each descriptor belongs to the rotation/scaling parameter
// table and is not part of the object.
//
// Attribute 0:
//
//	Bit 14-15 - Shape             (0=Square, 1=Horizontal, 2=Vertical)
//	Bit 13    - Colours           (0=16/16, 1=256/1)
//	Bit 12    - Mosaic            (0=Off, 1=On)
//	Bit 10-11 - Mode              (0=Normal, 1=Semi-Transparent, 2=Window, 3=Bitmap)
//	Bit 8-9   - Rotation/Scaling  (0=Off, 1=On, 2=Disabled, 3=On, double size)
//	Bit 0-7   - Y Coordinate
//
// Attribute 1:
//
//	Bit 14-15 - Size              (0-3)
//	Bit 13    - Vertical Flip     (rotation/scaling off)
//	Bit 12    - Horizontal Flip   (rotation/scaling off)
//	Bit 9-13  - Parameter Index   (rotation/scaling on)
//	Bit 0-8   - X Coordinate      (signed)
//
// Attribute 2:
//
//	Bit 12-15 - Palette Number    (16 colour and extended palette objects)
//	Bit 10-11 - Priority          (0=Highest)
//	Bit 0-9   - Tile Number
type Object struct {
	Attr0, Attr1, Attr2 uint16
}

// Y returns the raw Y coordinate.
func (o Object) Y() uint8 { return uint8(o.Attr0) }

// RotScale returns the raw rotation/scaling field (0-3).
func (o Object) RotScale() uint8 { return uint8(bits.Extract(o.Attr0, 8, 2)) }

// Disabled reports whether the object is hidden, which is the case
// when the rotation/scaling field holds 2.
func (o Object) Disabled() bool { return o.RotScale() == 2 }

// Affine reports whether rotation/scaling is enabled.
func (o Object) Affine() bool { return bits.Test(o.Attr0, 8) }

// DoubleSize reports whether an affine object uses a bounding box
// twice its size.
func (o Object) DoubleSize() bool { return o.RotScale() == 3 }

// Mode returns the object mode.
func (o Object) Mode() ObjectMode { return uint8(bits.Extract(o.Attr0, 10, 2)) }

// Mosaic reports whether mosaic is enabled.
func (o Object) Mosaic() bool { return bits.Test(o.Attr0, 12) }

// Colour256 reports whether the object uses 256 colours.
func (o Object) Colour256() bool { return bits.Test(o.Attr0, 13) }

// Shape returns the shape code (0-3).
func (o Object) Shape() uint8 { return uint8(bits.Extract(o.Attr0, 14, 2)) }

// X returns the X coordinate, sign extended from 9 bits.
func (o Object) X() int { return int(int32(uint32(o.Attr1)<<23) >> 23) }

// AffineIndex returns the rotation/scaling parameter index (0-31).
func (o Object) AffineIndex() uint8 { return uint8(bits.Extract(o.Attr1, 9, 5)) }

// HFlip reports whether the object is mirrored horizontally.
func (o Object) HFlip() bool { return bits.Test(o.Attr1, 12) }

// VFlip reports whether the object is mirrored vertically.
func (o Object) VFlip() bool { return bits.Test(o.Attr1, 13) }

// Size returns the size code (0-3).
func (o Object) Size() uint8 { return uint8(bits.Extract(o.Attr1, 14, 2)) }

// Tile returns the tile number.
func (o Object) Tile() uint32 { return uint32(bits.Extract(o.Attr2, 0, 10)) }

// Priority returns the drawing priority (0-3).
func (o Object) Priority() uint8 { return uint8(bits.Extract(o.Attr2, 10, 2)) }

// Palette returns the palette number.
func (o Object) Palette() uint32 { return uint32(bits.Extract(o.Attr2, 12, 4)) }

var objectSizes = [4][4][2]int{
	{{8, 8}, {16, 8}, {8, 16}, {8, 8}},
	{{16, 16}, {32, 8}, {8, 32}, {8, 8}},
	{{32, 32}, {32, 16}, {16, 32}, {8, 8}},
	{{64, 64}, {64, 32}, {32, 64}, {8, 8}},
}

// Dimensions returns the object's width and height in pixels, looked
// up by size and shape. The prohibited shape 3 yields 8x8.
func (o Object) Dimensions() (w, h int) {
	s := objectSizes[o.Size()][o.Shape()]
	return s[0], s[1]
}
