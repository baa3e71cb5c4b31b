// Package background provides the fixed tables describing how each
// background of a 2D engine is rendered in each video mode.
package background

// Kind is the kind of renderer used for a background.
type Kind uint8

const (
	// Text is a tiled background without transformation.
	Text Kind = iota
	// Affine is a rotated/scaled background of 8-bit tiles with
	// 8-bit map entries.
	Affine
	// Extended is a rotated/scaled background that is either tiled
	// with 16-bit map entries or a bitmap, selected by its control
	// register.
	Extended
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Affine:
		return "affine"
	case Extended:
		return "extended"
	}
	return "unknown"
}

// modes maps each video mode (0-7) and background (0-3) to a Kind.
var modes = [8][4]Kind{
	{Text, Text, Text, Text},
	{Text, Text, Text, Affine},
	{Text, Text, Affine, Affine},
	{Text, Text, Text, Extended},
	{Text, Text, Affine, Extended},
	{Text, Text, Extended, Extended},
	{Text, Text, Text, Text},
	{Text, Text, Text, Text},
}

// KindFor returns the renderer kind of background bg in video mode
// mode. Only the low 3 bits of mode and 2 bits of bg are used.
func KindFor(mode uint8, bg int) Kind {
	return modes[mode&7][bg&3]
}

// Class selects the row of the size table.
type Class uint8

const (
	ClassText Class = iota
	ClassAffine
	ClassBitmap
)

// ClassFor returns the size class of a background of kind k. Extended
// backgrounds are sized as bitmaps when bitmap is set.
func ClassFor(k Kind, bitmap bool) Class {
	switch k {
	case Affine:
		return ClassAffine
	case Extended:
		if bitmap {
			return ClassBitmap
		}
		return ClassAffine
	}
	return ClassText
}

// Size is the size of a background in pixels.
type Size struct {
	Width, Height int
}

var sizes = [3][4]Size{
	ClassText:   {{256, 256}, {512, 256}, {256, 512}, {512, 512}},
	ClassAffine: {{128, 128}, {256, 256}, {512, 512}, {1024, 1024}},
	ClassBitmap: {{128, 128}, {256, 256}, {512, 256}, {512, 512}},
}

// SizeFor returns the size of a background of class c with the screen
// size code code (0-3).
func SizeFor(c Class, code uint8) Size {
	return sizes[c][code&3]
}
