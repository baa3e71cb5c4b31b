// Package ppu implements the 2D graphics engines of the Nintendo DS.
//
// Each Engine owns the register state of one engine and renders a
// 256 pixel scanline on request, reading graphics from the Memory it
// was constructed with. The main engine (A) and sub engine (B) are
// independent and share no mutable state.
//
// References:
//   - [GBATEK](https://problemkaputt.de/gbatek.htm#dsvideo)
package ppu

import (
	"errors"

	"github.com/thelolagemann/ndsppu/internal/ppu/background"
	"github.com/thelolagemann/ndsppu/internal/ppu/lcd"
	"github.com/thelolagemann/ndsppu/internal/ppu/palette"
	"github.com/thelolagemann/ndsppu/pkg/log"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 256
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 192

	// ObjectCount is the number of object descriptors held in an
	// engine's OAM.
	ObjectCount = 128
)

var (
	// ErrInvalidEngine is returned when creating an engine with an
	// unknown ID.
	ErrInvalidEngine = errors.New("ppu: invalid engine")
	// ErrNilMemory is returned when creating an engine without memory.
	ErrNilMemory = errors.New("ppu: nil memory")
)

// ID identifies one of the two engines.
type ID uint8

const (
	// Main is engine A, which supports all display modes, 3D on BG0
	// and the larger VRAM offsets.
	Main ID = iota
	// Sub is engine B.
	Sub
)

func (id ID) String() string {
	switch id {
	case Main:
		return "main"
	case Sub:
		return "sub"
	}
	return "unknown"
}

// Engine is a 2D graphics engine.
type Engine struct {
	id  ID
	mem Memory
	log log.Logger

	// display control, decoded by SetDisplayControl
	dispCnt        lcd.DisplayControl
	displayMode    lcd.DisplayMode // DISPCNT.16-17 masked by engine
	vramBlock      uint8           // DISPCNT.18-19
	sprite1D       bool            // DISPCNT.4
	objBoundary    uint8           // tile number shift for 1D tiled objects
	objBMPBoundary uint8           // tile number shift for 1D bitmap objects

	bg  [4]layer
	win [2]window

	winIn    lcd.WindowControl
	winOut   lcd.WindowControl
	bldCnt   lcd.BlendControl
	bldAlpha lcd.BlendAlpha
	bldY     lcd.BlendBrightness
	mosaic   lcd.Mosaic
	bright   lcd.MasterBrightness

	// layer visibility and draw order, maintained by resort
	visible [5]bool // software toggles, BG0-BG3 and OBJ
	enabled [5]bool // effective visibility
	order   [4][4]int
	counts  [4]int

	// offsets into the memory shared by both engines
	oamBase uint32
	palBase uint32

	// scanline state
	line      [ScreenWidth]palette.Colour
	linePrio  [ScreenWidth]uint8
	objWindow [ScreenHeight][ScreenWidth]bool
	objAffine [ObjectCount]AffineParams

	// Debug controls
	Debug struct {
		AffineSprites bool // Sample rotation/scaling objects through their matrix
	}
}

// layer holds the state of a single background.
type layer struct {
	cnt lcd.BackgroundControl

	kind    background.Kind
	size    background.Size
	extMode uint8 // extended background selector, (256 colours << 1) | char block bit 0

	tileBase uint32
	bmpBase  uint32
	mapBase  uint32
	extSlot  int

	scrollX, scrollY uint16
	pa, pb, pc, pd   int16 // 8.8 fixed point
	refX, refY       int32 // 20.8 fixed point, 28 bits
}

// window is a rectangle, inclusive on both ends of each axis. A start
// greater than its end wraps around the screen edge.
type window struct {
	x1, x2 uint8
	y1, y2 uint8
}

// AffineParams is a rotation/scaling matrix in 8.8 fixed point.
type AffineParams struct {
	PA, PB, PC, PD int16
}

// New creates the engine id reading from mem.
func New(id ID, mem Memory, opts ...Opt) (*Engine, error) {
	if id != Main && id != Sub {
		return nil, ErrInvalidEngine
	}
	if mem == nil {
		return nil, ErrNilMemory
	}

	e := &Engine{
		id:  id,
		mem: mem,
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset()

	return e, nil
}

// Reset zeroes all registers and restores the power on defaults. The
// engine keeps its memory, logger and debug settings.
func (e *Engine) Reset() {
	*e = Engine{
		id:    e.id,
		mem:   e.mem,
		log:   e.log,
		Debug: e.Debug,
	}

	for i := range e.bg {
		e.bg[i].size = background.Size{Width: 256, Height: 256}
		e.bg[i].extSlot = i
	}
	for i := range e.visible {
		e.visible[i] = true
	}
	e.sprite1D = true
	e.objBoundary = 5
	e.objBMPBoundary = 7

	if e.id == Sub {
		e.oamBase = 0x400
		e.palBase = palette.EngineSize
	}

	e.resort()
}

// ID returns the engine's identity.
func (e *Engine) ID() ID { return e.id }

// DisplayMode returns the decoded display mode.
func (e *Engine) DisplayMode() lcd.DisplayMode { return e.displayMode }

// BGMode returns the background video mode.
func (e *Engine) BGMode() uint8 { return e.dispCnt.BGMode() }

// BackgroundSize returns the size of background i in pixels.
func (e *Engine) BackgroundSize(i int) background.Size { return e.bg[i&3].size }

// BackgroundKind returns the renderer kind of background i.
func (e *Engine) BackgroundKind(i int) background.Kind { return e.bg[i&3].kind }

// LayerEnabled reports whether layer l (BG0-BG3 or OBJ) is drawn.
func (e *Engine) LayerEnabled(l lcd.Layer) bool {
	if l < lcd.BG0 || l > lcd.OBJ {
		return false
	}
	return e.enabled[l]
}

// Layers returns the enabled backgrounds of priority p in draw order.
func (e *Engine) Layers(p int) []int {
	p &= 3
	return append([]int(nil), e.order[p][:e.counts[p]]...)
}

// ObjectAffine returns the rotation/scaling matrix last fetched for
// object i.
func (e *Engine) ObjectAffine(i int) AffineParams {
	return e.objAffine[i&(ObjectCount-1)]
}
