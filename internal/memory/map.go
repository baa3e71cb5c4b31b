package memory

import (
	"github.com/thelolagemann/ndsppu/internal/ppu"
)

// Map maps the memory regions read by the 2D engines to blocks. It
// implements ppu.Memory and ppu.FIFOSource.
//
// A Map must not be modified while a scanline is being rendered.
type Map struct {
	banks [ppu.RegionCount]Block
	fifo  []uint32
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{}
}

// Default returns a Map with the engine VRAM, palette and OAM
// regions mapped to zeroed blocks. The LCDC and extended palette
// regions are left unmapped.
func Default() *Map {
	m := NewMap()
	m.Set(ppu.RegionABG, NewBlock(ABGSize))
	m.Set(ppu.RegionBBG, NewBlock(BBGSize))
	m.Set(ppu.RegionAOBJ, NewBlock(AOBJSize))
	m.Set(ppu.RegionBOBJ, NewBlock(BOBJSize))
	m.Set(ppu.RegionPalette, NewBlock(PaletteSize))
	m.Set(ppu.RegionOAM, NewBlock(OAMSize))
	return m
}

// Set maps region r to b. A nil b unmaps the region.
func (m *Map) Set(r ppu.Region, b Block) {
	if r >= ppu.RegionCount {
		return
	}
	m.banks[r] = b
}

// Block returns the block mapped to region r, or nil.
func (m *Map) Block(r ppu.Region) Block {
	if r >= ppu.RegionCount {
		return nil
	}
	return m.banks[r]
}

// Bank implements ppu.Memory.
func (m *Map) Bank(r ppu.Region) ppu.Bank {
	if b := m.Block(r); b != nil {
		return b
	}
	return nil
}

// Regions returns the mapped regions in ascending order.
func (m *Map) Regions() []ppu.Region {
	var regions []ppu.Region
	for r, b := range m.banks {
		if b != nil {
			regions = append(regions, ppu.Region(r))
		}
	}
	return regions
}

// PushFIFO queues words for the main memory display.
func (m *Map) PushFIFO(words ...uint32) {
	m.fifo = append(m.fifo, words...)
}

// ReadFIFO pops the next word of the main memory display FIFO,
// returning 0 once it runs dry.
func (m *Map) ReadFIFO() uint32 {
	if len(m.fifo) == 0 {
		return 0
	}
	v := m.fifo[0]
	m.fifo = m.fifo[1:]
	return v
}
