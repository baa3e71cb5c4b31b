package ppu

import (
	"encoding/binary"
	"testing"

	"github.com/thelolagemann/ndsppu/internal/ppu/palette"
)

type testBank []byte

func (b testBank) Read8(address uint32) uint8 {
	if int(address) >= len(b) {
		return 0
	}
	return b[address]
}

func (b testBank) Read16(address uint32) uint16 {
	if int(address)+1 >= len(b) {
		return 0
	}
	return binary.LittleEndian.Uint16(b[address:])
}

func (b testBank) Read32(address uint32) uint32 {
	if int(address)+3 >= len(b) {
		return 0
	}
	return binary.LittleEndian.Uint32(b[address:])
}

func (b testBank) write16(address uint32, v uint16) {
	binary.LittleEndian.PutUint16(b[address:], v)
}

func (b testBank) fill(address uint32, n int, v uint8) {
	for i := 0; i < n; i++ {
		b[address+uint32(i)] = v
	}
}

type testMemory struct {
	banks map[Region]testBank
}

func (m *testMemory) Bank(r Region) Bank {
	if b, ok := m.banks[r]; ok {
		return b
	}
	return nil
}

func (m *testMemory) bank(r Region) testBank {
	return m.banks[r]
}

// mapBank maps a zeroed bank of size bytes to r.
func (m *testMemory) mapBank(r Region, size int) testBank {
	b := make(testBank, size)
	m.banks[r] = b
	return b
}

func newTestMemory() *testMemory {
	m := &testMemory{banks: make(map[Region]testBank)}
	m.mapBank(RegionABG, 0x80000)
	m.mapBank(RegionBBG, 0x20000)
	m.mapBank(RegionAOBJ, 0x40000)
	m.mapBank(RegionBOBJ, 0x20000)
	m.mapBank(RegionPalette, 0x800)
	m.mapBank(RegionOAM, 0x800)
	return m
}

func newTestEngine(t testing.TB, id ID, opts ...Opt) (*Engine, *testMemory) {
	t.Helper()
	mem := newTestMemory()
	e, err := New(id, mem, opts...)
	if err != nil {
		t.Fatalf("expected no error creating engine, got %v", err)
	}
	return e, mem
}

const (
	dispNormal  = 1 << 16
	dispBG0     = 1 << 8
	dispBG1     = 1 << 9
	dispBG2     = 1 << 10
	dispBG3     = 1 << 11
	dispOBJ     = 1 << 12
	dispWin0    = 1 << 13
	dispWin1    = 1 << 14
	dispObjWin  = 1 << 15
	dispOBJ1D   = 1 << 4
	dispBGExt   = 1 << 30
	dispOBJExt  = 1 << 31
	visibleMask = uint16(palette.Visible)
)

// setColour writes colour c to palette entry index of the palette at base.
func (m *testMemory) setColour(base, index uint32, c palette.Colour) {
	m.bank(RegionPalette).write16(base+index*2, uint16(c))
}

func expectPixel(t *testing.T, line [ScreenWidth]uint16, x int, c palette.Colour) {
	t.Helper()
	if expected := uint16(c) | visibleMask; line[x] != expected {
		t.Errorf("expected pixel %d to be 0x%04X, got 0x%04X", x, expected, line[x])
	}
}
