package memory

import (
	"testing"

	"github.com/thelolagemann/ndsppu/internal/ppu"
)

func TestBlock(t *testing.T) {
	b := NewBlock(8)
	b.Write32(0, 0x44332211)
	b.Write16(4, 0x6655)
	b.Write8(6, 0x77)

	if got := b.Read8(1); got != 0x22 {
		t.Errorf("expected 0x22, got 0x%02X", got)
	}
	if got := b.Read16(2); got != 0x4433 {
		t.Errorf("expected 0x4433, got 0x%04X", got)
	}
	if got := b.Read32(3); got != 0x77665544 {
		t.Errorf("expected 0x77665544, got 0x%08X", got)
	}

	t.Run("out of range", func(t *testing.T) {
		b.Write16(7, 0xFFFF)
		b.Write32(0xFFFFFFFF, 0xFFFFFFFF)
		if got := b.Read8(7); got != 0 {
			t.Errorf("expected partial write to be ignored, got 0x%02X", got)
		}
		if got := b.Read16(7); got != 0 {
			t.Errorf("expected 0, got 0x%04X", got)
		}
		if got := b.Read32(0xFFFFFFFE); got != 0 {
			t.Errorf("expected 0, got 0x%08X", got)
		}
	})
	t.Run("backing", func(t *testing.T) {
		data := []byte{1, 2, 3, 4}
		b := NewBlockFrom(data)
		b.Write8(0, 9)
		if data[0] != 9 || b.Len() != 4 || &b.Bytes()[0] != &data[0] {
			t.Errorf("expected block to share its backing memory")
		}
	})
}

func TestMap(t *testing.T) {
	m := Default()
	for _, r := range []ppu.Region{ppu.RegionABG, ppu.RegionBBG, ppu.RegionAOBJ, ppu.RegionBOBJ, ppu.RegionPalette, ppu.RegionOAM} {
		if m.Bank(r) == nil {
			t.Errorf("expected %s to be mapped", r)
		}
	}
	if got := m.Block(ppu.RegionABG).Len(); got != ABGSize {
		t.Errorf("expected ABG to be %d bytes, got %d", ABGSize, got)
	}

	// an unmapped region must be an untyped nil
	if b := m.Bank(ppu.RegionLCDCA); b != nil {
		t.Errorf("expected unmapped region to be nil, got %T", b)
	}
	if b := m.Bank(ppu.RegionCount); b != nil {
		t.Errorf("expected out of range region to be nil")
	}

	m.Set(ppu.RegionLCDCA, NewBlock(LCDCSize))
	if len(m.Regions()) != 7 {
		t.Errorf("expected 7 mapped regions, got %v", m.Regions())
	}
	m.Set(ppu.RegionLCDCA, nil)
	if m.Bank(ppu.RegionLCDCA) != nil {
		t.Errorf("expected region to be unmapped")
	}
}

func TestFIFO(t *testing.T) {
	m := NewMap()
	var _ ppu.FIFOSource = m

	m.PushFIFO(1, 2)
	m.PushFIFO(3)
	for _, expected := range []uint32{1, 2, 3, 0} {
		if got := m.ReadFIFO(); got != expected {
			t.Errorf("expected %d, got %d", expected, got)
		}
	}
}

func TestEngine(t *testing.T) {
	m := Default()
	e, err := ppu.New(ppu.Main, m)
	if err != nil {
		t.Fatal(err)
	}
	e.SetDisplayControl(1 << 16)
	m.Block(ppu.RegionPalette).Write16(0, 0x1F)

	line := e.RenderScanline(0)
	if line[0] != 0x801F {
		t.Errorf("expected backdrop 0x801F, got 0x%04X", line[0])
	}
}
