package ppu

import (
	"testing"

	"github.com/thelolagemann/ndsppu/internal/ppu/background"
	"github.com/thelolagemann/ndsppu/internal/ppu/palette"
)

func identity(e *Engine, i int) {
	e.SetPA(i, 0x100)
	e.SetPD(i, 0x100)
}

func TestRenderAffine(t *testing.T) {
	setup := func(t *testing.T, cnt uint16) (*Engine, *testMemory) {
		e, mem := newTestEngine(t, Main)
		e.SetDisplayControl(dispNormal | dispBG2 | 2)
		e.SetBackgroundControl(2, 1<<2|cnt) // 128x128, tiles at 0x4000
		identity(e, 2)

		vram := mem.bank(RegionABG)
		vram[0] = 1
		vram.fill(0x4000+64, 64, 5)
		mem.setColour(0, 5, 0x7FE0)
		return e, mem
	}

	t.Run("identity", func(t *testing.T) {
		e, _ := setup(t, 0)
		if k := e.BackgroundKind(2); k != background.Affine {
			t.Fatalf("expected affine background, got %s", k)
		}
		line := e.RenderScanline(0)
		expectPixel(t, line, 0, 0x7FE0)
		expectPixel(t, line, 7, 0x7FE0)
		expectPixel(t, line, 8, palette.Black)

		line = e.RenderScanline(8)
		expectPixel(t, line, 0, palette.Black)
	})
	t.Run("no wrap", func(t *testing.T) {
		e, _ := setup(t, 0)
		line := e.RenderScanline(0)
		expectPixel(t, line, 128, palette.Black)
	})
	t.Run("wrap", func(t *testing.T) {
		e, _ := setup(t, 1<<13)
		line := e.RenderScanline(0)
		expectPixel(t, line, 128, 0x7FE0)
		expectPixel(t, line, 136, palette.Black)
	})
	t.Run("scaled", func(t *testing.T) {
		e, _ := setup(t, 0)
		e.SetPA(2, 0x200)
		line := e.RenderScanline(0)
		expectPixel(t, line, 3, 0x7FE0)
		expectPixel(t, line, 4, palette.Black)
	})
	t.Run("reference point", func(t *testing.T) {
		e, _ := setup(t, 0)
		e.SetRefY(2, 8<<8)
		line := e.RenderScanline(0)
		expectPixel(t, line, 0, palette.Black)

		e.SetRefY(2, uint32(0x0FFFFFFF&^0xFF)) // -1.0
		line = e.RenderScanline(1)
		expectPixel(t, line, 0, 0x7FE0)
	})
}

func TestRenderExtended(t *testing.T) {
	setup := func(t *testing.T, cnt uint16) (*Engine, *testMemory) {
		e, mem := newTestEngine(t, Main)
		e.SetDisplayControl(dispNormal | dispBG3 | 5)
		e.SetBackgroundControl(3, cnt)
		identity(e, 3)
		return e, mem
	}

	t.Run("direct colour bitmap", func(t *testing.T) {
		e, mem := setup(t, 1<<7|1<<2)
		if s := e.BackgroundSize(3); s.Width != 128 || s.Height != 128 {
			t.Fatalf("expected 128x128 bitmap, got %dx%d", s.Width, s.Height)
		}
		vram := mem.bank(RegionABG)
		vram.write16(0, 0x801F)
		vram.write16(2, 0x001F)
		vram.write16(128*2, 0x83E0)

		line := e.RenderScanline(0)
		expectPixel(t, line, 0, 0x001F)
		expectPixel(t, line, 1, palette.Black)

		line = e.RenderScanline(1)
		expectPixel(t, line, 0, 0x03E0)
	})
	t.Run("256 colour bitmap", func(t *testing.T) {
		e, mem := setup(t, 1<<7|1<<8) // screen block 1, 16K
		vram := mem.bank(RegionABG)
		vram[0x4000] = 9
		vram[0x4001] = 0
		mem.setColour(0, 9, 0x2222)

		line := e.RenderScanline(0)
		expectPixel(t, line, 0, 0x2222)
		expectPixel(t, line, 1, palette.Black)
	})
	t.Run("tiled", func(t *testing.T) {
		e, mem := setup(t, 1<<2|1<<8) // tiles at 0x4000, map at 0x800
		vram := mem.bank(RegionABG)
		vram.write16(0x800, 3<<12|1)
		vram.fill(0x4000+64, 64, 0x20)

		// no extended palette mapped, nothing is drawn
		line := e.RenderScanline(0)
		expectPixel(t, line, 0, palette.Black)

		ext := mem.mapBank(RegionABGExtPalette3, 0x2000)
		ext.write16((3*256+0x20)*2, 0x1357)
		line = e.RenderScanline(0)
		expectPixel(t, line, 0, 0x1357)
		expectPixel(t, line, 8, palette.Black)
	})
}
