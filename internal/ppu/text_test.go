package ppu

import (
	"testing"

	"github.com/thelolagemann/ndsppu/internal/ppu/palette"
)

// setupText configures BG0 as a 16 colour text background with its
// map at 0 and tiles at 0x4000.
func setupText(t *testing.T, cnt uint16) (*Engine, *testMemory) {
	t.Helper()
	e, mem := newTestEngine(t, Main)
	e.SetDisplayControl(dispNormal | dispBG0)
	e.SetBackgroundControl(0, 1<<2|cnt)
	return e, mem
}

func TestRenderText(t *testing.T) {
	t.Run("palette bank lookup", func(t *testing.T) {
		e, mem := setupText(t, 0)
		vram := mem.bank(RegionABG)

		vram.write16(0, 2<<12|5) // tile 5, palette 2
		vram[0x4000+5*32] = 0x73 // pixels 0 and 1
		mem.setColour(0, 2*16+3, 0x1234)
		mem.setColour(0, 2*16+7, 0x4321)

		line := e.RenderScanline(0)
		expectPixel(t, line, 0, 0x1234)
		expectPixel(t, line, 1, 0x4321)
		expectPixel(t, line, 2, palette.Black)
	})
	t.Run("flips", func(t *testing.T) {
		e, mem := setupText(t, 0)
		vram := mem.bank(RegionABG)

		vram.write16(0, 1<<10|1<<11|1) // tile 1 with both flips
		vram[0x4000+32+7*4+3] = 0x90  // bottom right pixel
		mem.setColour(0, 9, 0x0ABC)

		line := e.RenderScanline(0)
		expectPixel(t, line, 0, 0x0ABC)
		expectPixel(t, line, 7, palette.Black)
	})
	t.Run("scroll and wrap", func(t *testing.T) {
		e, mem := setupText(t, 1<<14) // 512x256
		vram := mem.bank(RegionABG)

		// first entry of the second page
		vram.write16(0x800, 1)
		vram.fill(0x4000+32, 32, 0x11)
		mem.setColour(0, 1, 0x7C00)

		e.SetScrollX(0, 256)
		line := e.RenderScanline(0)
		expectPixel(t, line, 0, 0x7C00)
		expectPixel(t, line, 8, palette.Black)

		// 512 pixels wide, so scrolling by 504 wraps the first page
		// into view at x=8
		vram.write16(0, 1)
		e.SetScrollX(0, 504)
		line = e.RenderScanline(0)
		expectPixel(t, line, 7, palette.Black)
		expectPixel(t, line, 8, 0x7C00)
		expectPixel(t, line, 16, palette.Black)
	})
	t.Run("vertical page", func(t *testing.T) {
		e, mem := setupText(t, 2<<14) // 256x512
		vram := mem.bank(RegionABG)

		vram.write16(0x800, 1)
		vram.fill(0x4000+32, 32, 0x11)
		mem.setColour(0, 1, 0x03E0)

		e.SetScrollY(0, 256)
		line := e.RenderScanline(0)
		expectPixel(t, line, 0, 0x03E0)
	})
	t.Run("256 colours", func(t *testing.T) {
		e, mem := setupText(t, 1<<7)
		vram := mem.bank(RegionABG)

		vram.write16(0, 3)
		vram.fill(0x4000+3*64, 64, 0xC8)
		mem.setColour(0, 0xC8, 0x1111)

		line := e.RenderScanline(5)
		expectPixel(t, line, 0, 0x1111)
		expectPixel(t, line, 7, 0x1111)
		expectPixel(t, line, 8, palette.Black)
	})
	t.Run("extended palette", func(t *testing.T) {
		e, mem := newTestEngine(t, Main)
		e.SetDisplayControl(dispNormal | dispBG0 | dispBGExt)
		e.SetBackgroundControl(0, 1<<2|1<<7|1<<13) // slot 2
		vram := mem.bank(RegionABG)
		vram.write16(0, 4<<12|3)
		vram.fill(0x4000+3*64, 64, 0x10)

		// unmapped slot draws nothing
		line := e.RenderScanline(0)
		expectPixel(t, line, 0, palette.Black)

		ext := mem.mapBank(RegionABGExtPalette2, 0x2000)
		ext.write16((4*256+0x10)*2, 0x2468)
		line = e.RenderScanline(0)
		expectPixel(t, line, 0, 0x2468)
	})
	t.Run("mosaic", func(t *testing.T) {
		e, mem := setupText(t, 1<<6)
		vram := mem.bank(RegionABG)

		vram.write16(0, 1)
		copy(vram[0x4000+32:], []byte{0x21, 0x43, 0x65, 0x87})
		for i := uint32(1); i <= 8; i++ {
			mem.setColour(0, i, palette.Colour(i))
		}
		e.SetMosaic(1<<4 | 3) // 4x2 blocks

		for _, y := range []int{0, 1} {
			line := e.RenderScanline(y)
			for x := 0; x < 4; x++ {
				expectPixel(t, line, x, 1)
			}
			for x := 4; x < 8; x++ {
				expectPixel(t, line, x, 5)
			}
		}
	})
}
