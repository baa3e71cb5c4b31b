package gpu

import (
	"github.com/thelolagemann/ndsppu/internal/ppu"
	"github.com/thelolagemann/ndsppu/internal/types/registers"
)

// newRegisterSet maps the IO registers of engine e.
func newRegisterSet(e *ppu.Engine) *registers.Set {
	s := registers.NewSet()

	dispCnt := registers.WithWriteFunc(func(h *registers.Hardware, _ uint16) {
		e.SetDisplayControl(h.Value32())
	})
	s.Register(registers.DISPCNT, dispCnt)
	s.Register(registers.DISPCNT+2, dispCnt)

	for i := 0; i < 4; i++ {
		i := i
		a := registers.Address(i)
		s.Register(registers.BG0CNT+a*2, registers.WithWriteFunc(func(_ *registers.Hardware, v uint16) {
			e.SetBackgroundControl(i, v)
		}))
		s.Register(registers.BG0HOFS+a*4, registers.Mask(0x1FF), registers.WithWriteFunc(func(_ *registers.Hardware, v uint16) {
			e.SetScrollX(i, v)
		}))
		s.Register(registers.BG0VOFS+a*4, registers.Mask(0x1FF), registers.WithWriteFunc(func(_ *registers.Hardware, v uint16) {
			e.SetScrollY(i, v)
		}))
	}

	for i := 2; i < 4; i++ {
		i := i
		base := registers.BG2PA + registers.Address(i-2)*0x10
		for n, set := range []func(int, uint16){e.SetPA, e.SetPB, e.SetPC, e.SetPD} {
			set := set
			s.Register(base+registers.Address(n)*2, registers.WithWriteFunc(func(_ *registers.Hardware, v uint16) {
				set(i, v)
			}))
		}

		ref := registers.WithWriteFunc(func(h *registers.Hardware, _ uint16) {
			e.SetRefX(i, h.Value32())
		})
		s.Register(base+0x08, registers.Mask(0xFFFF), ref)
		s.Register(base+0x0A, registers.Mask(0x0FFF), ref)
		ref = registers.WithWriteFunc(func(h *registers.Hardware, _ uint16) {
			e.SetRefY(i, h.Value32())
		})
		s.Register(base+0x0C, registers.Mask(0xFFFF), ref)
		s.Register(base+0x0E, registers.Mask(0x0FFF), ref)
	}

	for w := 0; w < 2; w++ {
		w := w
		a := registers.Address(w)
		s.Register(registers.WIN0H+a*2, registers.WithWriteFunc(func(_ *registers.Hardware, v uint16) {
			e.SetWindowX(w, v)
		}))
		s.Register(registers.WIN0V+a*2, registers.WithWriteFunc(func(_ *registers.Hardware, v uint16) {
			e.SetWindowY(w, v)
		}))
	}

	s.Register(registers.WININ, registers.Mask(0x3F3F), registers.WithWriteFunc(func(_ *registers.Hardware, v uint16) {
		e.SetWindowIn(v)
	}))
	s.Register(registers.WINOUT, registers.Mask(0x3F3F), registers.WithWriteFunc(func(_ *registers.Hardware, v uint16) {
		e.SetWindowOut(v)
	}))
	s.Register(registers.MOSAIC, registers.WithWriteFunc(func(_ *registers.Hardware, v uint16) {
		e.SetMosaic(v)
	}))
	s.Register(registers.BLDCNT, registers.Mask(0x3FFF), registers.WithWriteFunc(func(_ *registers.Hardware, v uint16) {
		e.SetBlendControl(v)
	}))
	s.Register(registers.BLDALPHA, registers.Mask(0x1F1F), registers.WithWriteFunc(func(_ *registers.Hardware, v uint16) {
		e.SetBlendAlpha(v)
	}))
	s.Register(registers.BLDY, registers.Mask(0x001F), registers.WithWriteFunc(func(_ *registers.Hardware, v uint16) {
		e.SetBlendBrightness(v)
	}))
	s.Register(registers.MASTER_BRIGHT, registers.Mask(0xC01F), registers.WithWriteFunc(func(_ *registers.Hardware, v uint16) {
		e.SetMasterBrightness(v)
	}))

	return s
}

// route returns the register block and offset of address, or false
// if address lies outside of both engines' blocks.
func (g *GPU) route(address uint32) (*registers.Set, registers.Address, bool) {
	switch {
	case address >= registers.MainBase && address < registers.MainBase+registers.BlockSize:
		return g.regs[ppu.Main], address - registers.MainBase, true
	case address >= registers.SubBase && address < registers.SubBase+registers.BlockSize:
		return g.regs[ppu.Sub], address - registers.SubBase, true
	}
	return nil, 0, false
}

// Write8 writes a byte to the IO register at address. Writes to
// unmapped addresses are ignored.
func (g *GPU) Write8(address uint32, value uint8) {
	if s, offset, ok := g.route(address); ok && s.Write8(offset, value) {
		return
	}
	g.Debugf("gpu: ignoring 8-bit write of 0x%02X to 0x%08X", value, address)
}

// Write16 writes a half word to the IO register at address.
func (g *GPU) Write16(address uint32, value uint16) {
	if s, offset, ok := g.route(address); ok && s.Write16(offset, value) {
		return
	}
	g.Debugf("gpu: ignoring 16-bit write of 0x%04X to 0x%08X", value, address)
}

// Write32 writes a word to the IO registers at address.
func (g *GPU) Write32(address uint32, value uint32) {
	if s, offset, ok := g.route(address); ok && s.Write32(offset, value) {
		return
	}
	g.Debugf("gpu: ignoring 32-bit write of 0x%08X to 0x%08X", value, address)
}

// Read16 returns the last value written to the IO register at
// address, or 0 if it is unmapped.
func (g *GPU) Read16(address uint32) uint16 {
	if s, offset, ok := g.route(address); ok {
		return s.Read16(offset)
	}
	return 0
}

// Read32 returns the last value written to the IO registers at
// address, or 0 if they are unmapped.
func (g *GPU) Read32(address uint32) uint32 {
	if s, offset, ok := g.route(address); ok {
		return s.Read32(offset)
	}
	return 0
}
