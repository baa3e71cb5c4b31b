package ppu

import "github.com/thelolagemann/ndsppu/internal/ppu/lcd"

// SetScrollX writes the horizontal offset of background i (BGxHOFS).
func (e *Engine) SetScrollX(i int, v uint16) { e.bg[i&3].scrollX = v & 0x1FF }

// SetScrollY writes the vertical offset of background i (BGxVOFS).
func (e *Engine) SetScrollY(i int, v uint16) { e.bg[i&3].scrollY = v & 0x1FF }

// SetScroll writes both offsets of background i with a single word,
// the horizontal offset in the low half.
func (e *Engine) SetScroll(i int, v uint32) {
	e.SetScrollX(i, uint16(v))
	e.SetScrollY(i, uint16(v>>16))
}

// signExtend28 sign extends the 28-bit reference point registers.
func signExtend28(v uint32) int32 {
	return int32(v<<4) >> 4
}

// SetRefX writes the X reference point of background i (BGxX).
func (e *Engine) SetRefX(i int, v uint32) { e.bg[i&3].refX = signExtend28(v) }

// SetRefY writes the Y reference point of background i (BGxY).
func (e *Engine) SetRefY(i int, v uint32) { e.bg[i&3].refY = signExtend28(v) }

// SetRefXLow writes the low half word of BGxX.
func (e *Engine) SetRefXLow(i int, v uint16) {
	l := &e.bg[i&3]
	l.refX = signExtend28(uint32(l.refX)&0xFFFF0000 | uint32(v))
}

// SetRefXHigh writes the high half word of BGxX.
func (e *Engine) SetRefXHigh(i int, v uint16) {
	l := &e.bg[i&3]
	l.refX = signExtend28(uint32(v)<<16 | uint32(l.refX)&0xFFFF)
}

// SetRefYLow writes the low half word of BGxY.
func (e *Engine) SetRefYLow(i int, v uint16) {
	l := &e.bg[i&3]
	l.refY = signExtend28(uint32(l.refY)&0xFFFF0000 | uint32(v))
}

// SetRefYHigh writes the high half word of BGxY.
func (e *Engine) SetRefYHigh(i int, v uint16) {
	l := &e.bg[i&3]
	l.refY = signExtend28(uint32(v)<<16 | uint32(l.refY)&0xFFFF)
}

// SetPA writes the dx matrix parameter of background i (BGxPA).
func (e *Engine) SetPA(i int, v uint16) { e.bg[i&3].pa = int16(v) }

// SetPB writes the dmx matrix parameter of background i (BGxPB).
func (e *Engine) SetPB(i int, v uint16) { e.bg[i&3].pb = int16(v) }

// SetPC writes the dy matrix parameter of background i (BGxPC).
func (e *Engine) SetPC(i int, v uint16) { e.bg[i&3].pc = int16(v) }

// SetPD writes the dmy matrix parameter of background i (BGxPD).
func (e *Engine) SetPD(i int, v uint16) { e.bg[i&3].pd = int16(v) }

// SetPAPB writes PA (low half) and PB (high half) with a single word.
func (e *Engine) SetPAPB(i int, v uint32) {
	e.SetPA(i, uint16(v))
	e.SetPB(i, uint16(v>>16))
}

// SetPCPD writes PC (low half) and PD (high half) with a single word.
func (e *Engine) SetPCPD(i int, v uint32) {
	e.SetPC(i, uint16(v))
	e.SetPD(i, uint16(v>>16))
}

// SetWindowX writes the horizontal dimensions of window w (WINxH),
// the start in the high byte and the end in the low byte.
func (e *Engine) SetWindowX(w int, v uint16) {
	e.win[w&1].x1 = uint8(v >> 8)
	e.win[w&1].x2 = uint8(v)
}

// SetWindowY writes the vertical dimensions of window w (WINxV).
func (e *Engine) SetWindowY(w int, v uint16) {
	e.win[w&1].y1 = uint8(v >> 8)
	e.win[w&1].y2 = uint8(v)
}

// SetWindowXByte writes a single byte of the horizontal window
// dimensions, where n is the byte offset from WIN0H: odd bytes hold a
// start and even bytes an end, and n>>1 selects the window.
func (e *Engine) SetWindowXByte(n int, v uint8) {
	w := &e.win[(n>>1)&1]
	if n&1 == 1 {
		w.x1 = v
	} else {
		w.x2 = v
	}
}

// SetWindowYByte is the vertical counterpart of SetWindowXByte.
func (e *Engine) SetWindowYByte(n int, v uint8) {
	w := &e.win[(n>>1)&1]
	if n&1 == 1 {
		w.y1 = v
	} else {
		w.y2 = v
	}
}

// SetWindowIn writes the inside of windows 0 and 1 control (WININ).
func (e *Engine) SetWindowIn(v uint16) { e.winIn = lcd.WindowControl(v & 0x3F3F) }

// SetWindowOut writes the outside and object window control (WINOUT).
func (e *Engine) SetWindowOut(v uint16) { e.winOut = lcd.WindowControl(v & 0x3F3F) }

// SetWindowInByte writes byte n (0 or 1) of WININ.
func (e *Engine) SetWindowInByte(n int, v uint8) {
	e.SetWindowIn(setByte(uint16(e.winIn), n, v))
}

// SetWindowOutByte writes byte n (0 or 1) of WINOUT.
func (e *Engine) SetWindowOutByte(n int, v uint8) {
	e.SetWindowOut(setByte(uint16(e.winOut), n, v))
}

func setByte(r uint16, n int, v uint8) uint16 {
	if n&1 == 1 {
		return r&0x00FF | uint16(v)<<8
	}
	return r&0xFF00 | uint16(v)
}

// SetBlendControl writes the colour special effects register (BLDCNT).
func (e *Engine) SetBlendControl(v uint16) { e.bldCnt = lcd.BlendControl(v) }

// SetBlendAlpha writes the alpha blending coefficients (BLDALPHA).
func (e *Engine) SetBlendAlpha(v uint16) { e.bldAlpha = lcd.BlendAlpha(v) }

// SetBlendBrightness writes the brightness coefficient (BLDY).
func (e *Engine) SetBlendBrightness(v uint16) { e.bldY = lcd.BlendBrightness(v) }

// SetMosaic writes the mosaic size register (MOSAIC).
func (e *Engine) SetMosaic(v uint16) { e.mosaic = lcd.Mosaic(v) }

// SetMasterBrightness writes the master brightness register.
func (e *Engine) SetMasterBrightness(v uint16) { e.bright = lcd.MasterBrightness(v) }
