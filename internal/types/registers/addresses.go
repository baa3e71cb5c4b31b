package registers

// Address is the offset of a hardware register from the base of its
// engine's register block. Both engines share the same layout.
type Address = uint32

const (
	// MainBase is the address of the main engine's register block.
	MainBase uint32 = 0x04000000
	// SubBase is the address of the sub engine's register block.
	SubBase uint32 = 0x04001000
	// BlockSize is the size of an engine's register block, in bytes.
	BlockSize = 0x70
)

const (
	// DISPCNT is the address of the DISPCNT hardware register. The
	// DISPCNT hardware register controls the display mode, the video
	// mode of the backgrounds and which layers are shown. It is the
	// only 32-bit register of the block.
	//
	//  Bit 0-2:   BG Mode                (0-7)
	//  Bit 3:     BG0 2D/3D Selection    (main engine only)
	//  Bit 4:     Tile OBJ Mapping       (0=2D, 1=1D)
	//  Bit 5:     Bitmap OBJ 2D-Dimension (0=128x512, 1=256x256)
	//  Bit 6:     Bitmap OBJ Mapping     (0=2D, 1=1D)
	//  Bit 7:     Forced Blank           (1=Allow FAST access to VRAM)
	//  Bit 8-12:  Screen Display BG0-BG3, OBJ (0=Off, 1=On)
	//  Bit 13-15: Window 0, Window 1, OBJ Window Display Flag
	//  Bit 16-17: Display Mode           (main 0-3, sub 0-1)
	//  Bit 18-19: VRAM block             (0-3=A-D, display mode 2 only)
	//  Bit 20-21: Tile OBJ 1D-Boundary
	//  Bit 22:    Bitmap OBJ 1D-Boundary (main engine only)
	//  Bit 23:    OBJ Processing during H-Blank
	//  Bit 24-26: Character Base         (64K steps, main engine only)
	//  Bit 27-29: Screen Base            (64K steps, main engine only)
	//  Bit 30:    BG Extended Palettes
	//  Bit 31:    OBJ Extended Palettes
	DISPCNT Address = 0x00
	// BG0CNT is the address of the BG0CNT hardware register, the
	// first of the four background control registers.
	//
	//  Bit 0-1:   BG Priority            (0=Highest)
	//  Bit 2-5:   Character Base Block   (16K steps)
	//  Bit 6:     Mosaic                 (0=Disable, 1=Enable)
	//  Bit 7:     Colors/Palettes        (0=16/16, 1=256/1)
	//  Bit 8-12:  Screen Base Block      (2K steps, 16K for bitmaps)
	//  Bit 13:    Ext Palette Slot (BG0/BG1) or Display Area Overflow (BG2/BG3)
	//  Bit 14-15: Screen Size
	BG0CNT Address = 0x08
	// BG1CNT is the address of the BG1CNT hardware register.
	BG1CNT Address = 0x0A
	// BG2CNT is the address of the BG2CNT hardware register.
	BG2CNT Address = 0x0C
	// BG3CNT is the address of the BG3CNT hardware register.
	BG3CNT Address = 0x0E
	// BG0HOFS is the address of the BG0HOFS hardware register, the
	// horizontal scroll of BG0. The horizontal and vertical scroll
	// registers of each background follow in pairs up to BG3VOFS.
	// Only the lower 9 bits are used.
	BG0HOFS Address = 0x10
	BG0VOFS Address = 0x12
	BG1HOFS Address = 0x14
	BG1VOFS Address = 0x16
	BG2HOFS Address = 0x18
	BG2VOFS Address = 0x1A
	BG3HOFS Address = 0x1C
	BG3VOFS Address = 0x1E
	// BG2PA is the address of the BG2PA hardware register. BG2PA to
	// BG2PD form the rotation/scaling matrix of BG2, each a signed
	// 8.8 fixed point value.
	//
	//  PA: dx, step in x per pixel     PB: dmx, step in x per line
	//  PC: dy, step in y per pixel     PD: dmy, step in y per line
	BG2PA Address = 0x20
	BG2PB Address = 0x22
	BG2PC Address = 0x24
	BG2PD Address = 0x26
	// BG2X is the address of the BG2X hardware register, the 32-bit
	// reference point of BG2. It is a signed 20.8 fixed point value,
	// of which the upper 4 bits are unused. BG2Y follows.
	BG2X Address = 0x28
	BG2Y Address = 0x2C
	// BG3PA is the address of the BG3PA hardware register. The BG3
	// registers are laid out as those of BG2.
	BG3PA Address = 0x30
	BG3PB Address = 0x32
	BG3PC Address = 0x34
	BG3PD Address = 0x36
	BG3X  Address = 0x38
	BG3Y  Address = 0x3C
	// WIN0H is the address of the WIN0H hardware register, the
	// horizontal span of window 0.
	//
	//  Bit 0-7:  X2, rightmost coordinate of window
	//  Bit 8-15: X1, leftmost coordinate of window
	WIN0H Address = 0x40
	// WIN1H is the address of the WIN1H hardware register.
	WIN1H Address = 0x42
	// WIN0V is the address of the WIN0V hardware register, the
	// vertical span of window 0, laid out as WIN0H.
	WIN0V Address = 0x44
	// WIN1V is the address of the WIN1V hardware register.
	WIN1V Address = 0x46
	// WININ is the address of the WININ hardware register. It selects
	// the layers shown inside of window 0 (low byte) and window 1
	// (high byte).
	//
	//  Bit 0-3: BG0-BG3 Enable
	//  Bit 4:   OBJ Enable
	//  Bit 5:   Color Special Effect
	WININ Address = 0x48
	// WINOUT is the address of the WINOUT hardware register. The low
	// byte selects the layers shown outside of all windows, the high
	// byte those inside of the OBJ window. Laid out as WININ.
	WINOUT Address = 0x4A
	// MOSAIC is the address of the MOSAIC hardware register.
	//
	//  Bit 0-3:   BG Mosaic H-Size  (minus 1)
	//  Bit 4-7:   BG Mosaic V-Size  (minus 1)
	//  Bit 8-11:  OBJ Mosaic H-Size (minus 1)
	//  Bit 12-15: OBJ Mosaic V-Size (minus 1)
	MOSAIC Address = 0x4C
	// BLDCNT is the address of the BLDCNT hardware register, which
	// selects the color special effect and the layers it applies to.
	//
	//  Bit 0-5:   1st Target BG0-BG3, OBJ, Backdrop
	//  Bit 6-7:   Color Special Effect (0=None, 1=Alpha, 2=Brighter, 3=Darker)
	//  Bit 8-13:  2nd Target BG0-BG3, OBJ, Backdrop
	BLDCNT Address = 0x50
	// BLDALPHA is the address of the BLDALPHA hardware register.
	//
	//  Bit 0-4:  EVA Coefficient (1st Target) (0..16 = 0/16..16/16)
	//  Bit 8-12: EVB Coefficient (2nd Target) (0..16 = 0/16..16/16)
	BLDALPHA Address = 0x52
	// BLDY is the address of the BLDY hardware register.
	//
	//  Bit 0-4: EVY Coefficient (Brightness) (0..16 = 0/16..16/16)
	BLDY Address = 0x54
	// MASTER_BRIGHT is the address of the MASTER_BRIGHT hardware
	// register, applied to the engine's output after composition.
	//
	//  Bit 0-4:   Factor (0..16 = 0/16..16/16, above 16 acts as 16)
	//  Bit 14-15: Mode   (0=Disable, 1=Up, 2=Down, 3=Reserved)
	MASTER_BRIGHT Address = 0x6C
)

var names = map[Address]string{
	DISPCNT: "DISPCNT", DISPCNT + 2: "DISPCNT",
	BG0CNT: "BG0CNT", BG1CNT: "BG1CNT", BG2CNT: "BG2CNT", BG3CNT: "BG3CNT",
	BG0HOFS: "BG0HOFS", BG0VOFS: "BG0VOFS", BG1HOFS: "BG1HOFS", BG1VOFS: "BG1VOFS",
	BG2HOFS: "BG2HOFS", BG2VOFS: "BG2VOFS", BG3HOFS: "BG3HOFS", BG3VOFS: "BG3VOFS",
	BG2PA: "BG2PA", BG2PB: "BG2PB", BG2PC: "BG2PC", BG2PD: "BG2PD",
	BG2X: "BG2X", BG2X + 2: "BG2X", BG2Y: "BG2Y", BG2Y + 2: "BG2Y",
	BG3PA: "BG3PA", BG3PB: "BG3PB", BG3PC: "BG3PC", BG3PD: "BG3PD",
	BG3X: "BG3X", BG3X + 2: "BG3X", BG3Y: "BG3Y", BG3Y + 2: "BG3Y",
	WIN0H: "WIN0H", WIN1H: "WIN1H", WIN0V: "WIN0V", WIN1V: "WIN1V",
	WININ: "WININ", WINOUT: "WINOUT", MOSAIC: "MOSAIC",
	BLDCNT: "BLDCNT", BLDALPHA: "BLDALPHA", BLDY: "BLDY",
	MASTER_BRIGHT: "MASTER_BRIGHT",
}

// Name returns the name of the register containing the half word at
// address, or an empty string if there is none.
func Name(address Address) string {
	return names[address&^1]
}
