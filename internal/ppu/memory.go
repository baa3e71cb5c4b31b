package ppu

// Bank is a region of memory read by an engine. Reads are little
// endian, and reads outside of the region return 0.
type Bank interface {
	Read8(address uint32) uint8
	Read16(address uint32) uint16
	Read32(address uint32) uint32
}

// Memory maps each Region to the Bank currently backing it. Bank
// returns nil when nothing is mapped to the region.
type Memory interface {
	Bank(r Region) Bank
}

// FIFOSource is implemented by memory able to stream pixels from main
// memory for the main memory display mode. Each read yields two
// pixels, the first in the low half word.
type FIFOSource interface {
	ReadFIFO() uint32
}

// Region identifies a memory region read by the engines.
type Region uint8

const (
	// RegionABG is the main engine's BG VRAM (up to 512K).
	RegionABG Region = iota
	// RegionBBG is the sub engine's BG VRAM (up to 128K).
	RegionBBG
	// RegionAOBJ is the main engine's OBJ VRAM (up to 256K).
	RegionAOBJ
	// RegionBOBJ is the sub engine's OBJ VRAM (up to 128K).
	RegionBOBJ
	// RegionPalette is the standard palette memory of both engines
	// (2K): main BG, main OBJ, sub BG, sub OBJ.
	RegionPalette
	// RegionOAM is the object attribute memory of both engines (2K).
	RegionOAM
	// RegionABGExtPalette0 to 3 are the main engine's BG extended
	// palette slots (8K each).
	RegionABGExtPalette0
	RegionABGExtPalette1
	RegionABGExtPalette2
	RegionABGExtPalette3
	// RegionBBGExtPalette0 to 3 are the sub engine's BG extended
	// palette slots (8K each).
	RegionBBGExtPalette0
	RegionBBGExtPalette1
	RegionBBGExtPalette2
	RegionBBGExtPalette3
	// RegionAOBJExtPalette is the main engine's OBJ extended palette (8K).
	RegionAOBJExtPalette
	// RegionBOBJExtPalette is the sub engine's OBJ extended palette (8K).
	RegionBOBJExtPalette
	// RegionLCDCA to D are the VRAM banks A-D while mapped to LCDC,
	// shown by the VRAM display mode.
	RegionLCDCA
	RegionLCDCB
	RegionLCDCC
	RegionLCDCD

	// RegionCount is the number of regions.
	RegionCount
)

var regionNames = [RegionCount]string{
	"ABG", "BBG", "AOBJ", "BOBJ", "Palette", "OAM",
	"ABGExtPal0", "ABGExtPal1", "ABGExtPal2", "ABGExtPal3",
	"BBGExtPal0", "BBGExtPal1", "BBGExtPal2", "BBGExtPal3",
	"AOBJExtPal", "BOBJExtPal",
	"LCDCA", "LCDCB", "LCDCC", "LCDCD",
}

func (r Region) String() string {
	if r < RegionCount {
		return regionNames[r]
	}
	return "Unknown"
}

// BGRegion returns the BG VRAM region of engine id.
func BGRegion(id ID) Region {
	if id == Sub {
		return RegionBBG
	}
	return RegionABG
}

// OBJRegion returns the OBJ VRAM region of engine id.
func OBJRegion(id ID) Region {
	if id == Sub {
		return RegionBOBJ
	}
	return RegionAOBJ
}

// BGExtPaletteRegion returns BG extended palette slot (0-3) of engine id.
func BGExtPaletteRegion(id ID, slot int) Region {
	if id == Sub {
		return RegionBBGExtPalette0 + Region(slot&3)
	}
	return RegionABGExtPalette0 + Region(slot&3)
}

// OBJExtPaletteRegion returns the OBJ extended palette of engine id.
func OBJExtPaletteRegion(id ID) Region {
	if id == Sub {
		return RegionBOBJExtPalette
	}
	return RegionAOBJExtPalette
}

// LCDCRegion returns the LCDC mapped VRAM bank for block (0-3 = A-D).
func LCDCRegion(block uint8) Region {
	return RegionLCDCA + Region(block&3)
}
