// Package memory provides the VRAM, palette and OAM banks read by the
// 2D engines.
package memory

import (
	"encoding/binary"

	"github.com/thelolagemann/ndsppu/internal/ppu"
)

// Sizes of the banks mapped by Default.
const (
	ABGSize     = 512 * 1024
	BBGSize     = 128 * 1024
	AOBJSize    = 256 * 1024
	BOBJSize    = 128 * 1024
	PaletteSize = 2 * 1024
	OAMSize     = 2 * 1024
	LCDCSize    = 128 * 1024
	ExtSize     = 8 * 1024
)

// Block represents a block of little endian memory.
type Block interface {
	ppu.Bank
	Write8(address uint32, value uint8)
	Write16(address uint32, value uint16)
	Write32(address uint32, value uint32)
	// Len returns the size of the block in bytes.
	Len() int
	// Bytes returns the backing memory of the block.
	Bytes() []byte
}

type block struct {
	data []byte
}

// NewBlock returns a new zeroed Block of size bytes.
func NewBlock(size int) Block {
	return &block{data: make([]byte, size)}
}

// NewBlockFrom returns a Block backed by data.
func NewBlockFrom(data []byte) Block {
	return &block{data: data}
}

// Read8 returns the byte at the given address, or 0 if the address
// lies outside of the block.
func (b *block) Read8(address uint32) uint8 {
	if uint64(address) >= uint64(len(b.data)) {
		return 0
	}
	return b.data[address]
}

func (b *block) Read16(address uint32) uint16 {
	if uint64(address)+2 > uint64(len(b.data)) {
		return 0
	}
	return binary.LittleEndian.Uint16(b.data[address:])
}

func (b *block) Read32(address uint32) uint32 {
	if uint64(address)+4 > uint64(len(b.data)) {
		return 0
	}
	return binary.LittleEndian.Uint32(b.data[address:])
}

// Write8 writes the value to the given address. Writes outside of the
// block are ignored.
func (b *block) Write8(address uint32, value uint8) {
	if uint64(address) >= uint64(len(b.data)) {
		return
	}
	b.data[address] = value
}

func (b *block) Write16(address uint32, value uint16) {
	if uint64(address)+2 > uint64(len(b.data)) {
		return
	}
	binary.LittleEndian.PutUint16(b.data[address:], value)
}

func (b *block) Write32(address uint32, value uint32) {
	if uint64(address)+4 > uint64(len(b.data)) {
		return
	}
	binary.LittleEndian.PutUint32(b.data[address:], value)
}

func (b *block) Len() int { return len(b.data) }

func (b *block) Bytes() []byte { return b.data }
