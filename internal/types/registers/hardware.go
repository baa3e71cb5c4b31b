package registers

import "encoding/binary"

// Hardware represents a 16-bit hardware register of a 2D engine. A
// 32-bit register is made of two Hardware registers, one for each
// half word.
type Hardware struct {
	address Address
	mask    uint16
	write   func(h *Hardware, value uint16)
	set     *Set
}

// HardwareOpt is a function that configures a Hardware register.
type HardwareOpt func(h *Hardware)

// Mask restricts the writable bits of the register to mask. Bits
// outside of mask read as 0.
func Mask(mask uint16) HardwareOpt {
	return func(h *Hardware) {
		h.mask = mask
	}
}

// WithWriteFunc calls write with the masked value after each write
// to the register.
func WithWriteFunc(write func(h *Hardware, value uint16)) HardwareOpt {
	return func(h *Hardware) {
		h.write = write
	}
}

// Address returns the address of the register.
func (h *Hardware) Address() Address { return h.address }

// Value returns the value of the register.
func (h *Hardware) Value() uint16 { return h.set.Read16(h.address) }

// Value32 returns the 32-bit register starting at the word aligned
// address containing the register.
func (h *Hardware) Value32() uint32 { return h.set.Read32(h.address &^ 3) }

// Set is a block of hardware registers. Writes are stored in the
// block, so that 8-bit writes merge with the rest of their register,
// then passed on to the register's write function.
type Set struct {
	values   [BlockSize]byte
	hardware map[Address]*Hardware
}

// NewSet returns an empty register block.
func NewSet() *Set {
	return &Set{hardware: make(map[Address]*Hardware)}
}

// Register adds a hardware register at address, which must be half
// word aligned.
func (s *Set) Register(address Address, opts ...HardwareOpt) {
	h := &Hardware{
		address: address &^ 1,
		mask:    0xFFFF,
		set:     s,
	}
	for _, opt := range opts {
		opt(h)
	}
	s.hardware[h.address] = h
}

// Has returns true if a register is mapped at address.
func (s *Set) Has(address Address) bool {
	_, ok := s.hardware[address&^1]
	return ok
}

// Read8 returns the byte at address, or 0 outside of the block.
func (s *Set) Read8(address Address) uint8 {
	if address >= BlockSize {
		return 0
	}
	return s.values[address]
}

// Read16 returns the half word at address.
func (s *Set) Read16(address Address) uint16 {
	address &^= 1
	if address+2 > BlockSize {
		return 0
	}
	return binary.LittleEndian.Uint16(s.values[address:])
}

// Read32 returns the word at address.
func (s *Set) Read32(address Address) uint32 {
	address &^= 3
	if address+4 > BlockSize {
		return 0
	}
	return binary.LittleEndian.Uint32(s.values[address:])
}

// Write8 writes a byte, merging it with the other half of its
// register. It returns false if no register is mapped at address.
func (s *Set) Write8(address Address, value uint8) bool {
	v := s.Read16(address)
	if address&1 == 1 {
		v = v&0x00FF | uint16(value)<<8
	} else {
		v = v&0xFF00 | uint16(value)
	}
	return s.Write16(address, v)
}

// Write16 writes a half word. It returns false if no register is
// mapped at address.
func (s *Set) Write16(address Address, value uint16) bool {
	h, ok := s.hardware[address&^1]
	if !ok {
		return false
	}
	value &= h.mask
	binary.LittleEndian.PutUint16(s.values[h.address:], value)
	if h.write != nil {
		h.write(h, value)
	}
	return true
}

// Write32 writes a word as two half words, storing both before
// either write function is called. It returns false if neither half
// is mapped.
func (s *Set) Write32(address Address, value uint32) bool {
	address &^= 3
	lo, okLo := s.hardware[address]
	hi, okHi := s.hardware[address+2]
	if okLo {
		binary.LittleEndian.PutUint16(s.values[address:], uint16(value)&lo.mask)
	}
	if okHi {
		binary.LittleEndian.PutUint16(s.values[address+2:], uint16(value>>16)&hi.mask)
	}
	if okLo && lo.write != nil {
		lo.write(lo, lo.Value())
	}
	if okHi && hi.write != nil {
		hi.write(hi, hi.Value())
	}
	return okLo || okHi
}

// Reset zeroes every register without calling their write functions.
func (s *Set) Reset() {
	s.values = [BlockSize]byte{}
}
