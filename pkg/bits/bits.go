// Package bits provides helpers for reading and writing the packed
// bit fields of hardware registers held in plain unsigned integers.
package bits

import "golang.org/x/exp/constraints"

// Val returns the value of the bit at the given index.
func Val[T constraints.Unsigned](b T, i uint8) T {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset[T constraints.Unsigned](b T, i uint8) T {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set[T constraints.Unsigned](b T, i uint8) T {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test[T constraints.Unsigned](b T, i uint8) bool {
	return (b>>i)&1 != 0
}

// Extract returns the width bits of b starting at bit lo.
//
//	Extract(0b1011_0100, 2, 3) == 0b101
func Extract[T constraints.Unsigned](b T, lo, width uint8) T {
	return (b >> lo) & (1<<width - 1)
}

// Insert replaces the width bits of b starting at bit lo with v.
// Bits of v above width are discarded.
func Insert[T constraints.Unsigned](b T, lo, width uint8, v T) T {
	mask := T(1<<width-1) << lo
	return b&^mask | (v<<lo)&mask
}
