// Copyright (c) 2025 Georg Streich
// SPDX-License-Identifier: MIT

// Package bitset implements small fixed-size bitsets.
//
// Studied the internal bitsets of [github.com/gaissmai/bart] (itself a
// rewrite of github.com/bits-and-blooms/bitset) and adapted the needed
// parts for this project.
package bitset

import "math/bits"

// BitSet128 represents a fixed size bitset from [0..127].
// It is used as a set of sequence ids, so the zero value is
// the empty set and sets are comparable with ==.
type BitSet128 [2]uint64

// Mask returns the set of the first n ids, [0..n).
// It panics if n is > 128 by intention!
func Mask(n int) (b BitSet128) {
	for i := range n {
		b.MustSet(uint(i))
	}
	return
}

// MustSet sets the bit, it panic's if bit is > 127 by intention!
func (b *BitSet128) MustSet(bit uint) {
	b[bit>>6] |= 1 << (bit & 63)
}

// Test if the bit is set.
func (b *BitSet128) Test(bit uint) (ok bool) {
	if x := int(bit >> 6); x < 2 {
		return b[x&1]&(1<<(bit&63)) != 0 // [x&1] is bounds check elimination (BCE)
	}
	return
}

// IsEmpty returns true if no bit is set.
func (b *BitSet128) IsEmpty() bool {
	return b[1] == 0 && b[0] == 0
}

// Union creates the union of base set with compare set.
// This is the BitSet equivalent of | (or).
func (b *BitSet128) Union(c *BitSet128) (bs BitSet128) {
	bs[0] = b[0] | c[0]
	bs[1] = b[1] | c[1]
	return
}

// Size is the number of set bits (popcount).
func (b *BitSet128) Size() (cnt int) {
	cnt += bits.OnesCount64(b[0])
	cnt += bits.OnesCount64(b[1])
	return
}

// FirstSet returns the first bit set along with an ok code.
func (b *BitSet128) FirstSet() (first uint, ok bool) {
	if x := bits.TrailingZeros64(b[0]); x != 64 {
		return uint(x), true
	} else if x := bits.TrailingZeros64(b[1]); x != 64 {
		return uint(x + 64), true
	}
	return
}
