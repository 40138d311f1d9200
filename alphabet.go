// Copyright (c) 2025 Georg Streich
// SPDX-License-Identifier: MIT

package suffixtree

import "fmt"

// Canned alphabets for common inputs.
var (
	ASCIILowercase = mustAlphabet([]byte("abcdefghijklmnopqrstuvwxyz"))
	ASCIIUppercase = mustAlphabet([]byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
	ASCIILetters   = mustAlphabet([]byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"))
	DNA            = mustAlphabet([]byte("ACGT"))
)

// An Alphabet is a bijection between a set of byte symbols and the dense
// ranks [0, Size). Configuring one lets every node dispatch to a child
// by indexing a vector of Size entries instead of a sparse array over
// the full byte range.
type Alphabet struct {
	symbols []byte
	ranks   [256]int16 // rank of each byte, -1 if not in the alphabet
}

// NewAlphabet returns the alphabet of the given symbols, ranked by their
// position. It returns an error if a symbol appears twice.
func NewAlphabet(symbols []byte) (*Alphabet, error) {
	a := &Alphabet{symbols: append([]byte(nil), symbols...)}
	for i := range a.ranks {
		a.ranks[i] = -1
	}
	for i, sym := range symbols {
		if a.ranks[sym] >= 0 {
			return nil, fmt.Errorf("suffixtree: symbol %q appears twice in alphabet", sym)
		}
		a.ranks[sym] = int16(i)
	}
	return a, nil
}

func mustAlphabet(symbols []byte) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the number of symbols in the alphabet.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// RankOf returns the rank of sym in [0, Size). The symbol must be in the
// alphabet, it panic's on any other byte by intention!
func (a *Alphabet) RankOf(sym byte) uint8 {
	rank := a.ranks[sym]
	if rank < 0 {
		panic(fmt.Sprintf("suffixtree: byte %q is not in the alphabet", sym))
	}
	return uint8(rank)
}

// SymbolOf returns the symbol with the given rank.
// It panics if rank is >= Size.
func (a *Alphabet) SymbolOf(rank uint8) byte {
	return a.symbols[rank]
}
