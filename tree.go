// Copyright (c) 2025 Georg Streich
// SPDX-License-Identifier: MIT

package suffixtree

import "iter"

// A Tree is a finished generalized suffix tree. Every suffix of every
// inserted sequence, terminal included, is exactly one root-to-leaf
// path. Trees are built with a Builder or the From* convenience
// functions and are read-only afterwards; concurrent readers are fine.
type Tree struct {
	alphabet *Alphabet
	seqs     [][]byte
	nodes    []node
}

// An Occurrence locates one match: the byte slice
// SequenceByID(SeqID)[Start:End].
type Occurrence struct {
	SeqID int
	Start int
	End   int
}

// From builds the suffix tree of a single sequence.
// A nil alphabet means the full 8-bit byte range.
func From(seq []byte, alphabet *Alphabet) (*Tree, error) {
	return FromSequences([][]byte{seq}, alphabet)
}

// FromSequences builds the generalized suffix tree of seqs, assigning
// sequence ids 0, 1, 2, ... in order.
func FromSequences(seqs [][]byte, alphabet *Alphabet) (*Tree, error) {
	b := NewBuilder(alphabet)
	for _, seq := range seqs {
		if err := b.AddSequence(seq); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// NumSequences returns the number of inserted sequences.
func (t *Tree) NumSequences() int { return len(t.seqs) }

// SequenceByID returns the payload inserted under the given id.
// It panics if id is out of range.
func (t *Tree) SequenceByID(id int) []byte { return t.seqs[id] }

// Contains reports whether pattern occurs in any inserted sequence.
// The empty pattern is contained in every tree.
func (t *Tree) Contains(pattern []byte) bool {
	_, _, ok := t.walk(pattern)
	return ok
}

// Find returns every occurrence of pattern across all sequences, one
// per matching position. The empty pattern matches at every position of
// every sequence, the terminal position included.
//
// With an alphabet configured, pattern bytes outside the alphabet are a
// caller error: a child lookup on such a byte panics, while a comparison
// against an edge label simply does not match.
func (t *Tree) Find(pattern []byte) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		n, base, ok := t.walk(pattern)
		if !ok {
			return
		}
		t.collect(n, base, int32(len(pattern)), yield)
	}
}

// walk follows pattern from the root, one edge at a time. On a match it
// returns the node whose incoming edge covers the last pattern symbol
// (the root for an empty pattern) and the string depth at the start of
// that edge.
func (t *Tree) walk(pattern []byte) (n int32, base int32, ok bool) {
	if len(pattern) == 0 {
		return root, 0, true
	}

	n = root
	var depth int32
	i := 0
	for {
		if t.nodes[n].isLeaf() {
			return 0, 0, false
		}
		c, ok := t.childOf(n, symbol(pattern[i]))
		if !ok {
			return 0, 0, false
		}

		cn := &t.nodes[c]
		el := t.edgeLen(c)
		for j := int32(0); j < el && i < len(pattern); j++ {
			if t.symbolAt(cn.seq, cn.start+j) != symbol(pattern[i]) {
				return 0, 0, false
			}
			i++
		}
		if i == len(pattern) {
			return c, depth, true
		}

		n = c
		depth += el
	}
}

// collect yields one occurrence per leaf below n. above is the string
// depth at the start of n's incoming edge, width the length of the
// matched string. Each leaf stands for the suffix starting at
// leaf.start-above in its sequence; the match is that suffix's first
// width bytes.
func (t *Tree) collect(n, above, width int32, yield func(Occurrence) bool) bool {
	nd := &t.nodes[n]
	if nd.isLeaf() {
		start := nd.start - above
		return yield(Occurrence{
			SeqID: int(nd.seq),
			Start: int(start),
			End:   int(start + width),
		})
	}
	below := above + t.edgeLen(n)
	for _, c := range t.children(n) {
		if !t.collect(c, below, width, yield) {
			return false
		}
	}
	return true
}
