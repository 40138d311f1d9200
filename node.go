// Copyright (c) 2025 Georg Streich
// SPDX-License-Identifier: MIT

package suffixtree

import (
	"slices"

	"github.com/streichgeorg/suffix-tree/internal/sparse"
)

// MaxSequences is the maximum number of sequences per tree, bounded by
// the width of the sequence-id bitsets used for the LCS queries.
const MaxSequences = 128

// Node ids index the tree's arena. The root always has id 0 and is never
// the child of any node.
const (
	root   int32 = 0
	noNode int32 = -1
)

// openEnd marks a leaf's edge label, which extends through the owning
// sequence's terminal position instead of up to a recorded end.
const openEnd int32 = -1

// A symbol is either a regular byte value in [0, 256) or the terminal
// sentinel of sequence id i, encoded as termBase+i. Terminals compare
// unequal to every byte and to every other sequence's terminal.
type symbol int32

const termBase symbol = 256

func termSymbol(seq int32) symbol { return termBase + symbol(seq) }

func (s symbol) isTerm() bool { return s >= termBase }

// node is one arena slot. The three variants share the struct:
//
//   - root: id 0, zero label, non-nil children
//   - internal: label [start, end) of sequence seq, non-nil children
//   - leaf: label from start through the terminal of seq, nil children
type node struct {
	seq   int32
	start int32
	end   int32 // openEnd for leaves
	link  int32 // suffix link, noNode until set

	children *childMap // nil for leaves

	// seqSet caches which sequences have a leaf in this subtree.
	// Filled once for the whole tree when the builder finishes.
	seqSet seqBits
}

func (n *node) isLeaf() bool { return n.children == nil }

// childMap dispatches a symbol to at most one child id. Regular symbols
// go through a dense rank-indexed vector when an alphabet is configured,
// or through a popcount-compressed sparse array over the byte values
// otherwise. Terminal children live in a small per-sequence slice; a
// node has at most one terminal child per sequence.
type childMap struct {
	dense  []int32                // by rank; 0 = no child, the root is never a child
	packed sparse.Array256[int32] // by byte value
	terms  []termChild
}

type termChild struct {
	seq   int32
	child int32
}

func (t *Tree) newChildMap() *childMap {
	m := new(childMap)
	if t.alphabet != nil {
		m.dense = make([]int32, t.alphabet.Size())
	}
	return m
}

// childOf returns the child of n reached on s, if any.
func (t *Tree) childOf(n int32, s symbol) (int32, bool) {
	m := t.nodes[n].children
	if s.isTerm() {
		for _, tc := range m.terms {
			if termSymbol(tc.seq) == s {
				return tc.child, true
			}
		}
		return 0, false
	}
	if m.dense != nil {
		c := m.dense[t.alphabet.RankOf(byte(s))]
		return c, c != 0
	}
	return m.packed.Get(uint(s))
}

// setChild adds or overwrites the child of n on s. Overwriting happens
// when a split redirects an existing edge to the new internal node.
func (t *Tree) setChild(n int32, s symbol, child int32) {
	m := t.nodes[n].children
	if s.isTerm() {
		for i, tc := range m.terms {
			if termSymbol(tc.seq) == s {
				m.terms[i].child = child
				return
			}
		}
		m.terms = append(m.terms, termChild{seq: int32(s - termBase), child: child})
		return
	}
	if m.dense != nil {
		m.dense[t.alphabet.RankOf(byte(s))] = child
		return
	}
	m.packed.InsertAt(uint(s), child)
}

// children returns all child ids of n in ascending id order, which is
// creation order and therefore stable for the lifetime of the tree.
func (t *Tree) children(n int32) []int32 {
	m := t.nodes[n].children
	if m == nil {
		return nil
	}
	ids := make([]int32, 0, len(m.dense)+len(m.packed.Items)+len(m.terms))
	for _, c := range m.dense {
		if c != 0 {
			ids = append(ids, c)
		}
	}
	ids = append(ids, m.packed.Items...)
	for _, tc := range m.terms {
		ids = append(ids, tc.child)
	}
	slices.Sort(ids)
	return ids
}

func (t *Tree) newInternal(seq, start, end int32) int32 {
	t.nodes = append(t.nodes, node{
		seq:      seq,
		start:    start,
		end:      end,
		link:     noNode,
		children: t.newChildMap(),
	})
	return int32(len(t.nodes) - 1)
}

func (t *Tree) newLeaf(seq, start int32) int32 {
	t.nodes = append(t.nodes, node{
		seq:   seq,
		start: start,
		end:   openEnd,
		link:  noNode,
	})
	return int32(len(t.nodes) - 1)
}

// symbolAt reads position pos of the extended symbol stream of sequence
// seq: the payload bytes followed by the sequence's terminal.
func (t *Tree) symbolAt(seq, pos int32) symbol {
	payload := t.seqs[seq]
	if pos < int32(len(payload)) {
		return symbol(payload[pos])
	}
	if pos == int32(len(payload)) {
		return termSymbol(seq)
	}
	panic("suffixtree: symbol index past terminal")
}

// extendedLen is the payload length plus the terminal position.
func (t *Tree) extendedLen(seq int32) int32 {
	return int32(len(t.seqs[seq])) + 1
}

// edgeLen returns the label length of n's incoming edge. A leaf edge
// extends through the owning sequence's terminal, whether or not that
// sequence is the one currently being built.
func (t *Tree) edgeLen(n int32) int32 {
	nd := &t.nodes[n]
	if nd.end != openEnd {
		return nd.end - nd.start
	}
	return t.extendedLen(nd.seq) - nd.start
}
