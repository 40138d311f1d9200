// Copyright (c) 2025 Georg Streich
// SPDX-License-Identifier: MIT

package suffixtree

import "fmt"

// A Builder constructs a generalized suffix tree incrementally, one
// sequence at a time, using Ukkonen's online algorithm. Each appended
// sequence streams its symbols through the active-point state machine;
// total work is O(N) amortized over the concatenation length N.
//
// A Builder is single-use: after Build the tree is finished and further
// AddSequence calls fail.
type Builder struct {
	t *Tree

	// The active point: the position in the tree where the next
	// extension starts. activeLength == 0 means the point is at
	// activeNode itself; otherwise it lies activeLength symbols down
	// the outgoing edge of activeNode starting with activeEdge.
	activeNode   int32
	activeEdge   symbol
	activeLength int32

	// position indexes the next symbol of the current sequence's
	// extended stream; remaining counts the suffixes still implicit
	// from earlier phases.
	position  int32
	remaining int32

	// prevCreated is the internal node split off in the previous
	// extension of the current phase, waiting for its suffix link.
	prevCreated int32

	done bool
}

// NewBuilder returns an empty builder. A nil alphabet means the full
// 8-bit byte range.
func NewBuilder(alphabet *Alphabet) *Builder {
	t := &Tree{
		alphabet: alphabet,
		nodes:    make([]node, 0, 64),
	}
	t.nodes = append(t.nodes, node{link: noNode})
	t.nodes[root].children = t.newChildMap()

	return &Builder{t: t, prevCreated: noNode}
}

// AddSequence appends seq to the tree under the next free sequence id,
// extending the tree with every suffix of seq plus its terminal. The
// payload is borrowed, not copied, and must stay immutable for the
// lifetime of the tree.
//
// It returns an error if the tree already holds MaxSequences sequences
// or if Build has been called.
func (b *Builder) AddSequence(seq []byte) error {
	if b.done {
		return fmt.Errorf("suffixtree: builder already built")
	}
	t := b.t
	if len(t.seqs) >= MaxSequences {
		return fmt.Errorf("suffixtree: too many sequences, max is %d", MaxSequences)
	}
	t.seqs = append(t.seqs, seq)

	b.activeNode = root
	b.activeEdge = 0
	b.activeLength = 0
	b.position = 0
	b.remaining = 0

	ext := t.extendedLen(b.cur())
	for b.position < ext {
		b.step(t.symbolAt(b.cur(), b.position))
	}

	// the terminal is unique, the final phase closes every open suffix
	if b.remaining != 0 {
		panic("suffixtree: unfinished suffixes after terminal")
	}
	return nil
}

// Build finalizes the tree and caches the per-node sequence-id bitsets
// the LCS queries read. Build is idempotent; it always returns the same
// tree.
func (b *Builder) Build() *Tree {
	if !b.done {
		b.done = true
		b.t.prepare()
	}
	return b.t
}

// cur is the id of the sequence being inserted.
func (b *Builder) cur() int32 { return int32(len(b.t.seqs) - 1) }

func (b *Builder) curSymbolAt(pos int32) symbol {
	return b.t.symbolAt(b.cur(), pos)
}

// activeTarget is the node at the far end of the active edge.
func (b *Builder) activeTarget() int32 {
	c, ok := b.t.childOf(b.activeNode, b.activeEdge)
	if !ok {
		panic("suffixtree: active edge has no target")
	}
	return c
}

// step runs one phase of Ukkonen's algorithm: it consumes sym and
// inserts as many of the pending suffixes as this phase can make
// explicit. If sym extends a path already in the tree, the trailing
// suffixes stay implicit and the phase ends early (the show-stopper
// rule); they are picked up by a later phase or by the terminal.
func (b *Builder) step(sym symbol) {
	t := b.t
	b.remaining++
	b.prevCreated = noNode

	for range b.remaining {
		if b.activeLength == 0 {
			if _, ok := t.childOf(b.activeNode, sym); !ok {
				b.insertLeaf(sym)
				if b.activeNode != root {
					b.linkPrevTo(b.activeNode)
					b.advanceActivePoint()
				}
				b.remaining--
			} else {
				b.activeEdge = sym
				b.activeLength = 1
				b.normalize()
				break
			}
		} else {
			tgt := b.activeTarget()
			tn := &t.nodes[tgt]
			if t.symbolAt(tn.seq, tn.start+b.activeLength) != sym {
				m := b.splitEdge(sym)
				b.linkPrevTo(m)
				b.prevCreated = m

				if b.activeNode == root {
					b.activeEdge = b.curSymbolAt(b.position + 2 - b.remaining)
					b.activeLength--
					b.normalize()
				} else {
					b.advanceActivePoint()
				}
				b.remaining--
			} else {
				b.activeLength++
				b.normalize()
				break
			}
		}
	}

	b.position++
}

// insertLeaf hangs a new leaf for the current position off activeNode.
func (b *Builder) insertLeaf(sym symbol) {
	leaf := b.t.newLeaf(b.cur(), b.position)
	b.t.setChild(b.activeNode, sym, leaf)
}

// splitEdge splits the active edge at the active point. The edge's old
// target keeps the label tail; a new internal node takes over the head
// and receives both the old target and a new leaf for the current
// position. Returns the new internal node.
func (b *Builder) splitEdge(sym symbol) int32 {
	t := b.t
	tgt := b.activeTarget()

	exSeq := t.nodes[tgt].seq
	exStart := t.nodes[tgt].start
	split := exStart + b.activeLength

	t.nodes[tgt].start = split

	m := t.newInternal(exSeq, exStart, split)
	t.setChild(b.activeNode, b.activeEdge, m)
	t.setChild(m, t.symbolAt(exSeq, split), tgt)

	leaf := t.newLeaf(b.cur(), b.position)
	t.setChild(m, sym, leaf)

	return m
}

// linkPrevTo resolves the pending suffix link, if any, to point at to.
func (b *Builder) linkPrevTo(to int32) {
	if b.prevCreated != noNode {
		b.t.nodes[b.prevCreated].link = to
	}
	b.prevCreated = noNode
}

// advanceActivePoint moves the active point to the start of the next
// pending suffix: along activeNode's suffix link when it has one, else
// back to the root re-reading the suffix from the current sequence.
func (b *Builder) advanceActivePoint() {
	if l := b.t.nodes[b.activeNode].link; l != noNode {
		b.activeNode = l
	} else {
		b.activeNode = root
		b.activeEdge = b.curSymbolAt(b.position + 2 - b.remaining)
		b.activeLength = b.remaining - 2
	}
	b.normalize()
}

// normalize walks the active point down until it rests at a node or
// strictly inside an edge, so that activeLength never reaches the
// length of the active edge.
func (b *Builder) normalize() {
	t := b.t
	for b.activeLength > 0 {
		tgt := b.activeTarget()
		el := t.edgeLen(tgt)
		if b.activeLength < el {
			break
		}
		if b.activeLength == el {
			b.activeNode = tgt
			b.activeLength = 0
			break
		}
		b.activeNode = tgt
		b.activeLength -= el
		b.activeEdge = b.curSymbolAt(b.position - b.activeLength)
	}
}
