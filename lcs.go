// Copyright (c) 2025 Georg Streich
// SPDX-License-Identifier: MIT

package suffixtree

import (
	"iter"

	"github.com/streichgeorg/suffix-tree/internal/bitset"
)

// seqBits is a set of sequence ids; its width bounds MaxSequences.
type seqBits = bitset.BitSet128

// LongestCommonSubsequence builds the tree of seqs and returns the
// longest byte string occurring in every sequence, sliced out of the
// first occurrence. The result is nil when the sequences share no
// common subsequence.
func LongestCommonSubsequence(seqs [][]byte, alphabet *Alphabet) ([]byte, error) {
	t, err := FromSequences(seqs, alphabet)
	if err != nil {
		return nil, err
	}
	lcs, _ := t.LongestCommonSubsequence()
	return lcs, nil
}

// LongestCommonSubsequence returns the longest byte string occurring in
// every inserted sequence, sliced out of its first occurrence, and
// whether one exists. When several candidates tie, the first one found
// wins; the traversal order is stable, so repeated calls agree.
func (t *Tree) LongestCommonSubsequence() ([]byte, bool) {
	for occ := range t.LongestCommonSubsequenceOccurrences() {
		return t.seqs[occ.SeqID][occ.Start:occ.End], true
	}
	return nil, false
}

// LongestCommonSubsequenceOccurrences returns every occurrence of the
// longest common subsequence, one per sequence position. The iterator
// is empty when no common subsequence exists.
func (t *Tree) LongestCommonSubsequenceOccurrences() iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		winner, depth, ok := t.lcsWinner()
		if !ok {
			return
		}
		t.collect(winner, depth-t.edgeLen(winner), depth, yield)
	}
}

// prepare caches, bottom up, which sequences have a leaf below each
// node. It runs exactly once, when the builder finishes.
func (t *Tree) prepare() {
	t.fillSeqSet(root)
}

func (t *Tree) fillSeqSet(n int32) seqBits {
	if nd := &t.nodes[n]; nd.isLeaf() {
		nd.seqSet.MustSet(uint(nd.seq))
		return nd.seqSet
	}

	var acc seqBits
	for _, c := range t.children(n) {
		cs := t.fillSeqSet(c)
		acc = acc.Union(&cs)
	}
	t.nodes[n].seqSet = acc
	return acc
}

// lcsWinner finds the string-depth-deepest internal node whose subtree
// holds leaves of every sequence. Subtrees under an incomplete node are
// pruned: their sets are subsets of the parent's.
func (t *Tree) lcsWinner() (winner int32, depth int32, ok bool) {
	full := bitset.Mask(len(t.seqs))

	winner = noNode
	var rec func(n, d int32)
	rec = func(n, d int32) {
		for _, c := range t.children(n) {
			cn := &t.nodes[c]
			if cn.seqSet != full || cn.isLeaf() {
				continue
			}
			cd := d + t.edgeLen(c)
			if cd > depth {
				winner, depth = c, cd
			}
			rec(c, cd)
		}
	}
	rec(root, 0)

	return winner, depth, winner != noNode
}
