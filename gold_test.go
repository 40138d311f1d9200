// Copyright (c) 2025 Georg Streich
// SPDX-License-Identifier: MIT

package suffixtree

import (
	"bytes"
	"cmp"
	"slices"
)

// goldFind is a simple and slow pattern scan over the raw sequences,
// as a golden reference for Tree.Find.
func goldFind(seqs [][]byte, pattern []byte) []Occurrence {
	var out []Occurrence
	for i, seq := range seqs {
		if len(pattern) == 0 {
			for j := 0; j <= len(seq); j++ {
				out = append(out, Occurrence{SeqID: i, Start: j, End: j})
			}
			continue
		}
		for j := 0; j+len(pattern) <= len(seq); j++ {
			if bytes.Equal(seq[j:j+len(pattern)], pattern) {
				out = append(out, Occurrence{SeqID: i, Start: j, End: j + len(pattern)})
			}
		}
	}
	return out
}

// goldLCS returns the length of the longest byte string occurring in
// every sequence and the set of all such strings, by brute force.
func goldLCS(seqs [][]byte) (int, map[string]bool) {
	if len(seqs) == 0 {
		return 0, nil
	}

	shortest := slices.MinFunc(seqs, func(a, b []byte) int {
		return cmp.Compare(len(a), len(b))
	})

	for l := len(shortest); l > 0; l-- {
		common := substringsOfLen(shortest, l)
		for _, seq := range seqs {
			for s := range common {
				if !bytes.Contains(seq, []byte(s)) {
					delete(common, s)
				}
			}
			if len(common) == 0 {
				break
			}
		}
		if len(common) > 0 {
			return l, common
		}
	}
	return 0, nil
}

func substringsOfLen(seq []byte, l int) map[string]bool {
	subs := map[string]bool{}
	for i := 0; i+l <= len(seq); i++ {
		subs[string(seq[i:i+l])] = true
	}
	return subs
}

func sortedOccs(occs []Occurrence) []Occurrence {
	slices.SortFunc(occs, func(a, b Occurrence) int {
		if c := cmp.Compare(a.SeqID, b.SeqID); c != 0 {
			return c
		}
		return cmp.Compare(a.Start, b.Start)
	})
	return occs
}
