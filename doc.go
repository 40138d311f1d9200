// Copyright (c) 2025 Georg Streich
// SPDX-License-Identifier: MIT

// Package suffixtree builds generalized suffix trees over one or more
// byte sequences using Ukkonen's online construction.
//
// A tree over N total bytes is built in O(N) amortized time and answers
// two queries:
//
//   - Exact pattern occurrence: Contains and Find walk the tree edges
//     and report every position of a pattern across all sequences.
//   - Longest common subsequence: the longest byte string occurring in
//     every inserted sequence, located in linear time via per-node
//     sequence-id bitsets.
//
// Sequences are raw 8-bit byte strings; each is followed by a unique
// per-sequence terminal sentinel, so all suffixes of all sequences end
// in distinct leaves. Up to MaxSequences sequences fit in one tree.
//
// An optional Alphabet compresses the symbol space so child lookups
// index a dense per-node vector; without one, child maps are backed by
// popcount-compressed sparse arrays over the full byte range.
//
// The tree borrows the sequence payloads, it never copies them. Callers
// must not mutate a payload for the lifetime of the tree. A finished
// tree is read-only and safe for concurrent readers.
package suffixtree
