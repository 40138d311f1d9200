// Copyright (c) 2025 Georg Streich
// SPDX-License-Identifier: MIT

package suffixtree

import (
	"slices"
	"testing"
)

func TestFindSingle(t *testing.T) {
	t.Parallel()

	tree, err := From([]byte("test"), nil)
	if err != nil {
		t.Fatal(err)
	}

	got := slices.Collect(tree.Find([]byte("es")))
	want := []Occurrence{{SeqID: 0, Start: 1, End: 3}}
	if !slices.Equal(got, want) {
		t.Errorf("Find(es) = %v, want %v", got, want)
	}
}

func TestContainsNegative(t *testing.T) {
	t.Parallel()

	tree, err := From([]byte("test"), nil)
	if err != nil {
		t.Fatal(err)
	}

	if tree.Contains([]byte("asdf")) {
		t.Error("Contains(asdf) = true")
	}
	if got := slices.Collect(tree.Find([]byte("asdf"))); len(got) != 0 {
		t.Errorf("Find(asdf) = %v, want empty", got)
	}
}

func TestFindPatternLongerThanSequences(t *testing.T) {
	t.Parallel()

	tree, err := FromSequences([][]byte{[]byte("abc"), []byte("ab")}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := slices.Collect(tree.Find([]byte("abcd"))); len(got) != 0 {
		t.Errorf("Find(abcd) = %v, want empty", got)
	}
}

func TestFindAcrossSequences(t *testing.T) {
	t.Parallel()

	tree, err := FromSequences([][]byte{[]byte("abab"), []byte("abab")}, nil)
	if err != nil {
		t.Fatal(err)
	}

	got := sortedOccs(slices.Collect(tree.Find([]byte("abab"))))
	want := []Occurrence{{0, 0, 4}, {1, 0, 4}}
	if !slices.Equal(got, want) {
		t.Errorf("Find(abab) = %v, want %v", got, want)
	}
}

func TestFindSlicesMatchPattern(t *testing.T) {
	t.Parallel()

	seqs := [][]byte{[]byte("mississippi"), []byte("missouri")}
	tree, err := FromSequences(seqs, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, pattern := range []string{"ss", "i", "miss", "issi", "p"} {
		for occ := range tree.Find([]byte(pattern)) {
			got := tree.SequenceByID(occ.SeqID)[occ.Start:occ.End]
			if string(got) != pattern {
				t.Errorf("Find(%q) yields %v = %q", pattern, occ, got)
			}
		}
	}
}

func TestFindEmptyPattern(t *testing.T) {
	t.Parallel()

	tree, err := From([]byte("ab"), nil)
	if err != nil {
		t.Fatal(err)
	}

	if !tree.Contains(nil) {
		t.Error("Contains(empty) = false")
	}
	got := sortedOccs(slices.Collect(tree.Find(nil)))
	want := []Occurrence{{0, 0, 0}, {0, 1, 1}, {0, 2, 2}}
	if !slices.Equal(got, want) {
		t.Errorf("Find(empty) = %v, want %v", got, want)
	}
}

func TestFindEarlyStop(t *testing.T) {
	t.Parallel()

	tree, err := From([]byte("aaaa"), nil)
	if err != nil {
		t.Fatal(err)
	}

	// breaking out of the iteration must not yield further occurrences
	count := 0
	for range tree.Find([]byte("a")) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("got %d occurrences after break, want 1", count)
	}
}

func TestSequenceByIDOutOfRange(t *testing.T) {
	t.Parallel()

	tree, err := From([]byte("abc"), nil)
	if err != nil {
		t.Fatal(err)
	}
	mustPanic(t, "SequenceByID", func() { tree.SequenceByID(1) })
}
