// Copyright (c) 2025 Georg Streich
// SPDX-License-Identifier: MIT

package sparse

import (
	"math/rand/v2"
	"testing"
)

func TestArray256ZeroValue(t *testing.T) {
	t.Parallel()

	var a Array256[int]
	if a.Len() != 0 {
		t.Errorf("Len() = %d", a.Len())
	}
	if _, ok := a.Get(17); ok {
		t.Error("Get on empty array")
	}
}

func TestArray256InsertGet(t *testing.T) {
	t.Parallel()

	var a Array256[string]
	if exists := a.InsertAt(5, "five"); exists {
		t.Error("InsertAt(5) reported exists on first insert")
	}
	a.InsertAt(200, "two hundred")
	a.InsertAt(0, "zero")

	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3", a.Len())
	}
	for i, want := range map[uint]string{0: "zero", 5: "five", 200: "two hundred"} {
		if got, ok := a.Get(i); !ok || got != want {
			t.Errorf("Get(%d) = %q, %v", i, got, ok)
		}
		if got := a.MustGet(i); got != want {
			t.Errorf("MustGet(%d) = %q", i, got)
		}
	}
	if _, ok := a.Get(100); ok {
		t.Error("Get(100) on unset slot")
	}
}

func TestArray256Overwrite(t *testing.T) {
	t.Parallel()

	var a Array256[int]
	a.InsertAt(42, 1)
	if exists := a.InsertAt(42, 2); !exists {
		t.Error("InsertAt overwrite did not report exists")
	}
	if got := a.MustGet(42); got != 2 {
		t.Errorf("MustGet(42) = %d, want 2", got)
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestArray256Compare(t *testing.T) {
	t.Parallel()

	prng := rand.New(rand.NewPCG(42, 42))
	for range 50 {
		var a Array256[int]
		want := map[uint]int{}

		for range 300 {
			i := uint(prng.IntN(256))
			v := prng.Int()
			a.InsertAt(i, v)
			want[i] = v
		}

		if a.Len() != len(want) {
			t.Fatalf("Len() = %d, want %d", a.Len(), len(want))
		}
		for i := range uint(256) {
			got, ok := a.Get(i)
			wantV, wantOK := want[i]
			if ok != wantOK || got != wantV {
				t.Fatalf("Get(%d) = %d, %v, want %d, %v", i, got, ok, wantV, wantOK)
			}
		}
	}
}
