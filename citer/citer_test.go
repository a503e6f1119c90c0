package citer

import "testing"

func drainItems[Item any](it Iterator[Item, struct{}]) []Item {
	var out []Item
	for {
		s := it.Next()
		switch s.Kind {
		case Ready:
			out = append(out, s.Item)
		case Done:
			return out
		case NotYet:
			// keep polling
		}
	}
}

func TestMapIdentity(t *testing.T) {
	src := NewSliceIter([]int{1, 2, 3})
	mapped := Map[int, int, struct{}](src, func(x int) int { return x })
	got := drainItems[int](mapped)
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Map(id) must be identity, got %v want %v", got, want)
		}
	}
}

func TestFilterTrueIdentity(t *testing.T) {
	src := NewSliceIter([]int{1, 2, 3})
	filtered := Filter[int, struct{}](src, func(x *int) bool { return true })
	got := drainItems[int](filtered)
	if len(got) != 3 {
		t.Fatalf("Filter(true) must be identity, got %v", got)
	}
}

func TestFilterDropsFalse(t *testing.T) {
	src := NewSliceIter([]int{1, 2, 3, 4, 5})
	evens := Filter[int, struct{}](src, func(x *int) bool { return *x%2 == 0 })
	got := drainItems[int](evens)
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("expected [2 4], got %v", got)
	}
}

func TestEnumerateStrictlyIncreasing(t *testing.T) {
	src := NewSliceIter([]string{"a", "b", "c"})
	enum := Enumerate[string, struct{}](src)
	var indices []int
	for {
		s := enum.Next()
		if s.Kind == Done {
			break
		}
		if s.Kind == Ready {
			indices = append(indices, s.Item.Index)
		}
	}
	for i, idx := range indices {
		if idx != i {
			t.Fatalf("enumerate indices must be strictly increasing from 0, got %v", indices)
		}
	}
}

func TestFoldSum(t *testing.T) {
	src := NewSliceIter([]int{1, 2, 3, 4})
	folded := Fold[int, struct{}, int](src, 0, func(acc, x int) int { return acc + x })
	total := Drain(folded, nil)
	if total != 10 {
		t.Fatalf("expected sum 10, got %d", total)
	}
}

func TestAndThenTransformsTerminalOnly(t *testing.T) {
	src := NewSliceIter([]int{1, 2})
	withReturn := AndThen[int, struct{}, string](src, func(struct{}) string { return "finished" })
	var items []int
	var ret string
	for {
		s := withReturn.Next()
		switch s.Kind {
		case Ready:
			items = append(items, s.Item)
		case Done:
			ret = s.Return
		}
		if s.Kind == Done {
			break
		}
	}
	if len(items) != 2 || ret != "finished" {
		t.Fatalf("unexpected AndThen result: items=%v ret=%q", items, ret)
	}
}

func TestZipEqualLengthYieldsMin(t *testing.T) {
	a := NewSliceIter([]int{1, 2, 3})
	b := NewSliceIter([]string{"x", "y", "z"})
	z := Zip[int, string, struct{}, struct{}](a, b)

	var pairs []Pair[int, string]
	for {
		s := z.Next()
		if s.Kind == Ready {
			pairs = append(pairs, s.Item)
		}
		if s.Kind == Done {
			break
		}
	}
	if len(pairs) != 3 {
		t.Fatalf("expected 3 zipped pairs on equal-length input, got %d", len(pairs))
	}
	if pairs[0].Left != 1 || pairs[0].Right != "x" {
		t.Fatalf("unexpected first pair: %+v", pairs[0])
	}
}

func TestZipUnequalLengthYieldsMin(t *testing.T) {
	a := NewSliceIter([]int{1, 2, 3, 4, 5})
	b := NewSliceIter([]string{"x", "y"})
	z := Zip[int, string, struct{}, struct{}](a, b)

	var pairs []Pair[int, string]
	var done ZipDone[struct{}, struct{}]
	for {
		s := z.Next()
		if s.Kind == Ready {
			pairs = append(pairs, s.Item)
		}
		if s.Kind == Done {
			done = s.Return
			break
		}
	}
	if len(pairs) != 2 {
		t.Fatalf("expected min(5,2)=2 pairs, got %d", len(pairs))
	}
	if done.LeftFinished {
		t.Fatalf("expected the shorter (right) side to finish first")
	}
}

func TestEq(t *testing.T) {
	a := NewSliceIter([]int{1, 2, 3})
	b := NewSliceIter([]int{1, 2, 3})
	eq := func(x, y int) bool { return x == y }
	retEq := func(_, _ struct{}) bool { return true }
	if !Eq[int, struct{}](a, b, eq, retEq) {
		t.Fatalf("expected equal sequences to compare equal")
	}

	c := NewSliceIter([]int{1, 2, 3})
	d := NewSliceIter([]int{1, 2, 4})
	if Eq[int, struct{}](c, d, eq, retEq) {
		t.Fatalf("expected differing sequences to compare unequal")
	}
}
