package scalar

import "testing"

func TestFixedRefRoundTrip(t *testing.T) {
	values := []int32{1, 2, 3, 4}
	valid := []bool{true, false, true, true}
	ref := FixedRef[int32]{Values: values, Valid: valid}

	ov, ok := ref.ToOwned()
	if len(ov) != len(values) || len(ok) != len(valid) {
		t.Fatalf("unexpected owned lengths: %d %d", len(ov), len(ok))
	}
	for i := range values {
		if ov[i] != values[i] || ok[i] != valid[i] {
			t.Fatalf("round-trip mismatch at %d", i)
		}
	}
	// Mutating the owned copy must not alias the original.
	ov[0] = 99
	if values[0] == 99 {
		t.Fatalf("ToOwned aliased the source slice")
	}
}

func TestFixedRefDenseNoValidity(t *testing.T) {
	ref := FixedRef[float64]{Values: []float64{1.5, 2.5}}
	v, ok := ref.Get(1)
	if !ok || v != 2.5 {
		t.Fatalf("dense window should report every sample valid, got %v %v", v, ok)
	}
}

func TestFixedMutSetClear(t *testing.T) {
	values := make([]int16, 3)
	valid := make([]bool, 3)
	m := FixedMut[int16]{Values: values, Valid: valid}
	m.Set(0, 7)
	m.Set(1, 8)
	m.Clear(1)

	ref := m.AsRef()
	if v, ok := ref.Get(0); !ok || v != 7 {
		t.Fatalf("expected (7, true), got (%v, %v)", v, ok)
	}
	if v, ok := ref.Get(1); ok || v != 0 {
		t.Fatalf("expected cleared sample to be (0, false), got (%v, %v)", v, ok)
	}
}
