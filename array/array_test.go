package array

import "testing"

func TestPrimitiveArray(t *testing.T) {
	a := NewPrimitiveArray[int32]()
	a.Push(10)
	a.PushZero()
	if a.Len() != 2 {
		t.Fatalf("expected len 2, got %d", a.Len())
	}
	if v, ok := a.Get(0); !ok || v != 10 {
		t.Fatalf("unexpected get(0): %v %v", v, ok)
	}
	if v, ok := a.Get(1); !ok || v != 0 {
		t.Fatalf("push_zero should append the zero value, got %v %v", v, ok)
	}
	if _, ok := a.Get(2); ok {
		t.Fatalf("out of bounds get should fail")
	}
}

func TestListArray(t *testing.T) {
	a := NewListArray[byte]()
	a.Push([]byte("hello"))
	a.PushZero()
	a.Push([]byte("hi"))

	if a.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", a.Len())
	}
	v, _ := a.Get(0)
	if string(v) != "hello" {
		t.Fatalf("expected hello, got %q", v)
	}
	v, _ = a.Get(1)
	if len(v) != 0 {
		t.Fatalf("push_zero should append an empty list, got %q", v)
	}
	v, _ = a.Get(2)
	if string(v) != "hi" {
		t.Fatalf("expected hi, got %q", v)
	}
}

func TestFixedList(t *testing.T) {
	a := NewConstFixedList4[byte]()
	a.Push([]byte{127, 0, 0, 1})
	a.PushZero()
	if a.Len() != 2 || a.Stride() != 4 {
		t.Fatalf("unexpected shape: len=%d stride=%d", a.Len(), a.Stride())
	}
	row, _ := a.Get(0)
	if row[0] != 127 || row[3] != 1 {
		t.Fatalf("unexpected row: %v", row)
	}
	row, _ = a.Get(1)
	for _, b := range row {
		if b != 0 {
			t.Fatalf("push_zero should append an all-zero window, got %v", row)
		}
	}
}

func TestNullableFixedList(t *testing.T) {
	a := NewNullableFixedList[int64](4)
	a.Push([]int64{1, 2, 3, 4}, []bool{true, false, true, true})
	a.PushZero()

	ref, ok := a.Get(0)
	if !ok || ref.Len() != 4 {
		t.Fatalf("unexpected ref: %+v ok=%v", ref, ok)
	}
	if v, valid := ref.Get(1); valid || v != 2 {
		t.Fatalf("expected (2, false) at index 1, got (%v, %v)", v, valid)
	}

	zeroRef, _ := a.Get(1)
	for i := 0; i < zeroRef.Len(); i++ {
		if _, valid := zeroRef.Get(i); valid {
			t.Fatalf("push_zero should append an all-null window")
		}
	}
}

func TestIdArrayDictionarySemantics(t *testing.T) {
	a := NewIdArray[string]()
	hello := "hello"
	world := "world"
	id1 := a.Push(&hello)
	id2 := a.Push(&world)
	id3 := a.Push(&hello)
	idNull := a.Push(nil)

	if idNull != 0 {
		t.Fatalf("null push must yield id 0, got %d", idNull)
	}
	if id1 != id3 {
		t.Fatalf("equal values must share an id: %d != %d", id1, id3)
	}
	if id1 == id2 {
		t.Fatalf("distinct values must not share an id")
	}
	if id1 == 0 || id2 == 0 {
		t.Fatalf("non-null values must never get id 0")
	}

	if _, ok := a.LookupID("universe"); ok {
		t.Fatalf("lookup of an absent value must report not-found")
	}
	if id, ok := a.LookupID(hello); !ok || id != id1 {
		t.Fatalf("lookup of a present value must return its id")
	}

	v, ok := a.ValueByID(id1)
	if !ok || v != hello {
		t.Fatalf("ValueByID(%d) = %q, %v; want %q, true", id1, v, ok, hello)
	}
	if _, ok := a.ValueByID(0); ok {
		t.Fatalf("ValueByID(0) must report null")
	}
}
