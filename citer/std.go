package citer

// StdIter adapts a finite forward Go iterator (a pull function returning
// ok=false on exhaustion) into the cooperative protocol, reporting
// Done(()) on exhaustion, per spec.md section 4.7. Go's method sets
// already forward through pointer receivers, so (unlike the Rust original)
// no separate "&mut T: Iterator" blanket impl is needed for combinators to
// compose StdIter without taking ownership of it.
type StdIter[Item any] struct {
	pull func() (Item, bool)
	done bool
}

// NewStdIter wraps pull, a function that returns (item, true) while items
// remain and (zero, false) once exhausted.
func NewStdIter[Item any](pull func() (Item, bool)) *StdIter[Item] {
	return &StdIter[Item]{pull: pull}
}

// NewSliceIter adapts a slice into the cooperative protocol.
func NewSliceIter[Item any](items []Item) *StdIter[Item] {
	i := 0
	return NewStdIter(func() (Item, bool) {
		if i >= len(items) {
			var zero Item
			return zero, false
		}
		v := items[i]
		i++
		return v, true
	})
}

// Next implements Iterator[Item, struct{}].
func (s *StdIter[Item]) Next() Step[Item, struct{}] {
	if s.done {
		panic("citer: Next called again after Done (see spec.md section 4.11)")
	}
	v, ok := s.pull()
	if !ok {
		s.done = true
		return StepDone[Item, struct{}](struct{}{})
	}
	return StepReady[Item, struct{}](v)
}
