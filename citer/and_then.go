package citer

// andThenIter implements AndThen.
type andThenIter[Item, Return, Return2 any] struct {
	inner Iterator[Item, Return]
	h     func(Return) Return2
}

func (a *andThenIter[Item, Return, Return2]) Next() Step[Item, Return2] {
	s := a.inner.Next()
	switch s.Kind {
	case Done:
		return StepDone[Item, Return2](a.h(s.Return))
	case Ready:
		return StepReady[Item, Return2](s.Item)
	default:
		return StepNotYet[Item, Return2]()
	}
}

// AndThen transforms the generator's terminal value, Done(d) -> Done(h(d)),
// passing Ready/NotYet through unchanged (spec.md section 4.7).
func AndThen[Item, Return, Return2 any](inner Iterator[Item, Return], h func(Return) Return2) Iterator[Item, Return2] {
	return &andThenIter[Item, Return, Return2]{inner: inner, h: h}
}
