package citer

// mapIter implements Map.
type mapIter[In, Out, Return any] struct {
	inner Iterator[In, Return]
	f     func(In) Out
}

func (m *mapIter[In, Out, Return]) Next() Step[Out, Return] {
	s := m.inner.Next()
	switch s.Kind {
	case Ready:
		return StepReady[Out, Return](m.f(s.Item))
	case Done:
		return StepDone[Out, Return](s.Return)
	default:
		return StepNotYet[Out, Return]()
	}
}

// Map transforms every Ready item with f; NotYet and Done pass through
// unchanged in kind. Map(id) must behave as the identity iterator
// (spec.md section 8).
func Map[In, Out, Return any](inner Iterator[In, Return], f func(In) Out) Iterator[Out, Return] {
	return &mapIter[In, Out, Return]{inner: inner, f: f}
}
