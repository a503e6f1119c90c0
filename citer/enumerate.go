package citer

// Indexed pairs a zero-based position with an item, the payload Enumerate
// yields.
type Indexed[Item any] struct {
	Index int
	Item  Item
}

type enumerateIter[Item, Return any] struct {
	inner Iterator[Item, Return]
	next  int
}

func (e *enumerateIter[Item, Return]) Next() Step[Indexed[Item], Return] {
	s := e.inner.Next()
	switch s.Kind {
	case Ready:
		out := StepReady[Indexed[Item], Return](Indexed[Item]{Index: e.next, Item: s.Item})
		e.next++
		return out
	case Done:
		return StepDone[Indexed[Item], Return](s.Return)
	default:
		return StepNotYet[Indexed[Item], Return]()
	}
}

// Enumerate threads a strictly increasing zero-based counter through Ready
// items (spec.md section 4.7/8).
func Enumerate[Item, Return any](inner Iterator[Item, Return]) Iterator[Indexed[Item], Return] {
	return &enumerateIter[Item, Return]{inner: inner}
}
