package citer

// filterIter implements Filter.
type filterIter[Item, Return any] struct {
	inner Iterator[Item, Return]
	pred  func(*Item) bool
}

func (f *filterIter[Item, Return]) Next() Step[Item, Return] {
	s := f.inner.Next()
	switch s.Kind {
	case Ready:
		if f.pred(&s.Item) {
			return s
		}
		return StepNotYet[Item, Return]()
	default:
		return s
	}
}

// Filter forwards Done/NotYet unchanged; a Ready item is kept iff pred
// reports true, otherwise it becomes NotYet (spec.md section 4.7). A
// predicate that always returns true must behave as the identity iterator.
func Filter[Item, Return any](inner Iterator[Item, Return], pred func(*Item) bool) Iterator[Item, Return] {
	return &filterIter[Item, Return]{inner: inner, pred: pred}
}
