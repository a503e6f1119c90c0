package citer

// foldIter implements Fold: it consumes the inner stream, folding every
// Ready item into an accumulator, and reports Done(accum) once the inner
// generator finishes. It has no item type of its own, so it yields
// struct{} items that callers should never observe (Fold is driven purely
// for its terminal accumulator).
type foldIter[Item, Return, Accum any] struct {
	inner Iterator[Item, Return]
	accum Accum
	g     func(Accum, Item) Accum
}

func (fl *foldIter[Item, Return, Accum]) Next() Step[struct{}, Accum] {
	for {
		s := fl.inner.Next()
		switch s.Kind {
		case Ready:
			fl.accum = fl.g(fl.accum, s.Item)
			// Continue pulling; a single Next() call drains everything
			// currently available from the inner generator before
			// reporting back NotYet, matching "fold consumes all Ready
			// items" without requiring the caller to drive extra steps
			// for items that are already available.
			continue
		case Done:
			return StepDone[struct{}, Accum](fl.accum)
		default:
			return StepNotYet[struct{}, Accum]()
		}
	}
}

// Fold accumulates every Ready item via g, starting from init, and emits
// Done(accum) once the inner generator completes (spec.md section 4.7).
func Fold[Item, Return, Accum any](inner Iterator[Item, Return], init Accum, g func(Accum, Item) Accum) Iterator[struct{}, Accum] {
	return &foldIter[Item, Return, Accum]{inner: inner, accum: init, g: g}
}

// Drain drives a Fold iterator to completion, calling Next until it is
// Done. It is a convenience for callers that don't need to observe
// intermediate NotYet steps themselves; yieldNotYet, if non-nil, is called
// after every NotYet step.
func Drain[Accum any](it Iterator[struct{}, Accum], yieldNotYet func()) Accum {
	for {
		s := it.Next()
		switch s.Kind {
		case Done:
			return s.Return
		default:
			if yieldNotYet != nil {
				yieldNotYet()
			}
		}
	}
}
