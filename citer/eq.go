package citer

// Eq drains both a and b to completion, skipping NotYet steps on either
// side independently, and reports whether their Ready item sequences and
// terminal values are equal (spec.md section 4.7/8). itemEq and returnEq
// compare items/terminators since Go has no generic equality operator for
// arbitrary types.
func Eq[Item, Return any](a, b Iterator[Item, Return], itemEq func(Item, Item) bool, returnEq func(Return, Return) bool) bool {
	for {
		ai := nextReadyOrDone(a)
		bi := nextReadyOrDone(b)

		if ai.Kind != bi.Kind {
			return false
		}
		switch ai.Kind {
		case Ready:
			if !itemEq(ai.Item, bi.Item) {
				return false
			}
		case Done:
			return returnEq(ai.Return, bi.Return)
		}
	}
}

// nextReadyOrDone drives it until it produces Ready or Done, skipping
// NotYet.
func nextReadyOrDone[Item, Return any](it Iterator[Item, Return]) Step[Item, Return] {
	for {
		s := it.Next()
		if s.Kind != NotYet {
			return s
		}
	}
}
