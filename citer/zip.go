package citer

// ZipDone is Zip's terminal value: whichever side finished first, tagged,
// along with both sides' terminal returns (the other side's return is the
// zero value if it had not yet finished).
type ZipDone[RA, RB any] struct {
	LeftFinished bool
	Left         RA
	Right        RB
}

// Pair is one synchronized item from both sides of a Zip.
type Pair[A, B any] struct {
	Left  A
	Right B
}

type zipIter[A, B, RA, RB any] struct {
	left  Iterator[A, RA]
	right Iterator[B, RB]

	haveLeft  bool
	leftItem  A
	haveRight bool
	rightItem B
}

func (z *zipIter[A, B, RA, RB]) Next() Step[Pair[A, B], ZipDone[RA, RB]] {
	if !z.haveLeft {
		s := z.left.Next()
		switch s.Kind {
		case Ready:
			z.haveLeft = true
			z.leftItem = s.Item
		case Done:
			return StepDone[Pair[A, B], ZipDone[RA, RB]](ZipDone[RA, RB]{LeftFinished: true, Left: s.Return})
		case NotYet:
			return StepNotYet[Pair[A, B], ZipDone[RA, RB]]()
		}
	}
	if !z.haveRight {
		s := z.right.Next()
		switch s.Kind {
		case Ready:
			z.haveRight = true
			z.rightItem = s.Item
		case Done:
			return StepDone[Pair[A, B], ZipDone[RA, RB]](ZipDone[RA, RB]{LeftFinished: false, Right: s.Return})
		case NotYet:
			return StepNotYet[Pair[A, B], ZipDone[RA, RB]]()
		}
	}
	if z.haveLeft && z.haveRight {
		out := Pair[A, B]{Left: z.leftItem, Right: z.rightItem}
		z.haveLeft, z.haveRight = false, false
		return StepReady[Pair[A, B], ZipDone[RA, RB]](out)
	}
	return StepNotYet[Pair[A, B], ZipDone[RA, RB]]()
}

// Zip buffers one-sided progress until both sides have a Ready item, then
// emits the pair; Done from either side terminates the stream, tagging
// which side finished (spec.md section 4.7). On equal-length inputs, Zip
// yields exactly min(|a|, |b|) items (spec.md section 8) -- which here is
// simply len(a) == len(b) items, since both finish together.
func Zip[A, B, RA, RB any](left Iterator[A, RA], right Iterator[B, RB]) Iterator[Pair[A, B], ZipDone[RA, RB]] {
	return &zipIter[A, B, RA, RB]{left: left, right: right}
}
