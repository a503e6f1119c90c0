// Package citer implements the cooperative generator protocol that
// underpins long-running filter scans: a three-state step (NotYet | Ready |
// Done) threaded through a family of combinators (map/filter/fold/
// enumerate/zip/and_then), per spec.md sections 4.7 and 9.
//
// The Rust original encodes this as language-level generators; Go has no
// generator/coroutine primitive, so coldb re-implements each combinator as
// an explicit state machine that implements Iterator, exactly as spec.md's
// design notes prescribe ("re-implement as an explicit state-machine
// iterator ... a suspension is merely returning NotYet").
package citer

// Kind tags the state a single Step is in.
type Kind int

const (
	// NotYet means "no item is ready yet; call Next again".
	NotYet Kind = iota
	// Ready carries one item.
	Ready
	// Done carries the generator's terminal return value.
	Done
)

// Step is the cooperative generator's three-state result.
type Step[Item, Return any] struct {
	Kind   Kind
	Item   Item
	Return Return
}

// StepNotYet builds the NotYet variant.
func StepNotYet[Item, Return any]() Step[Item, Return] {
	return Step[Item, Return]{Kind: NotYet}
}

// StepReady builds the Ready(item) variant.
func StepReady[Item, Return any](item Item) Step[Item, Return] {
	return Step[Item, Return]{Kind: Ready, Item: item}
}

// StepDone builds the Done(ret) variant.
func StepDone[Item, Return any](ret Return) Step[Item, Return] {
	return Step[Item, Return]{Kind: Done, Return: ret}
}

// Iterator is the cooperative generator protocol: Running -> (Yielded)* ->
// Finished, per spec.md section 4.11. Once Next returns a Done step,
// calling Next again is a logic error (the combinators in this package
// never do so; callers driving an Iterator directly must observe the same
// rule).
type Iterator[Item, Return any] interface {
	Next() Step[Item, Return]
}

// Func adapts a plain function into an Iterator.
type Func[Item, Return any] func() Step[Item, Return]

// Next implements Iterator.
func (f Func[Item, Return]) Next() Step[Item, Return] { return f() }
