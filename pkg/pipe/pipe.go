package pipe

import (
	"github.com/google/uuid"
)

// Pipe wraps a single value to enable fluent chaining.
// A Pipe is never modified; chain operations return a new Pipe.
type Pipe[T any] struct {
	value T
	id    uuid.UUID
	step  int
	sink  Sink
}

// Of begins a chain from v
func Of[T any](v T, opts ...Option) Pipe[T] {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	if s.id == uuid.Nil {
		s.id = uuid.New()
	}
	return Pipe[T]{
		value: v,
		id:    s.id,
		sink:  s.sink,
	}
}

// Value returns the held value without ending the chain
func (p Pipe[T]) Value() T {
	return p.value
}

// ID returns the chain id shared by every Pipe derived from the same seed
func (p Pipe[T]) ID() uuid.UUID {
	return p.id
}

// Step returns the number of non-terminal operations applied since Of
func (p Pipe[T]) Step() int {
	return p.step
}

// Inspect emits the held value to the chain's sink and returns p unchanged.
func (p Pipe[T]) Inspect() Pipe[T] {
	sink := p.sink
	if sink == nil {
		sink = DefaultSink()
	}
	sink.Observe(Observation{ChainID: p.id, Step: p.step, Value: p.value})
	return p
}

// Then resolves f against the held value and continues with the result
func (p Pipe[T]) Then(f Fn[T, T]) Pipe[T] {
	return Then(p, f)
}

// Finally resolves f against the held value and ends the chain
func (p Pipe[T]) Finally(f Fn[T, T]) T {
	return Finally(p, f)
}

// If resolves f only when c holds; otherwise the value passes through.
func (p Pipe[T]) If(c Cond[T], f Fn[T, T]) Pipe[T] {
	return If(p, c, f, Identity[T]())
}

// IfNot resolves f only when c does not hold; otherwise the value passes through.
func (p Pipe[T]) IfNot(c Cond[T], f Fn[T, T]) Pipe[T] {
	return IfNot(p, c, f, Identity[T]())
}

// IfElse resolves f when c holds and g when it does not
func (p Pipe[T]) IfElse(c Cond[T], f, g Fn[T, T]) Pipe[T] {
	return IfElse(p, c, f, g)
}

// FinallyIf is the terminal form of If
func (p Pipe[T]) FinallyIf(c Cond[T], f Fn[T, T]) T {
	return FinallyIf(p, c, f, Identity[T]())
}

// FinallyIfNot is the terminal form of IfNot
func (p Pipe[T]) FinallyIfNot(c Cond[T], f Fn[T, T]) T {
	return FinallyIfNot(p, c, f, Identity[T]())
}

// FinallyIfElse is the terminal form of IfElse
func (p Pipe[T]) FinallyIfElse(c Cond[T], f, g Fn[T, T]) T {
	return FinallyIfElse(p, c, f, g)
}

// Then resolves f against the held value and continues with a Pipe[U]
func Then[T, U any](p Pipe[T], f Fn[T, U]) Pipe[U] {
	return next(p, f.resolve(p.value))
}

// Finally resolves f against the held value and returns the result
func Finally[T, U any](p Pipe[T], f Fn[T, U]) U {
	return f.resolve(p.value)
}

// If resolves f when c holds. When it does not, the held value is passed
// through widen, which must convert T to U without changing the value.
func If[T, U any](p Pipe[T], c Cond[T], f Fn[T, U], widen func(T) U) Pipe[U] {
	if c.holds(p.value) {
		return next(p, f.resolve(p.value))
	}
	return next(p, widen(p.value))
}

// IfNot is the complement of If: f is resolved only when c does not hold.
func IfNot[T, U any](p Pipe[T], c Cond[T], f Fn[T, U], widen func(T) U) Pipe[U] {
	if c.holds(p.value) {
		return next(p, widen(p.value))
	}
	return next(p, f.resolve(p.value))
}

// IfElse resolves exactly one of f (c holds) or g (c does not hold).
func IfElse[T, U any](p Pipe[T], c Cond[T], f, g Fn[T, U]) Pipe[U] {
	return next(p, FinallyIfElse(p, c, f, g))
}

// FinallyIf is the terminal form of If
func FinallyIf[T, U any](p Pipe[T], c Cond[T], f Fn[T, U], widen func(T) U) U {
	if c.holds(p.value) {
		return f.resolve(p.value)
	}
	return widen(p.value)
}

// FinallyIfNot is the terminal form of IfNot
func FinallyIfNot[T, U any](p Pipe[T], c Cond[T], f Fn[T, U], widen func(T) U) U {
	if c.holds(p.value) {
		return widen(p.value)
	}
	return f.resolve(p.value)
}

// FinallyIfElse is the terminal form of IfElse
func FinallyIfElse[T, U any](p Pipe[T], c Cond[T], f, g Fn[T, U]) U {
	if c.holds(p.value) {
		return f.resolve(p.value)
	}
	return g.resolve(p.value)
}

func next[T, U any](p Pipe[T], v U) Pipe[U] {
	return Pipe[U]{
		value: v,
		id:    p.id,
		step:  p.step + 1,
		sink:  p.sink,
	}
}
