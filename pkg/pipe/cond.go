package pipe

import "reflect"

type condKind uint8

const (
	condZero condKind = iota
	condEqual
	condPredicate
)

// Cond is a condition: either a constant compared to the current value by
// equality or a predicate of the current value.
type Cond[T any] struct {
	kind condKind
	want T
	eq   func(a, b T) bool
	pred func(T) bool
}

// Is returns a condition that holds when the current value equals k.
// Interface values whose dynamic type cannot be compared (slices, maps,
// funcs) never match.
func Is[T comparable](k T) Cond[T] {
	return Cond[T]{
		kind: condEqual,
		want: k,
		eq: func(a, b T) bool {
			if !comparableValue(a) || !comparableValue(b) {
				return false
			}
			return a == b
		},
	}
}

func comparableValue(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}

// IsFunc is like Is for values that are not comparable with ==.
func IsFunc[T any](k T, eq func(a, b T) bool) Cond[T] {
	if eq == nil {
		return Cond[T]{}
	}
	return Cond[T]{kind: condEqual, want: k, eq: eq}
}

// When returns a condition that holds when p reports true for the current value.
func When[T any](p func(T) bool) Cond[T] {
	if p == nil {
		return Cond[T]{}
	}
	return Cond[T]{kind: condPredicate, pred: p}
}

// Not negates c. The negation of a zero Cond always holds.
func Not[T any](c Cond[T]) Cond[T] {
	return Cond[T]{
		kind: condPredicate,
		pred: func(v T) bool { return !c.holds(v) },
	}
}

// holds evaluates c against v. A zero Cond never holds.
func (c Cond[T]) holds(v T) bool {
	switch c.kind {
	case condEqual:
		return c.eq(v, c.want)
	case condPredicate:
		return c.pred(v)
	default:
		return false
	}
}
