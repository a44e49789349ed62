package pipe

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotAssignable is reported when a pass-through value cannot be
// reinterpreted at the wider result type.
var ErrNotAssignable = errors.New("value is not assignable to the widened type")

// WidenError is the panic value raised by Upcast conversions.
type WidenError struct {
	From reflect.Type
	To   reflect.Type
}

func (e *WidenError) Error() string {
	return fmt.Sprintf("pipe: cannot widen %v to %v: %v", e.From, e.To, ErrNotAssignable)
}

func (e *WidenError) Unwrap() error {
	return ErrNotAssignable
}

// Identity returns the widen function for an unchanged type.
func Identity[T any]() func(T) T {
	return func(v T) T { return v }
}

// Upcast returns a widen function that reinterprets a T as a U, typically an
// interface that T implements. The conversion is checked when it runs and
// panics with a *WidenError if the value is not assignable to U.
// A nil interface value widens to a nil U when U is an interface.
func Upcast[T, U any]() func(T) U {
	to := reflect.TypeFor[U]()
	return func(v T) U {
		if any(v) == nil && to.Kind() == reflect.Interface {
			var zero U
			return zero
		}
		u, ok := any(v).(U)
		if !ok {
			panic(&WidenError{
				From: reflect.TypeOf(v),
				To:   to,
			})
		}
		return u
	}
}
