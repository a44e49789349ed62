package pipe

type fnKind uint8

const (
	fnZero fnKind = iota
	fnConst
	fnFunc
)

// Fn is a transformer: either a constant result or a function of the
// current value.
type Fn[T, U any] struct {
	kind  fnKind
	value U
	fn    func(T) U
}

// Const returns a transformer that always yields u, regardless of input.
func Const[T, U any](u U) Fn[T, U] {
	return Fn[T, U]{kind: fnConst, value: u}
}

// Func returns a transformer computed from the current value.
func Func[T, U any](f func(T) U) Fn[T, U] {
	if f == nil {
		return Fn[T, U]{}
	}
	return Fn[T, U]{kind: fnFunc, fn: f}
}

// IsConst reports whether f is a constant transformer.
func (f Fn[T, U]) IsConst() bool {
	return f.kind == fnConst
}

// resolve produces the transformer's result for in.
// A zero Fn resolves to the zero value of U.
func (f Fn[T, U]) resolve(in T) U {
	switch f.kind {
	case fnConst:
		return f.value
	case fnFunc:
		return f.fn(in)
	default:
		var zero U
		return zero
	}
}
