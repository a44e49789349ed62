// Package pipe provides a fluent, immutable wrapper around a single value
// for building synchronous transformation chains with conditional branches.
//
// A Pipe[T] holds one value. Every non-terminal operation returns a new
// Pipe, the receiver is never changed. Terminal operations unwrap the value
// and end the chain.
//
// Key operations:
// - Of: begin a chain from a seed value
// - Then: resolve a transformer and continue
// - If/IfNot: transform only when a condition holds (or does not hold)
// - IfElse: resolve exactly one of two transformers
// - Finally/FinallyIf/FinallyIfNot/FinallyIfElse: terminal counterparts
// - Inspect: emit the current value to the chain's Sink
//
// Transformers are built with Const or Func, conditions with Is, IsFunc or
// When. Methods cover the same-type case (T -> T); the package-level
// functions of the same name change the value type (T -> U). Because Go has
// no "supertype of" constraint, the type-changing If, IfNot, FinallyIf and
// FinallyIfNot take an explicit widen function used on the pass-through
// branch. Upcast builds one that checks assignability at run time.
package pipe
