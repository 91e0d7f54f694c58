package result

// Void is the value type for operations that succeed without producing a
// value.
type Void = struct{}

// A Result is the outcome of a fallible operation: either a success value or
// a captured error, never both. The zero value is a success carrying the
// zero value of T.
type Result[T any] struct {
	value T
	err   error
}

// OK returns a successful Result carrying v.
func OK[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail returns a failed Result carrying err. Fail panics if err is nil
// because a Result must hold exactly one of a value or an error.
func Fail[T any](err error) Result[T] {
	if err == nil {
		panic("result: Fail called with nil error")
	}
	return Result[T]{err: err}
}

// Done returns a successful Result[Void].
func Done() Result[Void] {
	return OK(Void{})
}

// Failed reports whether r holds an error.
func (r Result[T]) Failed() bool {
	return r.err != nil
}

// Value returns the success value, or the zero value of T if r failed.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the captured error, or nil if r succeeded.
func (r Result[T]) Err() error {
	return r.err
}

// Match calls exactly one of ok or fail, depending on which arm r holds.
func (r Result[T]) Match(ok func(T), fail func(error)) {
	if r.err != nil {
		fail(r.err)
		return
	}
	ok(r.value)
}

// Map transforms the success value of r with fn. A failed Result is passed
// through unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return OK(fn(r.value))
}
