package unwraplog

// Result is a container that holds either a value of type T or an error.
// The zero value is Ok with the zero value of T; a Result built from a nil
// error is equivalent to it.
type Result[T any] struct {
	v   T
	err error
}

// Ok returns a [Result] holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{
		v:   v,
		err: nil,
	}
}

// Err returns a [Result] holding err.
func Err[T any](err error) Result[T] {
	//nolint:exhaustruct
	return Result[T]{
		err: err,
	}
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether r holds an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Get returns the held value and error.
func (r Result[T]) Get() (T, error) {
	return r.v, r.err
}

// Err returns the held error, if any.
func (r Result[T]) Err() error {
	return r.err
}

// UnwrapOrLog returns the held value. When r holds an error it emits one warn
// diagnostic tagged with the caller's source position and carrying the
// error's quoted message, then returns fallback.
func (r Result[T]) UnwrapOrLog(fallback T) T {
	if r.err == nil {
		return r.v
	}

	warnErr(r.err)

	return fallback
}

// UnwrapOrDefaultLog is like [Result.UnwrapOrLog] with the zero value of T
// as the fallback.
func (r Result[T]) UnwrapOrDefaultLog() T {
	if r.err == nil {
		return r.v
	}

	warnErr(r.err)

	var zero T

	return zero
}

// UnwrapOrElseLog is like [Result.UnwrapOrLog], but the fallback is computed
// by f, which is called only on the error path.
func (r Result[T]) UnwrapOrElseLog(f func() T) T {
	if r.err == nil {
		return r.v
	}

	warnErr(r.err)

	return f()
}
