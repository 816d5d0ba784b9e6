// Package unwraplog provides non-panicking alternatives to unwrapping
// optional and fallible values.
//
// The classic unwrap aborts the process when the container is empty or holds
// an error. The UnwrapOr*Log methods instead emit a single warn-level
// diagnostic naming the call site and the encountered value, then return a
// fallback. Diagnostics go to the process-wide sink of the diag package.
package unwraplog

// Option is a container that either holds one value of type T or nothing.
// The zero value is None.
type Option[T any] struct {
	v  T
	ok bool
}

// Some returns an [Option] holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{
		v:  v,
		ok: true,
	}
}

// None returns an empty [Option].
func None[T any]() Option[T] {
	//nolint:exhaustruct
	return Option[T]{}
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.v, o.ok
}

// UnwrapOrLog returns the held value. When o is empty it emits one warn
// diagnostic tagged with the caller's source position, then returns fallback.
func (o Option[T]) UnwrapOrLog(fallback T) T {
	if o.ok {
		return o.v
	}

	warnNone()

	return fallback
}

// UnwrapOrDefaultLog is like [Option.UnwrapOrLog] with the zero value of T
// as the fallback.
func (o Option[T]) UnwrapOrDefaultLog() T {
	if o.ok {
		return o.v
	}

	warnNone()

	var zero T

	return zero
}

// UnwrapOrElseLog is like [Option.UnwrapOrLog], but the fallback is computed
// by f, which is called only on the empty path.
func (o Option[T]) UnwrapOrElseLog(f func() T) T {
	if o.ok {
		return o.v
	}

	warnNone()

	return f()
}
