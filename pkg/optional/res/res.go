package res

import (
	"fmt"

	"github.com/ib-77/optional/pkg/optional"
)

func IsOk[T, E any](r optional.Result[T, E]) bool {
	return r.IsOk()
}

func IsError[T, E any](r optional.Result[T, E]) bool {
	return r.IsError()
}

// Ok projects the Ok branch into an option.
func Ok[T, E any](r optional.Result[T, E]) optional.Option[T] {
	if v, _, ok := r.Get(); ok {
		return optional.Some(v)
	}
	return optional.None[T]()
}

// Error projects the Error branch into an option.
func Error[T, E any](r optional.Result[T, E]) optional.Option[E] {
	if _, e, ok := r.Get(); !ok {
		return optional.Some(e)
	}
	return optional.None[E]()
}

func Map[T, U, E any](r optional.Result[T, E], fn func(T) U) optional.Result[U, E] {
	optional.MustNotBeNil(fn, "fn")
	v, e, ok := r.Get()
	if ok {
		return optional.Ok[U, E](fn(v))
	}
	return optional.Error[U](e)
}

func MapError[T, E, F any](r optional.Result[T, E], fn func(E) F) optional.Result[T, F] {
	optional.MustNotBeNil(fn, "fn")
	v, e, ok := r.Get()
	if ok {
		return optional.Ok[T, F](v)
	}
	return optional.Error[T](fn(e))
}

func MapOr[T, U, E any](r optional.Result[T, E], def U, fn func(T) U) U {
	optional.MustNotBeNil(fn, "fn")
	if v, _, ok := r.Get(); ok {
		return fn(v)
	}
	return def
}

func MapOrElse[T, U, E any](r optional.Result[T, E], fallback func(E) U, fn func(T) U) U {
	optional.MustNotBeNil(fallback, "fallback")
	optional.MustNotBeNil(fn, "fn")
	v, e, ok := r.Get()
	if ok {
		return fn(v)
	}
	return fallback(e)
}

func And[T, U, E any](r optional.Result[T, E], other optional.Result[U, E]) optional.Result[U, E] {
	_, e, ok := r.Get()
	if ok {
		return other
	}
	return optional.Error[U](e)
}

func AndThen[T, U, E any](r optional.Result[T, E], fn func(T) optional.Result[U, E]) optional.Result[U, E] {
	optional.MustNotBeNil(fn, "fn")
	v, e, ok := r.Get()
	if ok {
		return fn(v)
	}
	return optional.Error[U](e)
}

func Or[T, E, F any](r optional.Result[T, E], other optional.Result[T, F]) optional.Result[T, F] {
	v, _, ok := r.Get()
	if ok {
		return optional.Ok[T, F](v)
	}
	return other
}

func OrElse[T, E, F any](r optional.Result[T, E], fn func(E) optional.Result[T, F]) optional.Result[T, F] {
	optional.MustNotBeNil(fn, "fn")
	v, e, ok := r.Get()
	if ok {
		return optional.Ok[T, F](v)
	}
	return fn(e)
}

func UnwrapOr[T, E any](r optional.Result[T, E], def T) T {
	if v, _, ok := r.Get(); ok {
		return v
	}
	return def
}

func UnwrapOrElse[T, E any](r optional.Result[T, E], fn func(E) T) T {
	optional.MustNotBeNil(fn, "fn")
	v, e, ok := r.Get()
	if ok {
		return v
	}
	return fn(e)
}

func UnwrapOrDefault[T, E any](r optional.Result[T, E]) T {
	if v, _, ok := r.Get(); ok {
		return v
	}
	var zero T
	return zero
}

// Unwrap returns the Ok payload or panics with a parameterless
// *optional.ResultError.
func Unwrap[T, E any](r optional.Result[T, E]) T {
	if v, _, ok := r.Get(); ok {
		return v
	}
	panic(&optional.ResultError{})
}

// Expect returns the Ok payload or panics with *optional.ResultError
// carrying message.
func Expect[T, E any](r optional.Result[T, E], message string) T {
	if v, _, ok := r.Get(); ok {
		return v
	}
	panic(optional.NewResultError(message))
}

func UnwrapError[T, E any](r optional.Result[T, E]) E {
	if _, e, ok := r.Get(); !ok {
		return e
	}
	panic(&optional.ResultError{})
}

func ExpectError[T, E any](r optional.Result[T, E], message string) E {
	if _, e, ok := r.Get(); !ok {
		return e
	}
	panic(optional.NewResultError(message))
}

// Value is the error returning form of Unwrap. The returned error wraps
// optional.ErrNotOk and, when E is an error, the Error payload too.
func Value[T, E any](r optional.Result[T, E]) (T, error) {
	v, e, ok := r.Get()
	if ok {
		return v, nil
	}
	if err, isErr := any(e).(error); isErr {
		return v, optional.WrapResultError("", fmt.Errorf("%w: %w", optional.ErrNotOk, err))
	}
	return v, optional.WrapResultError("", fmt.Errorf("%w: %v", optional.ErrNotOk, e))
}

// FromPair converts the (T, error) convention into a result.
func FromPair[T any](v T, err error) optional.Result[T, error] {
	if err != nil {
		return optional.Error[T](err)
	}
	return optional.Ok[T, error](v)
}

// ToPair converts a result back into the (T, error) convention.
func ToPair[T any](r optional.Result[T, error]) (T, error) {
	v, e, ok := r.Get()
	if ok {
		return v, nil
	}
	return v, e
}

func Inspect[T, E any](r optional.Result[T, E], fn func(T)) optional.Result[T, E] {
	optional.MustNotBeNil(fn, "fn")
	if v, _, ok := r.Get(); ok {
		fn(v)
	}
	return r
}

func InspectError[T, E any](r optional.Result[T, E], fn func(E)) optional.Result[T, E] {
	optional.MustNotBeNil(fn, "fn")
	if _, e, ok := r.Get(); !ok {
		fn(e)
	}
	return r
}

func Flatten[T, E any](r optional.Result[optional.Result[T, E], E]) optional.Result[T, E] {
	inner, e, ok := r.Get()
	if ok {
		return inner
	}
	return optional.Error[T](e)
}

// Collect returns Ok with every payload in order, or the first Error.
func Collect[T, E any](rs []optional.Result[T, E]) optional.Result[[]T, E] {
	out := make([]T, 0, len(rs))
	for _, r := range rs {
		v, e, ok := r.Get()
		if !ok {
			return optional.Error[[]T](e)
		}
		out = append(out, v)
	}
	return optional.Ok[[]T, E](out)
}

// Transpose turns Ok(Some(v)) into Some(Ok(v)), Ok(None) into None and
// Error(e) into Some(Error(e)).
func Transpose[T, E any](r optional.Result[optional.Option[T], E]) optional.Option[optional.Result[T, E]] {
	inner, e, ok := r.Get()
	if !ok {
		return optional.Some(optional.Error[T](e))
	}
	if v, some := inner.Get(); some {
		return optional.Some(optional.Ok[T, E](v))
	}
	return optional.None[optional.Result[T, E]]()
}
