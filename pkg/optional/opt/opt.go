package opt

import (
	"github.com/ib-77/optional/pkg/optional"
)

func IsSome[T any](o optional.Option[T]) bool {
	return o.IsSome()
}

func IsNone[T any](o optional.Option[T]) bool {
	return o.IsNone()
}

// IsSomeAnd reports whether o is Some and its payload satisfies pred.
func IsSomeAnd[T any](o optional.Option[T], pred func(T) bool) bool {
	optional.MustNotBeNil(pred, "pred")
	v, ok := o.Get()
	return ok && pred(v)
}

// Expect returns the payload or panics with *optional.OptionError carrying
// message.
func Expect[T any](o optional.Option[T], message string) T {
	if v, ok := o.Get(); ok {
		return v
	}
	panic(optional.NewOptionError(message))
}

// Unwrap returns the payload or panics with a parameterless
// *optional.OptionError.
func Unwrap[T any](o optional.Option[T]) T {
	if v, ok := o.Get(); ok {
		return v
	}
	panic(&optional.OptionError{})
}

// Value is the error returning form of Unwrap. The error wraps
// optional.ErrNone.
func Value[T any](o optional.Option[T]) (T, error) {
	v, ok := o.Get()
	if !ok {
		return v, optional.WrapOptionError("", optional.ErrNone)
	}
	return v, nil
}

func UnwrapOr[T any](o optional.Option[T], def T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return def
}

func UnwrapOrElse[T any](o optional.Option[T], fn func() T) T {
	optional.MustNotBeNil(fn, "fn")
	if v, ok := o.Get(); ok {
		return v
	}
	return fn()
}

func UnwrapOrDefault[T any](o optional.Option[T]) T {
	if v, ok := o.Get(); ok {
		return v
	}
	var zero T
	return zero
}

func Map[T, U any](o optional.Option[T], fn func(T) U) optional.Option[U] {
	optional.MustNotBeNil(fn, "fn")
	if v, ok := o.Get(); ok {
		return optional.Some(fn(v))
	}
	return optional.None[U]()
}

func MapOr[T, U any](o optional.Option[T], def U, fn func(T) U) U {
	optional.MustNotBeNil(fn, "fn")
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return def
}

func MapOrElse[T, U any](o optional.Option[T], defFn func() U, fn func(T) U) U {
	optional.MustNotBeNil(defFn, "defFn")
	optional.MustNotBeNil(fn, "fn")
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return defFn()
}

func OkOr[T, E any](o optional.Option[T], err E) optional.Result[T, E] {
	if v, ok := o.Get(); ok {
		return optional.Ok[T, E](v)
	}
	return optional.Error[T](err)
}

func OkOrElse[T, E any](o optional.Option[T], fn func() E) optional.Result[T, E] {
	optional.MustNotBeNil(fn, "fn")
	if v, ok := o.Get(); ok {
		return optional.Ok[T, E](v)
	}
	return optional.Error[T](fn())
}

func And[T, U any](o optional.Option[T], other optional.Option[U]) optional.Option[U] {
	if o.IsSome() {
		return other
	}
	return optional.None[U]()
}

func AndThen[T, U any](o optional.Option[T], fn func(T) optional.Option[U]) optional.Option[U] {
	optional.MustNotBeNil(fn, "fn")
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return optional.None[U]()
}

func Or[T any](o, other optional.Option[T]) optional.Option[T] {
	if o.IsSome() {
		return o
	}
	return other
}

func OrElse[T any](o optional.Option[T], fn func() optional.Option[T]) optional.Option[T] {
	optional.MustNotBeNil(fn, "fn")
	if o.IsSome() {
		return o
	}
	return fn()
}

// Xor returns whichever of o and other is Some, or None when both or
// neither are.
func Xor[T any](o, other optional.Option[T]) optional.Option[T] {
	switch self, that := o.IsSome(), other.IsSome(); {
	case self && !that:
		return o
	case !self && that:
		return other
	default:
		return optional.None[T]()
	}
}

// Filter keeps a Some only when pred accepts its payload.
func Filter[T any](o optional.Option[T], pred func(T) bool) optional.Option[T] {
	optional.MustNotBeNil(pred, "pred")
	if v, ok := o.Get(); ok && pred(v) {
		return o
	}
	return optional.None[T]()
}

// Inspect calls fn with the payload of a Some and returns o unchanged.
func Inspect[T any](o optional.Option[T], fn func(T)) optional.Option[T] {
	optional.MustNotBeNil(fn, "fn")
	if v, ok := o.Get(); ok {
		fn(v)
	}
	return o
}

// Zip pairs two payloads when both options are Some.
func Zip[T, U any](a optional.Option[T], b optional.Option[U]) optional.Option[Pair[T, U]] {
	va, okA := a.Get()
	vb, okB := b.Get()
	if okA && okB {
		return optional.Some(Pair[T, U]{First: va, Second: vb})
	}
	return optional.None[Pair[T, U]]()
}

type Pair[T, U any] struct {
	First  T
	Second U
}

// FromPtr maps a nil pointer to None and anything else to Some(*p).
func FromPtr[T any](p *T) optional.Option[T] {
	if p == nil {
		return optional.None[T]()
	}
	return optional.Some(*p)
}

// ToPtr returns a pointer to a copy of the payload, or nil for None.
func ToPtr[T any](o optional.Option[T]) *T {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}

func Flatten[T any](o optional.Option[optional.Option[T]]) optional.Option[T] {
	if inner, ok := o.Get(); ok {
		if v, ok := inner.Get(); ok {
			return optional.Some(v)
		}
	}
	return optional.None[T]()
}

// Transpose turns Some(Ok(v)) into Ok(Some(v)), Some(Error(e)) into
// Error(e) and None into Ok(None).
func Transpose[T, E any](o optional.Option[optional.Result[T, E]]) optional.Result[optional.Option[T], E] {
	inner, ok := o.Get()
	if !ok {
		return optional.Ok[optional.Option[T], E](optional.None[T]())
	}
	v, e, isOk := inner.Get()
	if isOk {
		return optional.Ok[optional.Option[T], E](optional.Some(v))
	}
	return optional.Error[optional.Option[T]](e)
}
