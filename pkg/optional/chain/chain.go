package chain

import (
	"github.com/ib-77/optional/pkg/optional"
	"github.com/ib-77/optional/pkg/optional/res"
)

// Chain wraps an optional.Result to enable fluent chaining
type Chain[T, E any] struct {
	result optional.Result[T, E]
}

// Start creates a new chain from a result
func Start[T, E any](result optional.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{result: result}
}

// FromValue creates a new chain on the Ok branch
func FromValue[T, E any](value T) Chain[T, E] {
	return Start(optional.Ok[T, E](value))
}

// FromError creates a new chain on the Error branch
func FromError[T, E any](err E) Chain[T, E] {
	return Start(optional.Error[T](err))
}

// Result returns the underlying optional.Result
func (c Chain[T, E]) Result() optional.Result[T, E] {
	return c.result
}

// Then composes functions that already return optional.Result[T, E]
func (c Chain[T, E]) Then(onOk func(T) optional.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{result: res.AndThen(c.result, onOk)}
}

// Map transforms the Ok value
func (c Chain[T, E]) Map(onOk func(T) T) Chain[T, E] {
	return Chain[T, E]{result: res.Map(c.result, onOk)}
}

// MapError transforms the Error value
func (c Chain[T, E]) MapError(onError func(E) E) Chain[T, E] {
	return Chain[T, E]{result: res.MapError(c.result, onError)}
}

// OrElse replaces an Error with the result of onError
func (c Chain[T, E]) OrElse(onError func(E) optional.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{result: res.OrElse(c.result, onError)}
}

// Ensure performs a side effect on Ok without changing the result
func (c Chain[T, E]) Ensure(onOk func(T)) Chain[T, E] {
	return Chain[T, E]{result: res.Inspect(c.result, onOk)}
}

// Recover performs a side effect on Error without changing the result
func (c Chain[T, E]) Recover(onError func(E)) Chain[T, E] {
	return Chain[T, E]{result: res.InspectError(c.result, onError)}
}

// To switches the chain to a new Ok type
func To[T, U, E any](c Chain[T, E], onOk func(T) optional.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{result: res.AndThen(c.result, onOk)}
}

// Finally collapses the chain to a final value
func Finally[T, E, U any](c Chain[T, E], onOk func(T) U, onError func(E) U) U {
	return res.MapOrElse(c.result, onError, onOk)
}
