package ext

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ib-77/optional/pkg/optional"
	"github.com/ib-77/optional/pkg/optional/res"
)

// PanicError carries a value recovered from a panicking callback.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

func (e PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

func recoverInto(err *error) {
	r := recover()
	if r == nil {
		return
	}
	perr := PanicError{Value: r}
	if *err == nil {
		*err = perr
		return
	}
	*err = errors.Join(*err, perr)
}

func call[R any](fn func() (R, error)) (v R, err error) {
	defer recoverInto(&err)
	return fn()
}

// Try runs fn and captures its error, or a panic as PanicError, in the
// Error branch.
func Try[R any](fn func() (R, error)) optional.Result[R, error] {
	optional.MustNotBeNil(fn, "fn")
	v, err := call(fn)
	if err != nil {
		return optional.Error[R](err)
	}
	return optional.Ok[R, error](v)
}

func TryDo(fn func() error) optional.Result[optional.Unit, error] {
	optional.MustNotBeNil(fn, "fn")
	return Try(func() (optional.Unit, error) {
		return optional.Unit{}, fn()
	})
}

// TryAs only catches errors matching E via errors.As. Any other error, and
// any panic, propagates as a panic.
func TryAs[E error, R any](fn func() (R, error)) optional.Result[R, E] {
	optional.MustNotBeNil(fn, "fn")
	v, err := fn()
	if err == nil {
		return optional.Ok[R, E](v)
	}
	var target E
	if errors.As(err, &target) {
		return optional.Error[R](target)
	}
	panic(err)
}

// TryAsync runs fn on its own goroutine. The channel yields exactly one
// result and is then closed. A ctx that is already done yields
// Error(ctx.Err()) without calling fn; once fn has started its own outcome
// is delivered, so fn should watch ctx to stop early.
func TryAsync[R any](ctx context.Context, fn func(ctx context.Context) (R, error)) <-chan optional.Result[R, error] {
	optional.MustNotBeNil(fn, "fn")

	out := make(chan optional.Result[R, error], 1)

	go func() {
		defer close(out)

		if err := ctx.Err(); err != nil {
			out <- optional.Error[R](err)
			return
		}
		out <- Try(func() (R, error) { return fn(ctx) })
	}()

	return out
}

// TryAsAsync is TryAs on its own goroutine. The returned function waits for
// the outcome; an error that does not match E, a panic included, is
// re-raised on the goroutine that calls it, on every call.
func TryAsAsync[E error, R any](ctx context.Context, fn func(ctx context.Context) (R, error)) func() optional.Result[R, E] {
	optional.MustNotBeNil(fn, "fn")

	ch := TryAsync(ctx, fn)
	return sync.OnceValue(func() optional.Result[R, E] {
		r := <-ch
		return TryAs[E](func() (R, error) { return res.ToPair(r) })
	})
}
