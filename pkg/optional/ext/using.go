package ext

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ib-77/optional/pkg/optional"
)

// CloseError wraps the error returned by closing a resource.
type CloseError struct {
	Cause error
}

func (e CloseError) Error() string {
	return fmt.Sprintf("failed to close: %s", e.Cause)
}

func (e CloseError) Unwrap() error {
	return e.Cause
}

func closeInto(err *error, c io.Closer) {
	cerr := c.Close()
	if cerr == nil {
		return
	}
	if *err == nil {
		*err = CloseError{Cause: cerr}
		return
	}
	*err = errors.Join(*err, CloseError{Cause: cerr})
}

// Using acquires a resource, passes it to fn and closes it afterwards, also
// when fn fails or panics. A close error is joined with fn's error. A nil
// resource is handed to fn but never closed.
func Using[T io.Closer, R any](acquire func() (T, error), fn func(T) (R, error)) (v R, err error) {
	optional.MustNotBeNil(acquire, "acquire")
	optional.MustNotBeNil(fn, "fn")

	item, err := acquire()
	if err != nil {
		return v, err
	}
	if !optional.IsNil(item) {
		defer closeInto(&err, item)
	}
	return fn(item)
}

func UsingDo[T io.Closer](acquire func() (T, error), fn func(T) error) error {
	optional.MustNotBeNil(acquire, "acquire")
	optional.MustNotBeNil(fn, "fn")
	_, err := Using(acquire, func(item T) (optional.Unit, error) {
		return optional.Unit{}, fn(item)
	})
	return err
}

// UsingAsync is Using on its own goroutine. The resource is closed before
// the result is delivered, also when ctx is cancelled while fn runs; a panic
// in fn is reported as PanicError. A ctx that is already done yields
// Error(ctx.Err()) without acquiring anything.
func UsingAsync[T io.Closer, R any](ctx context.Context, acquire func(ctx context.Context) (T, error),
	fn func(ctx context.Context, item T) (R, error)) <-chan optional.Result[R, error] {
	optional.MustNotBeNil(acquire, "acquire")
	optional.MustNotBeNil(fn, "fn")

	return TryAsync(ctx, func(ctx context.Context) (R, error) {
		return Using(
			func() (T, error) { return acquire(ctx) },
			func(item T) (R, error) { return fn(ctx, item) })
	})
}
