package ext

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/optional/pkg/optional/res"
)

type resource struct {
	closed   atomic.Bool
	closeErr error
}

func (r *resource) Close() error {
	r.closed.Store(true)
	return r.closeErr
}

func acquire(r *resource) func() (*resource, error) {
	return func() (*resource, error) { return r, nil }
}

func TestUsing_ClosesAfterSuccess(t *testing.T) {
	t.Parallel()

	r := &resource{}
	v, err := Using(acquire(r), func(item *resource) (string, error) {
		assert.False(t, item.closed.Load())
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.True(t, r.closed.Load())
}

func TestUsing_ClosesAfterFailure(t *testing.T) {
	t.Parallel()

	r := &resource{}
	_, err := Using(acquire(r), func(*resource) (int, error) { return 0, io.EOF })

	assert.ErrorIs(t, err, io.EOF)
	assert.True(t, r.closed.Load())
}

func TestUsing_ClosesAfterPanic(t *testing.T) {
	t.Parallel()

	r := &resource{}
	assert.Panics(t, func() {
		_ = UsingDo(acquire(r), func(*resource) error { panic("boom") })
	})
	assert.True(t, r.closed.Load())
}

func TestUsing_JoinsCloseError(t *testing.T) {
	t.Parallel()

	closeErr := errors.New("close")
	r := &resource{closeErr: closeErr}

	err := UsingDo(acquire(r), func(*resource) error { return io.EOF })
	assert.ErrorIs(t, err, io.EOF)
	assert.ErrorIs(t, err, closeErr)

	var cerr CloseError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "failed to close: close", cerr.Error())
}

func TestUsing_AcquireFailure(t *testing.T) {
	t.Parallel()

	called := false
	_, err := Using(func() (*resource, error) { return nil, io.ErrClosedPipe },
		func(*resource) (int, error) {
			called = true
			return 0, nil
		})

	assert.ErrorIs(t, err, io.ErrClosedPipe)
	assert.False(t, called)
}

func TestUsingAsync(t *testing.T) {
	t.Parallel()

	r := &resource{}
	out := UsingAsync(context.Background(),
		func(context.Context) (*resource, error) { return r, nil },
		func(_ context.Context, item *resource) (int, error) { return 7, nil })

	got := <-out
	assert.Equal(t, 7, res.Unwrap(got))
	assert.True(t, r.closed.Load())

	r = &resource{}
	got = <-UsingAsync(context.Background(),
		func(context.Context) (*resource, error) { return r, nil },
		func(context.Context, *resource) (int, error) { panic("async") })

	var perr PanicError
	assert.ErrorAs(t, res.UnwrapError(got), &perr)
	assert.True(t, r.closed.Load())
}

func TestDisposable(t *testing.T) {
	t.Parallel()

	released := 0
	err := UsingDo(func() (Disposable, error) {
		return NewDisposable(func() { released++ }), nil
	}, func(Disposable) error { return nil })

	require.NoError(t, err)
	assert.Equal(t, 1, released)

	assert.PanicsWithError(t, "argument 'release' must not be nil", func() { NewDisposable(nil) })
	assert.NoError(t, Disposable{}.Close())
}

func TestUsing_NilCallables(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, "argument 'acquire' must not be nil", func() {
		_, _ = Using[*resource, int](nil, func(*resource) (int, error) { return 0, nil })
	})
	assert.PanicsWithError(t, "argument 'fn' must not be nil", func() {
		_, _ = Using[*resource, int](acquire(&resource{}), nil)
	})
}

func TestUsing_NilResourceIsNotClosed(t *testing.T) {
	t.Parallel()

	var got *resource
	v, err := Using(func() (*resource, error) { return nil, nil },
		func(item *resource) (int, error) {
			got = item
			return 7, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Nil(t, got)
}

func TestUsingAsync_ClosedBeforeCancelledResult(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := &resource{}
	started := make(chan struct{})
	out := UsingAsync(ctx,
		func(context.Context) (*resource, error) { return r, nil },
		func(ctx context.Context, _ *resource) (int, error) {
			close(started)
			<-ctx.Done()
			time.Sleep(10 * time.Millisecond)
			return 0, ctx.Err()
		})

	<-started
	cancel()

	got := <-out
	assert.ErrorIs(t, res.UnwrapError(got), context.Canceled)
	assert.True(t, r.closed.Load())
}

func TestUsingAsync_AlreadyDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	acquired := false
	got := <-UsingAsync(ctx,
		func(context.Context) (*resource, error) {
			acquired = true
			return &resource{}, nil
		},
		func(context.Context, *resource) (int, error) { return 1, nil })

	assert.ErrorIs(t, res.UnwrapError(got), context.Canceled)
	assert.False(t, acquired)
}

func TestUsingDo_NilAcquire(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, "argument 'acquire' must not be nil", func() {
		_ = UsingDo[*resource](nil, nil)
	})
}
