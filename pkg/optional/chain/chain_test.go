package chain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/optional/pkg/optional"
)

var errBoom = errors.New("boom")

func TestStartAndResult_Ok(t *testing.T) {
	t.Parallel()

	out := Start(optional.Ok[int, error](5)).Result()
	if v, _, ok := out.Get(); !ok || v != 5 {
		t.Fatalf("expected Ok(5), got: %s", out)
	}
}

func TestFromValueFromError(t *testing.T) {
	t.Parallel()

	if out := FromValue[int, error](7).Result(); !out.Equal(optional.Ok[int, error](7)) {
		t.Fatalf("expected Ok(7), got: %s", out)
	}
	if out := FromError[int](errBoom).Result(); !out.Equal(optional.Error[int](errBoom)) {
		t.Fatalf("expected Error(boom), got: %s", out)
	}
}

func TestThen_ShortCircuitOnError(t *testing.T) {
	t.Parallel()

	called := false
	out := FromError[int](errBoom).
		Then(func(v int) optional.Result[int, error] {
			called = true
			return optional.Ok[int, error](v + 1)
		}).
		Result()

	if !out.IsError() {
		t.Fatalf("expected Error, got: %s", out)
	}
	if called {
		t.Fatalf("onOk should not be called when initial result is an error")
	}
}

func TestThen_OkPath(t *testing.T) {
	t.Parallel()

	out := FromValue[int, error](3).
		Then(func(v int) optional.Result[int, error] { return optional.Ok[int, error](v * 2) }).
		Map(func(v int) int { return v + 1 }).
		Result()

	if !out.Equal(optional.Ok[int, error](7)) {
		t.Fatalf("expected Ok(7), got: %s", out)
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	out := FromError[int]("bad").
		MapError(func(e string) string { return e + "!" }).
		Result()

	if !out.Equal(optional.Error[int]("bad!")) {
		t.Fatalf("expected Error(bad!), got: %s", out)
	}
}

func TestOrElse_Recovers(t *testing.T) {
	t.Parallel()

	out := FromError[int](errBoom).
		OrElse(func(err error) optional.Result[int, error] { return optional.Ok[int, error](0) }).
		Result()

	if !out.Equal(optional.Ok[int, error](0)) {
		t.Fatalf("expected Ok(0), got: %s", out)
	}
}

func TestEnsureRecover_SideEffects(t *testing.T) {
	t.Parallel()

	var okSeen, errSeen int

	FromValue[int, error](1).
		Ensure(func(int) { okSeen++ }).
		Recover(func(error) { errSeen++ })
	FromError[int](errBoom).
		Ensure(func(int) { okSeen++ }).
		Recover(func(error) { errSeen++ })

	if okSeen != 1 || errSeen != 1 {
		t.Fatalf("expected one call each, got ok=%d err=%d", okSeen, errSeen)
	}
}

func TestTo_SwitchesType(t *testing.T) {
	t.Parallel()

	c := To(FromValue[int, error](12), func(v int) optional.Result[string, error] {
		return optional.Ok[string, error](strconv.Itoa(v))
	})

	if out := c.Result(); !out.Equal(optional.Ok[string, error]("12")) {
		t.Fatalf("expected Ok(12), got: %s", out)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	onOk := func(v int) string { return "val:" + strconv.Itoa(v) }
	onErr := func(err error) string { return "err:" + err.Error() }

	if got := Finally(FromValue[int, error](2), onOk, onErr); got != "val:2" {
		t.Fatalf("expected val:2, got %s", got)
	}
	if got := Finally(FromError[int](errBoom), onOk, onErr); got != "err:boom" {
		t.Fatalf("expected err:boom, got %s", got)
	}
}
