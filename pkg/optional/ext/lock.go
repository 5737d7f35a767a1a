package ext

import (
	"sync"

	"github.com/ib-77/optional/pkg/optional"
)

// Lock runs fn while holding locker. The lock is released on every exit
// path, a panic in fn included.
func Lock[R any](locker sync.Locker, fn func() R) R {
	optional.MustNotBeNil(locker, "locker")
	optional.MustNotBeNil(fn, "fn")
	locker.Lock()
	defer locker.Unlock()
	return fn()
}

func LockDo(locker sync.Locker, fn func()) optional.Unit {
	optional.MustNotBeNil(locker, "locker")
	optional.MustNotBeNil(fn, "fn")
	return Lock(locker, unitFunc(fn))
}

func unitFunc(fn func()) func() optional.Unit {
	return func() optional.Unit {
		fn()
		return optional.Unit{}
	}
}
