package optional

import (
	"hash/maphash"
	"reflect"
)

// IsNil reports whether i is nil or holds a nil pointer, func, map, chan,
// slice or interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan,
		reflect.Slice, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// MustNotBeNil panics with *ArgumentNilError naming param when v is nil.
func MustNotBeNil(v any, param string) {
	if IsNil(v) {
		panic(&ArgumentNilError{Param: param})
	}
}

type equaler[T any] interface {
	Equal(T) bool
}

type hasher interface {
	Hash(maphash.Seed) uint64
}

// equalPayload uses the payload's own Equal method when it has one, == when
// both values are comparable and reflect.DeepEqual otherwise.
func equalPayload[T any](a, b T) bool {
	if eq, ok := any(a).(equaler[T]); ok {
		return eq.Equal(b)
	}
	if reflect.ValueOf(&a).Elem().Comparable() && reflect.ValueOf(&b).Elem().Comparable() {
		return any(a) == any(b)
	}
	return reflect.DeepEqual(a, b)
}

// hashPayload panics for payloads that are neither hashers nor comparable,
// just like a map key of that type would. A payload with its own Equal but
// no Hash contributes nothing, since its raw bits may differ between equal
// values.
func hashPayload[T any](seed maphash.Seed, v T) uint64 {
	if h, ok := any(v).(hasher); ok {
		return h.Hash(seed)
	}
	if _, ok := any(v).(equaler[T]); ok {
		return 0
	}
	return maphash.Comparable(seed, any(v))
}

func combineHash(tag uint8, payload uint64) uint64 {
	const prime = 1099511628211
	return (uint64(tag)+14695981039346656037)*prime ^ payload
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
