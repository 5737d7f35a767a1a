package optional

import (
	"fmt"
	"hash/maphash"
)

type optionTag uint8

const (
	optionInvalid optionTag = iota
	optionNone
	optionSome
)

// Option is either None or Some(v). The zero value is invalid; use None and
// Some.
type Option[T any] struct {
	tag optionTag
	v   T
}

func None[T any]() Option[T] {
	return Option[T]{tag: optionNone}
}

// Some wraps v. No validation is performed, a nil pointer is a valid payload.
func Some[T any](v T) Option[T] {
	return Option[T]{tag: optionSome, v: v}
}

func (o Option[T]) check() {
	if !o.Valid() {
		panic(&InvalidStateError{Kind: "option"})
	}
}

// Valid reports whether o was built by None or Some. It is the only method
// that does not panic on the zero value.
func (o Option[T]) Valid() bool {
	return o.tag != optionInvalid
}

func (o Option[T]) IsSome() bool {
	o.check()
	return o.tag == optionSome
}

func (o Option[T]) IsNone() bool {
	o.check()
	return o.tag == optionNone
}

// Get returns the payload and whether it is present.
func (o Option[T]) Get() (T, bool) {
	o.check()
	return o.v, o.tag == optionSome
}

// Equal reports whether both options are None, or both are Some with equal
// payloads.
func (o Option[T]) Equal(other Option[T]) bool {
	o.check()
	other.check()
	if o.tag != other.tag {
		return false
	}
	return o.tag == optionNone || equalPayload(o.v, other.v)
}

// Hash is consistent with Equal. It panics for a Some whose payload is not
// comparable and has no Hash method.
func (o Option[T]) Hash(seed maphash.Seed) uint64 {
	o.check()
	if o.tag == optionNone {
		return combineHash(uint8(o.tag), 0)
	}
	return combineHash(uint8(o.tag), hashPayload(seed, o.v))
}

func (o Option[T]) String() string {
	o.check()
	if o.tag == optionNone {
		return "None()"
	}
	return fmt.Sprintf("Some(%v)", o.v)
}

// Specialize converts a unit-erased None into a None of any payload type. A
// Some can not be converted since no T exists; it panics with
// *InvalidCastError.
func Specialize[T any](o Option[Unit]) Option[T] {
	o.check()
	if o.tag == optionNone {
		return None[T]()
	}
	panic(&InvalidCastError{
		From: "Some<" + typeName[Unit]() + ">",
		To:   "Some<" + typeName[T]() + ">",
	})
}
