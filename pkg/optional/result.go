package optional

import (
	"fmt"
	"hash/maphash"
)

type resultTag uint8

const (
	resultInvalid resultTag = iota
	resultOk
	resultError
)

// Result is either Ok(v) or Error(e). The zero value is invalid; use Ok and
// Error.
type Result[TOk, TError any] struct {
	tag resultTag
	ok  TOk
	err TError
}

func Ok[TOk, TError any](ok TOk) Result[TOk, TError] {
	return Result[TOk, TError]{tag: resultOk, ok: ok}
}

func Error[TOk, TError any](err TError) Result[TOk, TError] {
	return Result[TOk, TError]{tag: resultError, err: err}
}

func (r Result[TOk, TError]) check() {
	if !r.Valid() {
		panic(&InvalidStateError{Kind: "result"})
	}
}

// Valid reports whether r was built by Ok or Error. It is the only method
// that does not panic on the zero value.
func (r Result[TOk, TError]) Valid() bool {
	return r.tag != resultInvalid
}

func (r Result[TOk, TError]) IsOk() bool {
	r.check()
	return r.tag == resultOk
}

func (r Result[TOk, TError]) IsError() bool {
	r.check()
	return r.tag == resultError
}

// Get returns both payload slots and whether the Ok branch is active. Only
// the slot of the active branch is meaningful.
func (r Result[TOk, TError]) Get() (TOk, TError, bool) {
	r.check()
	return r.ok, r.err, r.tag == resultOk
}

// Equal compares the payloads of the active branch. Results on different
// branches are never equal.
func (r Result[TOk, TError]) Equal(other Result[TOk, TError]) bool {
	r.check()
	other.check()
	switch {
	case r.tag != other.tag:
		return false
	case r.tag == resultOk:
		return equalPayload(r.ok, other.ok)
	default:
		return equalPayload(r.err, other.err)
	}
}

func (r Result[TOk, TError]) Hash(seed maphash.Seed) uint64 {
	r.check()
	if r.tag == resultOk {
		return combineHash(uint8(r.tag), hashPayload(seed, r.ok))
	}
	return combineHash(uint8(r.tag), hashPayload(seed, r.err))
}

func (r Result[TOk, TError]) String() string {
	r.check()
	if r.tag == resultOk {
		return fmt.Sprintf("Ok(%v)", r.ok)
	}
	return fmt.Sprintf("Error(%v)", r.err)
}

// SpecializeError gives a result built by OkUnit its real error type. An
// Error(Unit) panics with *InvalidCastError. TError comes first so that
// TOk can be inferred: SpecializeError[string](r).
func SpecializeError[TError, TOk any](r Result[TOk, Unit]) Result[TOk, TError] {
	r.check()
	if r.tag == resultOk {
		return Ok[TOk, TError](r.ok)
	}
	panic(&InvalidCastError{
		From: "Error<" + typeName[Unit]() + ">",
		To:   "Error<" + typeName[TError]() + ">",
	})
}

// SpecializeOk gives a result built by ErrorUnit its real ok type. An
// Ok(Unit) panics with *InvalidCastError. TOk comes first so that TError can
// be inferred: SpecializeOk[int](r).
func SpecializeOk[TOk, TError any](r Result[Unit, TError]) Result[TOk, TError] {
	r.check()
	if r.tag == resultError {
		return Error[TOk, TError](r.err)
	}
	panic(&InvalidCastError{
		From: "Ok<" + typeName[Unit]() + ">",
		To:   "Ok<" + typeName[TOk]() + ">",
	})
}
