package optional

import "hash/maphash"

// Unit is the type with a single value. It is used as the erased payload of
// an Option or Result whose type parameter is irrelevant.
type Unit struct{}

func (Unit) Equal(Unit) bool { return true }

func (Unit) Hash(maphash.Seed) uint64 { return 0 }

func (Unit) String() string { return "()" }

// NoneUnit returns a None whose payload type is erased. Convert it with
// Specialize.
func NoneUnit() Option[Unit] {
	return None[Unit]()
}

// OkUnit returns an Ok whose error type is erased. Convert it with
// SpecializeError.
func OkUnit[TOk any](ok TOk) Result[TOk, Unit] {
	return Ok[TOk, Unit](ok)
}

// ErrorUnit returns an Error whose ok type is erased. Convert it with
// SpecializeOk.
func ErrorUnit[TError any](err TError) Result[Unit, TError] {
	return Error[Unit, TError](err)
}
