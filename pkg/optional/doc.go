// Package optional defines the two sum types of the module: Option[T], a
// value that may be absent, and Result[TOk, TError], a computation that
// either produced a value or failed with a typed error. Both are immutable
// values; combinators over them live in packages opt and res.
//
// The zero value of Option and Result is not None/Ok/Error. It is an
// invalid state and every observer panics with *InvalidStateError when it
// meets one. Build values only through None, Some, Ok and Error.
//
// Unit stands in for a type parameter that is not known yet. NoneUnit,
// OkUnit and ErrorUnit produce such values and Specialize, SpecializeOk and
// SpecializeError turn them into concretely typed containers whenever no
// payload has to be invented.
package optional
