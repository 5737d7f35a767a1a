// Package res contains the combinators over optional.Result[TOk, TError].
// These functions are the synchronous building blocks for error-aware code
// that never throws: each takes a result and returns a new one.
//
// Highlights:
// - Ok/Error: project a branch into optional.Option
// - Map/MapError/MapOr/MapOrElse: transform one branch
// - And/AndThen/Or/OrElse: switch to another result
// - Unwrap/Expect/UnwrapError/ExpectError/UnwrapOr*/Value: extract
// - FromPair/ToPair: bridge to the (T, error) convention
// - Transpose/Flatten/Collect: reshape nested results
package res
