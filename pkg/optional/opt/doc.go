// Package opt contains the combinators over optional.Option[T]. Every
// function takes the option as its first argument and returns a new value;
// nothing is mutated.
//
// Highlights:
// - Unwrap/Expect/UnwrapOr*/Value: extract the payload
// - Map/MapOr/MapOrElse: transform the payload
// - And/AndThen/Or/OrElse/Xor: combine options
// - OkOr/OkOrElse/Transpose: move into optional.Result
// - Flatten/Filter/Zip/Inspect: the rest of the usual toolbox
//
// Nil callables panic with *optional.ArgumentNilError before anything else
// is evaluated, and zero options panic with *optional.InvalidStateError.
package opt
