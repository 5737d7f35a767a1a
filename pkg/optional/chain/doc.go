// Package chain provides a fluent wrapper around optional.Result[T, E] for
// building synchronous chains on top of package res.
//
// Key operations:
// - Start/FromValue/FromError: begin a chain
// - Then: switch to a new result via a function (and_then)
// - Map/MapError: transform one branch
// - OrElse: recover from an error with another result
// - Ensure/Recover: side effects on Ok or on Error
// - Finally: collapse the chain into a final value via handlers
package chain
