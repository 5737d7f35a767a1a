// Package ext holds the thin glue between optional results and the rest of
// a Go program: running a callback under a lock, turning (T, error)
// functions and panics into results, and releasing resources after a
// callback no matter how it exits.
package ext
