// Package command turns command-line text into validated invocations
// of registered actions.
//
// Allowed here:
// - the command registry and its invocation notification
// - parsing of count-prefixed command lines
// - dispatch, including count acceptance and arity checks
//
// Not allowed here:
// - key handling (that is internal/keyseq; it hands finished command
//   lines to this package and knows nothing about commands)
// - concrete action behavior
package command
