// Package keyseq matches key presses against a table of bound key
// sequences and resolves them to command lines.
//
// A Matcher consumes one normalized key token at a time. Digits fed
// before any key token accumulate as an optional count prefix, except
// a leading 0, which is an ordinary key token so that bindings on 0
// stay reachable. When the pending tokens exactly match a binding and
// no longer binding shares them as a prefix, the bound command line
// is emitted and the machine resets. When a complete binding is also
// the prefix of a longer one, the machine waits: the short match is
// kept as a fallback and emitted later if the longer candidates die
// out, with the leftover keys replayed through the fresh machine.
//
// Allowed here:
// - token normalization and the sequence string encoding
// - the binding table and the matching state machine
//
// Not allowed here:
// - command names, parsing, dispatch (internal/command)
// - timers; the caller owns any idle-reset policy and calls Reset
package keyseq
