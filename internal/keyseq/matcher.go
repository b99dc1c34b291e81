package keyseq

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNoMatch reports a key sequence no binding can complete. It is an
// interaction error: the matcher has already reset itself when the
// caller sees it.
var ErrNoMatch = errors.New("no binding matches")

// countPlaceholder in a command template is replaced by the pending
// digits; without it the digits are prepended to the emitted line.
const countPlaceholder = "{count}"

// DefaultCancelKey resets the machine unconditionally.
const DefaultCancelKey = "esc"

// Result is the outcome of feeding one key token. Lines holds the
// command lines resolved by that key, in order; a fallback resolution
// can release more than one. Err is ErrNoMatch when the key led to a
// dead end nothing could absorb.
type Result struct {
	Lines []string
	Err   error
}

// Matcher is the key-sequence state machine. One Matcher serves one
// input focus; it is not safe for concurrent use and does not need to
// be, everything runs on the event loop.
type Matcher struct {
	bindings *Bindings
	cancel   string

	digits   []rune
	pending  []string
	fallback *fallbackMatch
}

// fallbackMatch remembers a completed binding that is shadowed by
// longer candidates. consumed counts the pending tokens it covers.
type fallbackMatch struct {
	command  string
	consumed int
}

// NewMatcher builds a matcher over b. cancelKey may be empty, which
// means DefaultCancelKey.
func NewMatcher(b *Bindings, cancelKey string) *Matcher {
	cancel := NormalizeToken(cancelKey)
	if cancel == "" {
		cancel = DefaultCancelKey
	}
	return &Matcher{bindings: b, cancel: cancel}
}

// Feed consumes one key token and advances the machine.
func (m *Matcher) Feed(token string) Result {
	tok := NormalizeToken(token)
	if tok == "" {
		return Result{}
	}
	return m.feed(tok)
}

func (m *Matcher) feed(tok string) Result {
	if tok == m.cancel {
		m.Reset()
		return Result{}
	}

	// with nothing bound every press is a dead end, digits included
	if m.bindings.Len() == 0 {
		m.Reset()
		return Result{Err: fmt.Errorf("%w: %s", ErrNoMatch, FormatSequence([]string{tok}))}
	}

	// digits accumulate as a count only before the first key token,
	// and a leading 0 is a key token, not a count digit
	if len(m.pending) == 0 && isCountDigit(tok) && (len(m.digits) > 0 || tok != "0") {
		m.digits = append(m.digits, rune(tok[0]))
		return Result{}
	}

	m.pending = append(m.pending, tok)

	exact, found := m.bindings.lookup(m.pending)
	longer := m.bindings.hasStrictPrefix(m.pending)
	switch {
	case found && longer:
		// complete, but a longer binding is still reachable: wait
		m.fallback = &fallbackMatch{command: exact.Command, consumed: len(m.pending)}
		return Result{}
	case found:
		return Result{Lines: []string{m.emit(exact.Command)}}
	case longer:
		return Result{}
	}

	// dead end
	if m.fallback == nil {
		seq := m.Keystring()
		m.Reset()
		return Result{Err: fmt.Errorf("%w: %s", ErrNoMatch, seq)}
	}
	fb := *m.fallback
	rest := slices.Clone(m.pending[fb.consumed:])
	out := Result{Lines: []string{m.emit(fb.command)}}
	for _, t := range rest {
		r := m.feed(t)
		out.Lines = append(out.Lines, r.Lines...)
		if r.Err != nil {
			out.Err = r.Err
			break
		}
	}
	return out
}

// emit renders template into a command line, applying the pending
// count, and resets the machine.
func (m *Matcher) emit(template string) string {
	line := template
	count := string(m.digits)
	if strings.Contains(line, countPlaceholder) {
		line = strings.ReplaceAll(line, countPlaceholder, count)
		line = strings.Join(strings.Fields(line), " ")
	} else if count != "" {
		line = count + " " + line
	}
	m.Reset()
	return line
}

// Keystring renders the accumulated input for display: digits first,
// then the pending tokens in sequence encoding.
func (m *Matcher) Keystring() string {
	return string(m.digits) + FormatSequence(m.pending)
}

// Busy reports whether input is mid-sequence.
func (m *Matcher) Busy() bool {
	return len(m.digits) > 0 || len(m.pending) > 0
}

// Reset returns the machine to its initial state.
func (m *Matcher) Reset() {
	m.digits = nil
	m.pending = nil
	m.fallback = nil
}
