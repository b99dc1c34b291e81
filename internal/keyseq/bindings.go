package keyseq

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidBinding marks a binding that cannot be registered.
var ErrInvalidBinding = errors.New("invalid binding")

// Binding maps an ordered key sequence to a command-line template.
// The template may contain {count}; see Matcher for how a pending
// count reaches the emitted line.
type Binding struct {
	Seq     []string
	Command string
}

// Bindings is the lookup table the Matcher reads. It is filled once
// at startup and read-only during matching.
type Bindings struct {
	bindings []Binding
	index    map[string]int
}

func NewBindings() *Bindings {
	return &Bindings{index: map[string]int{}}
}

// Bind registers seq, replacing the command of an existing identical
// sequence. User configuration relies on the replacement to override
// built-in bindings.
func (b *Bindings) Bind(seq, cmdline string) error {
	tokens, err := ParseSequence(seq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBinding, err)
	}
	if len(tokens) == 0 {
		return fmt.Errorf("%w: empty sequence", ErrInvalidBinding)
	}
	if strings.TrimSpace(cmdline) == "" {
		return fmt.Errorf("%w: %q maps to an empty command", ErrInvalidBinding, seq)
	}
	key := FormatSequence(tokens)
	if i, ok := b.index[key]; ok {
		b.bindings[i].Command = cmdline
		return nil
	}
	b.index[key] = len(b.bindings)
	b.bindings = append(b.bindings, Binding{Seq: tokens, Command: cmdline})
	return nil
}

// All returns every binding sorted by sequence.
func (b *Bindings) All() []Binding {
	out := make([]Binding, len(b.bindings))
	for i, bd := range b.bindings {
		out[i] = Binding{Seq: slices.Clone(bd.Seq), Command: bd.Command}
	}
	slices.SortFunc(out, func(x, y Binding) int {
		return cmp.Compare(FormatSequence(x.Seq), FormatSequence(y.Seq))
	})
	return out
}

func (b *Bindings) Len() int { return len(b.bindings) }

// lookup finds the binding whose sequence equals tokens.
func (b *Bindings) lookup(tokens []string) (Binding, bool) {
	i, ok := b.index[FormatSequence(tokens)]
	if !ok {
		return Binding{}, false
	}
	return b.bindings[i], true
}

// hasStrictPrefix reports whether some longer binding starts with
// tokens.
func (b *Bindings) hasStrictPrefix(tokens []string) bool {
	for _, bd := range b.bindings {
		if len(bd.Seq) > len(tokens) && slices.Equal(bd.Seq[:len(tokens)], tokens) {
			return true
		}
	}
	return false
}
