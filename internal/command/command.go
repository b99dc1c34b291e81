package command

import (
	"cmp"
	"fmt"
	"slices"
)

// Invocation is a fully parsed, ready-to-dispatch request. Count is
// meaningful only when HasCount is true.
type Invocation struct {
	Count    uint64
	HasCount bool
	Name     string
	Args     []string
}

// Action performs one command. The dispatcher guarantees HasCount is
// false unless the command accepts counts and the user supplied one.
type Action func(inv Invocation) error

// Command describes one registered action.
//
// MinArgs and MaxArgs bound the argument count the dispatcher will
// accept; MaxArgs -1 means unlimited. The zero value takes no
// arguments and no count.
type Command struct {
	Name         string
	Description  string
	AcceptsCount bool
	MinArgs      int
	MaxArgs      int
	Action       Action
}

// Registry is the append-only table of known commands. Registration
// happens once at startup; after that the table is only read.
type Registry struct {
	commands map[string]Command
	notify   func(Invocation)
}

func NewRegistry() *Registry {
	return &Registry{commands: map[string]Command{}}
}

// Register adds cmd to the registry. The name must be unique and
// non-empty and the action non-nil. A failed Register leaves the
// registry unchanged.
func (r *Registry) Register(cmd Command) error {
	if cmd.Name == "" {
		return fmt.Errorf("register: command name is required")
	}
	if cmd.Action == nil {
		return fmt.Errorf("register %s: action is required", cmd.Name)
	}
	if _, ok := r.commands[cmd.Name]; ok {
		return fmt.Errorf("register %s: %w", cmd.Name, ErrDuplicateCommand)
	}
	r.commands[cmd.Name] = cmd
	return nil
}

// Lookup returns the command registered under name. The unknown-name
// message carries a nearby known name when one exists.
func (r *Registry) Lookup(name string) (Command, error) {
	cmd, ok := r.commands[name]
	if !ok {
		if s := Suggest(name, r.Names()); s != "" {
			return Command{}, fmt.Errorf("%w: %s (did you mean %s?)", ErrUnknownCommand, name, s)
		}
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return cmd, nil
}

// All returns every registered command sorted by name.
func (r *Registry) All() []Command {
	out := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Command) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

// Names returns every registered name sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.commands))
	for name := range r.commands {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Notify sets the invocation subscriber. There is exactly one; the
// dispatcher calls it after every action that returns nil.
func (r *Registry) Notify(fn func(Invocation)) {
	r.notify = fn
}
