package command

import "fmt"

// Dispatcher routes parsed invocations to registered actions.
type Dispatcher struct {
	registry *Registry
}

func NewDispatcher(reg *Registry) *Dispatcher {
	return &Dispatcher{registry: reg}
}

// Dispatch validates inv against its command and runs the action.
//
// A supplied count on a command that does not accept one is rejected,
// not dropped. The registry's notification fires only after the
// action has returned nil.
func (d *Dispatcher) Dispatch(inv Invocation) error {
	cmd, err := d.registry.Lookup(inv.Name)
	if err != nil {
		return err
	}
	if inv.HasCount && !cmd.AcceptsCount {
		return fmt.Errorf("%w: %s", ErrCountNotSupported, inv.Name)
	}
	if err := checkArgs(cmd, len(inv.Args)); err != nil {
		return err
	}
	if err := cmd.Action(inv); err != nil {
		return err
	}
	if d.registry.notify != nil {
		d.registry.notify(inv)
	}
	return nil
}

// Run parses line and dispatches the result.
func (d *Dispatcher) Run(line string) error {
	inv, err := Parse(line)
	if err != nil {
		return err
	}
	return d.Dispatch(inv)
}

func checkArgs(cmd Command, n int) error {
	if n < cmd.MinArgs {
		return fmt.Errorf("%w: %s needs at least %d, got %d", ErrWrongArgCount, cmd.Name, cmd.MinArgs, n)
	}
	if cmd.MaxArgs >= 0 && n > cmd.MaxArgs {
		return fmt.Errorf("%w: %s takes at most %d, got %d", ErrWrongArgCount, cmd.Name, cmd.MaxArgs, n)
	}
	return nil
}
