package command

import "errors"

// Registration errors abort startup. Everything else is an
// interaction error: it is shown to the user and the pipeline keeps
// running.
var (
	ErrDuplicateCommand  = errors.New("duplicate command")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrCountNotSupported = errors.New("count not supported")
	ErrEmptyCommand      = errors.New("empty command")
	ErrMalformedCount    = errors.New("malformed count")
	ErrWrongArgCount     = errors.New("wrong argument count")
)
