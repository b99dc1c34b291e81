package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts one line of command text into an Invocation.
//
// A leading whitespace-delimited run of ASCII digits is the count,
// the next token is the command name, the rest are the arguments.
// Splitting is plain whitespace with no quoting; a token like "42nd"
// is a name, not a count.
func Parse(line string) (Invocation, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Invocation{}, ErrEmptyCommand
	}

	var inv Invocation
	if isDigits(fields[0]) {
		n, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return Invocation{}, fmt.Errorf("%w: %s is out of range", ErrMalformedCount, fields[0])
		}
		inv.Count = n
		inv.HasCount = true
		fields = fields[1:]
		if len(fields) == 0 {
			return Invocation{}, fmt.Errorf("%w: count %d with no command", ErrMalformedCount, n)
		}
	}

	inv.Name = fields[0]
	if len(fields) > 1 {
		inv.Args = fields[1:]
	}
	return inv, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
