package config

// DefaultBinds is the built-in key binding table. User [[bind]]
// entries override same-sequence entries and append otherwise.
//
// Every sequence here must parse; main treats a failure as a
// programmer error and aborts startup, unlike malformed user entries,
// which are skipped with a warning.
func DefaultBinds() []Bind {
	return []Bind{
		{Seq: "o", Command: "open"},
		{Seq: "O", Command: "tabopen"},
		{Seq: "d", Command: "tabclose"},
		{Seq: "u", Command: "undo"},
		{Seq: "r", Command: "reload"},
		{Seq: "J", Command: "tabnext"},
		{Seq: "K", Command: "tabprev"},
		{Seq: "H", Command: "back"},
		{Seq: "L", Command: "forward"},
		{Seq: "h", Command: "scroll -8 0"},
		{Seq: "j", Command: "scroll 0 1"},
		{Seq: "k", Command: "scroll 0 -1"},
		{Seq: "l", Command: "scroll 8 0"},
		{Seq: "gg", Command: "scroll_perc_y 0"},
		{Seq: "G", Command: "scroll_perc_y"},
		{Seq: "0", Command: "scroll_perc_x 0"},
		{Seq: "$", Command: "scroll_perc_x"},
		{Seq: "gh", Command: "history"},
		{Seq: "?", Command: "help"},
		{Seq: "ZZ", Command: "quit"},
	}
}

const defaultConfigTOML = `# quire configuration
# Values here override the built-in defaults shown below.
# Every key is also reachable through the environment with the QUIRE_
# prefix, for example QUIRE_INPUT_TIMEOUT_MS=500.

[ui]
# Width a tab character expands to.
tab_width = 8

[input]
# Pending key sequences reset after this many milliseconds without a
# key press. 0 disables the reset.
timeout_ms = 2000
# Key that abandons a pending sequence.
cancel_key = "esc"

[history]
# Record every executed command in a local database, viewable with
# the history command (bound to gh).
enabled = true
# Entries beyond the limit are pruned, oldest first.
limit = 1000
# path = "~/.local/share/quire/history.db"

[log]
# debug, info, warn, or error.
level = "info"
# Empty means the state directory, typically ~/.local/state/quire/.
# file = ""

# Key bindings add to the built-in table; binding an existing
# sequence replaces it. Sequences are case sensitive and name
# multi-character keys in angle brackets.
#
# [[bind]]
# seq = "<ctrl+b>"
# command = "scroll_perc_y 0"
#
# [[bind]]
# seq = "x"
# command = "tabclose"
`
