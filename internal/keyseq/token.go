package keyseq

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NormalizeToken canonicalizes one key token. Single runes keep their
// case (G and g are different keys); named and chorded keys are
// lowercased with a few aliases folded in, matching what the terminal
// layer reports for them.
func NormalizeToken(s string) string {
	if s == " " {
		return "space"
	}
	t := strings.TrimSpace(s)
	if t == "" {
		return ""
	}
	if utf8.RuneCountInString(t) == 1 {
		return t
	}
	t = strings.ToLower(t)
	t = strings.ReplaceAll(t, "control+", "ctrl+")
	switch t {
	case "return":
		return "enter"
	case "spacebar":
		return "space"
	}
	return t
}

// ParseSequence splits a sequence string into key tokens. Single
// runes stand for themselves; a named or chorded key is wrapped in
// angle brackets. "gg" is two presses of g, "<ctrl+b>x" is ctrl+b
// then x.
func ParseSequence(s string) ([]string, error) {
	var tokens []string
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '<' {
			tokens = append(tokens, NormalizeToken(string(rs[i])))
			continue
		}
		j := i + 1
		for j < len(rs) && rs[j] != '>' {
			j++
		}
		if j == len(rs) {
			return nil, fmt.Errorf("unclosed key name in %q", s)
		}
		name := NormalizeToken(string(rs[i+1 : j]))
		if name == "" {
			return nil, fmt.Errorf("empty key name in %q", s)
		}
		tokens = append(tokens, name)
		i = j
	}
	return tokens, nil
}

// FormatSequence is the inverse of ParseSequence.
func FormatSequence(tokens []string) string {
	var b strings.Builder
	for _, t := range tokens {
		if utf8.RuneCountInString(t) == 1 {
			b.WriteString(t)
		} else {
			b.WriteString("<")
			b.WriteString(t)
			b.WriteString(">")
		}
	}
	return b.String()
}

func isCountDigit(tok string) bool {
	return len(tok) == 1 && tok[0] >= '0' && tok[0] <= '9'
}
