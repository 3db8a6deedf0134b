package compdb

import (
	"strings"

	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/zerr"
)

// Unescape splits an escaped "command" string into its arguments.
//
// Arguments are separated by one or more spaces. Each argument is a run of
// double-quoted spans, backslash escapes (\\ or \") and plain characters
// other than space, quote and backslash. Quotes that are not escaped are
// dropped and escapes are decoded. A string with nothing but spaces yields
// no arguments.
func Unescape(command string) ([]string, error) {
	var args []string

	pos := skipSpaces(command, 0)
	for pos < len(command) {
		arg, next, ok := scanArgument(command, pos)
		if !ok {
			err := zerr.Wrap(domain.ErrMalformedCommand, "no well-formed argument")
			err = zerr.With(err, "command", command)
			return nil, zerr.With(err, "offset", pos)
		}
		args = append(args, arg)
		pos = skipSpaces(command, next)
	}

	return args, nil
}

func skipSpaces(s string, pos int) int {
	for pos < len(s) && s[pos] == ' ' {
		pos++
	}
	return pos
}

// scanArgument decodes the longest argument starting at start.
// It reports false when not even one unit matches.
func scanArgument(s string, start int) (string, int, bool) {
	var b strings.Builder
	i := start

scan:
	for i < len(s) {
		switch c := s[i]; c {
		case ' ':
			break scan
		case '"':
			span, next, ok := scanQuoted(s, i+1)
			if !ok {
				break scan
			}
			b.WriteString(span)
			i = next
		case '\\':
			if i+1 >= len(s) || !isEscapable(s[i+1]) {
				break scan
			}
			b.WriteByte(s[i+1])
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}

	if i == start {
		return "", start, false
	}
	return b.String(), i, true
}

// scanQuoted decodes a quoted span whose opening quote precedes start.
// It returns the position after the closing quote.
func scanQuoted(s string, start int) (string, int, bool) {
	var b strings.Builder
	for i := start; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			return b.String(), i + 1, true
		case '\\':
			if i+1 >= len(s) || !isEscapable(s[i+1]) {
				return "", start, false
			}
			i++
			b.WriteByte(s[i])
		default:
			b.WriteByte(c)
		}
	}
	return "", start, false
}

func isEscapable(c byte) bool {
	return c == '\\' || c == '"'
}

// Escape joins args into a single command string that Unescape turns back into args.
func Escape(args []string) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = escapeArgument(arg)
	}
	return strings.Join(parts, " ")
}

func escapeArgument(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, ` "\`) {
		return arg
	}

	var b strings.Builder
	b.Grow(len(arg) + 2)
	b.WriteByte('"')
	for i := 0; i < len(arg); i++ {
		if isEscapable(arg[i]) {
			b.WriteByte('\\')
		}
		b.WriteByte(arg[i])
	}
	b.WriteByte('"')
	return b.String()
}
