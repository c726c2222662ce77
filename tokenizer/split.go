package tokenizer

//go:generate go tool errtrace -w .

import (
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hdrkit/internal/errorutil"
)

var weekdays = [...][3]rune{
	{'M', 'o', 'n'},
	{'T', 'u', 'e'},
	{'W', 'e', 'd'},
	{'T', 'h', 'u'},
	{'F', 'r', 'i'},
	{'S', 'a', 't'},
	{'S', 'u', 'n'},
}

func isWeekday(w [3]rune) bool {
	for _, d := range weekdays {
		if w == d {
			return true
		}
	}
	return false
}

// Split splits value on delim, skipping delimiters found inside quoted
// strings, attribute values and dates embedded in values.
// Each field is trimmed. The result always holds at least one field,
// so an empty value yields a single empty string.
//
// The delimiter must not be a double quote, otherwise an error wrapping
// [ErrInvalidArgument] is returned.
func Split(value string, delim rune) ([]string, error) {
	if delim == '"' || !utf8.ValidRune(delim) {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("delimiter %q is not allowed", delim))
	}
	return scan(value, delim), nil
}

// SplitString is like [Split] but takes the delimiter as a string,
// which must hold exactly one character.
func SplitString(value, delim string) ([]string, error) {
	r, n := utf8.DecodeRuneInString(delim)
	if n == 0 || n != len(delim) || r == utf8.RuneError && n == 1 {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(
			"delimiter must be a single character, got %q", delim,
		))
	}
	return errtrace.Wrap2(Split(value, r))
}

// MustSplit is like [Split] but panics on an invalid delimiter.
func MustSplit(value string, delim rune) []string {
	fields, err := Split(value, delim)
	if err != nil {
		panic(err)
	}
	return fields
}

func scan(value string, delim rune) []string {
	var (
		fields = make([]string, 0, strings.Count(value, string(delim))+1)
		state  State
		window [3]rune
		start  int
		idx    int
	)
	for pos := 0; pos < len(value); {
		r, size := utf8.DecodeRuneInString(value[pos:])

		next, isSplit := Next(state, Classify(r, delim), idx > 3 && isWeekday(window))
		if isSplit {
			fields = append(fields, strings.TrimSpace(value[start:pos]))
			start = pos + size
		}
		state = next

		window[0], window[1], window[2] = window[1], window[2], r
		pos += size
		idx++
	}
	return append(fields, strings.TrimSpace(value[start:]))
}
