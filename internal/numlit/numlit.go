// Package numlit decodes the numeric literals used in port declarations and
// other compact configuration strings.
package numlit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Error reports a literal that could not be decoded.
type Error struct {
	Literal string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid numeric literal %q", e.Literal)
	}
	return fmt.Sprintf("invalid numeric literal %q: %v", e.Literal, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Decode converts a literal into an unsigned integer. It accepts decimal,
// 0x hexadecimal, 0b binary and 0o or leading-zero octal forms, a single
// quoted character, and a leading minus sign, which yields the two's
// complement of the magnitude.
func Decode(s string) (uint64, error) {
	lit := strings.TrimSpace(s)
	if lit == "" {
		return 0, &Error{Literal: s, Err: errors.New("empty literal")}
	}

	if len(lit) >= 3 && lit[0] == '\'' && lit[len(lit)-1] == '\'' {
		r, size := utf8.DecodeRuneInString(lit[1 : len(lit)-1])
		if r == utf8.RuneError || size != len(lit)-2 {
			return 0, &Error{Literal: s, Err: errors.New("character literal must hold exactly one character")}
		}
		return uint64(r), nil
	}

	neg := false
	switch lit[0] {
	case '-':
		neg = true
		lit = lit[1:]
	case '+':
		lit = lit[1:]
	}
	if lit == "" || lit[0] == '-' || lit[0] == '+' {
		return 0, &Error{Literal: s, Err: errors.New("misplaced sign")}
	}

	// strconv treats a bare leading zero as octal when the base is 0.
	v, err := strconv.ParseUint(lit, 0, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &Error{Literal: s, Err: err}
	}
	if neg {
		return -v, nil
	}
	return v, nil
}
