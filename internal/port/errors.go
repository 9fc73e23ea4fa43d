package port

import "fmt"

// FormatError is returned when the width token is not a numeric literal.
type FormatError struct {
	Token string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid bit length: %s", e.Token)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ConfigError is returned for a declaration whose fields contradict each other.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

// UnknownTypeError is returned when the type token is not a known keyword.
type UnknownTypeError struct {
	Token string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type: %s", e.Token)
}
