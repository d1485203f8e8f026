package service

import "errors"

var (
	// ErrForbidden means the acting user lacks the bendahara role. Every
	// mutating operation checks this first and performs no writes.
	ErrForbidden = errors.New("bendahara role required")

	ErrNotFound = errors.New("record not found")
)

// ValidationError reports a rejected input; handlers map it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(msg string) error { return &ValidationError{Msg: msg} }
