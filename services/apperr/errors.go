// Package apperr defines the recoverable, user-facing error taxonomy shared by
// the scheduling services. Anything not carrying one of these codes is treated
// as an internal failure and surfaced without detail.
package apperr

import "errors"

const (
	CodeNotFound          = "notFound"
	CodeInvalidArgument   = "invalidArgument"
	CodeQuotaExceeded     = "quotaExceeded"
	CodeSlotConflict      = "slotConflict"
	CodeForbidden         = "forbidden"
	CodeInvalidTransition = "invalidTransition"
)

// Error is a coded service error. The message is safe to show to clients.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func NotFound(msg string) error          { return &Error{Code: CodeNotFound, Message: msg} }
func InvalidArgument(msg string) error   { return &Error{Code: CodeInvalidArgument, Message: msg} }
func QuotaExceeded(msg string) error     { return &Error{Code: CodeQuotaExceeded, Message: msg} }
func SlotConflict(msg string) error      { return &Error{Code: CodeSlotConflict, Message: msg} }
func Forbidden(msg string) error         { return &Error{Code: CodeForbidden, Message: msg} }
func InvalidTransition(msg string) error { return &Error{Code: CodeInvalidTransition, Message: msg} }

// CodeOf returns the taxonomy code carried by err, or "" when err is not a
// service error.
func CodeOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	return CodeOf(err) == code
}
