package game

import "fmt"

// Code is a machine-readable error code.
type Code string

const (
	CodeInvalidPlayerCount Code = "INVALID_PLAYER_COUNT"
	CodeIllegalAction      Code = "ILLEGAL_ACTION"
	CodeInsufficientFunds  Code = "INSUFFICIENT_FUNDS"
	CodeInvalidConfig      Code = "INVALID_CONFIG"
	CodeGameOver           Code = "GAME_OVER"
	CodeGameNotFound       Code = "GAME_NOT_FOUND"
)

// Error is the domain error type returned by the rules engine.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable detail
	Cause   error  // Wrapped underlying error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidPlayerCount = &Error{Code: CodeInvalidPlayerCount, Message: "invalid player count"}
	ErrIllegalAction      = &Error{Code: CodeIllegalAction, Message: "illegal action"}
	ErrInsufficientFunds  = &Error{Code: CodeInsufficientFunds, Message: "insufficient funds"}
	ErrInvalidConfig      = &Error{Code: CodeInvalidConfig, Message: "invalid configuration"}
	ErrGameOver           = &Error{Code: CodeGameOver, Message: "game is over - no turns allowed"}
	ErrGameNotFound       = &Error{Code: CodeGameNotFound, Message: "game not found"}
)

func illegal(format string, args ...any) error {
	return &Error{Code: CodeIllegalAction, Message: fmt.Sprintf(format, args...)}
}

func invalidConfig(format string, args ...any) error {
	return &Error{Code: CodeInvalidConfig, Message: fmt.Sprintf(format, args...)}
}
