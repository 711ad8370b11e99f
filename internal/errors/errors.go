// Package errors provides structured error types for the Dryink client.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindNetwork
	KindConfig
	KindAuth
	KindBackend
	KindNoHistory
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindNetwork:
		return "network error"
	case KindConfig:
		return "configuration error"
	case KindAuth:
		return "authentication error"
	case KindBackend:
		return "backend rejected request"
	case KindNoHistory:
		return "no history"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for Dryink.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Notice returns the text shown to the user for err. Backend rejections carry
// the backend's own message; everything else uses the error's context.
func Notice(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Context == "" {
			return e.Err.Error()
		}
		return e.Context
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// Generation errors

// GenerationFailedNotice is the notice shown when a generation call never
// produced a usable backend envelope.
const GenerationFailedNotice = "Failed to generate video"

func NetworkFailure(op string, err error) error {
	return E(Op(op), KindNetwork, GenerationFailedNotice, err)
}

func BackendRejected(op, message string) error {
	if message == "" {
		message = GenerationFailedNotice
	}
	return E(Op(op), KindBackend, message)
}

func GenerationInProgress() error {
	return E(Op("generation.Submit"), KindInvalid, "generation already in progress")
}

func EmptyPrompt() error {
	return E(Op("generation.Submit"), KindInvalid, "prompt is empty")
}

// History errors

// NoHistory reports that undo or redo hit a bound. direction is "undo" or "redo".
func NoHistory(direction string) error {
	return E(Op("history."+direction), KindNoHistory, fmt.Sprintf("No more history to %s", direction))
}

// Session list errors
func SessionsLoadFailed(err error) error {
	return E(Op("backend.ListSessions"), KindNetwork, "Failed to load chat sessions", err)
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Auth errors
func MissingToken() error {
	return E(Op("auth.Token"), KindAuth, "not signed in")
}

// SessionFileInvalid reports an unreadable or corrupt session file. It is not
// KindAuth, so callers can tell it apart from being signed out.
func SessionFileInvalid(path string, err error) error {
	return E(Op("auth.Load"), KindInvalid, fmt.Sprintf("invalid session file %s", path), err)
}
