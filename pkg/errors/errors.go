// Package errors provides the coded error type used across ruleset.
//
// Every error that crosses a package boundary carries an ErrorCode so callers
// and tests can branch on the category without matching message text.
package errors

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrFrozen        ErrorCode = "FROZEN"

	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// ErrLoaderMissing marks a resolver built without a constructor. It is a
	// programming error and never the result of a lookup.
	ErrLoaderMissing   ErrorCode = "LOADER_MISSING"
	ErrModuleNotFound  ErrorCode = "MODULE_NOT_FOUND"
	ErrModuleProperty  ErrorCode = "MODULE_PROPERTY"
	ErrModuleContract  ErrorCode = "MODULE_CONTRACT"
	ErrPatternInvalid  ErrorCode = "PATTERN_INVALID"
	ErrSuppressionLoad ErrorCode = "SUPPRESSION_LOAD"
	ErrSuppressionXML  ErrorCode = "SUPPRESSION_XML"
)

// RulesetError is an error with a stable code, optional structured details
// and an optional cause.
type RulesetError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	Wrapped error
}

func (e *RulesetError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *RulesetError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a RulesetError with the same code.
func (e *RulesetError) Is(target error) bool {
	var other *RulesetError
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// MarshalZerologObject lets loggers attach the error with .Object("error", err).
func (e *RulesetError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("code", string(e.Code)).Str("message", e.Message)

	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		ev.Interface(k, e.Details[k])
	}

	if e.Wrapped != nil {
		ev.AnErr("cause", e.Wrapped)
	}
}

// New creates an error with the given code and message.
func New(code ErrorCode, message string) *RulesetError {
	return &RulesetError{Code: code, Message: message, Details: map[string]any{}}
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *RulesetError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches a code and message to err. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *RulesetError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *RulesetError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail records a structured detail and returns the receiver.
func (e *RulesetError) WithDetail(key string, value any) *RulesetError {
	if e.Details == nil {
		e.Details = map[string]any{}
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if any error in the chain carries code.
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}

// GetErrorCode returns the outermost code in the chain, or ErrUnknown.
func GetErrorCode(err error) ErrorCode {
	var re *RulesetError
	if errors.As(err, &re) {
		return re.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the outermost details in the chain, or nil.
func GetErrorDetails(err error) map[string]any {
	var re *RulesetError
	if errors.As(err, &re) {
		return re.Details
	}
	return nil
}

// As is errors.As from the standard library, re-exported so callers need
// only one errors import.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is is errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
