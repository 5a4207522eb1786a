package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error for transport mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
)

// Error is a domain error carrying a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// BadRequest builds a request-level validation error.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// BadRequestf builds a request-level validation error with formatting.
func BadRequestf(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a missing-resource error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NotFoundf builds a missing-resource error with formatting.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// IsBadRequest reports whether err carries the BadRequest kind.
func IsBadRequest(err error) bool {
	return kindOf(err) == KindBadRequest
}

// IsNotFound reports whether err carries the NotFound kind.
func IsNotFound(err error) bool {
	return kindOf(err) == KindNotFound
}

func kindOf(err error) Kind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindInternal
}
