package service

import "errors"

// Kind classifies a service failure independently of transport.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindUnauthorized
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is a failure whose Message is safe to show to API clients.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// invalidInput builds a KindInvalidInput error with a specific message.
func invalidInput(message string) error {
	return newError(KindInvalidInput, message)
}

var (
	ErrInvalidInput         = newError(KindInvalidInput, "Invalid input")
	ErrAuthFailed           = newError(KindUnauthorized, "Authentication failed")
	ErrDuplicateEmail       = newError(KindConflict, "Email already registered")
	ErrUserNotFound         = newError(KindNotFound, "User not found")
	ErrOrganizationNotFound = newError(KindNotFound, "Organization not found")
	ErrOrganizationExists   = newError(KindConflict, "Organization already exists")
	ErrOrganizationNameBusy = newError(KindConflict, "Organization name is already in use, please try again")
	ErrTourNotFound         = newError(KindNotFound, "Tour not found")
	ErrTourExists           = newError(KindConflict, "Tour already exists")
)

// KindOf reports the kind of err. Errors not produced by this package are
// KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client-safe message for err, or "" if err carries none.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
