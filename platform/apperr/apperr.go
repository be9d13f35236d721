// Package apperr provides standardized domain error types for the application.
// The lookup pipeline returns these typed errors as data, and the HTTP layer
// maps them to the wire error labels.
package apperr

import "fmt"

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindInvalidFormat indicates unparseable or structurally malformed input.
	KindInvalidFormat
	// KindUnrecognizedCountry indicates the number parsed but its calling code is zero.
	KindUnrecognizedCountry
	// KindTooShort indicates a national number implausibly short, pre- or post-parse.
	KindTooShort
	// KindEmergency indicates the input matches a known emergency short code.
	KindEmergency
	// KindInternal indicates an unexpected fault inside the pipeline itself.
	KindInternal
)

// Label returns the wire-facing error label for this kind.
func (k Kind) Label() string {
	switch k {
	case KindInvalidFormat:
		return "Invalid phone number format"
	case KindUnrecognizedCountry:
		return "Unrecognized country code"
	case KindTooShort:
		return "Phone number too short"
	case KindEmergency:
		return "Emergency number"
	case KindInternal:
		return "Server error processing phone number"
	default:
		return "Unable to process phone number"
	}
}

// Error is a domain error with a typed Kind for wire mapping.
type Error struct {
	Kind    Kind
	Message string
	Op      string // Operation that failed (optional)
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp returns the error with the operation set.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// Convenience constructors for the pipeline error taxonomy.

// InvalidFormat creates an invalid-format error.
func InvalidFormat(message string) *Error {
	return New(KindInvalidFormat, message)
}

// UnrecognizedCountry creates an unrecognized-country-code error.
func UnrecognizedCountry(message string) *Error {
	return New(KindUnrecognizedCountry, message)
}

// TooShort creates a too-short error.
func TooShort(message string) *Error {
	return New(KindTooShort, message)
}

// Emergency creates an emergency-number error.
func Emergency(message string) *Error {
	return New(KindEmergency, message)
}

// Internal creates an internal server error.
func Internal(message string) *Error {
	return New(KindInternal, message)
}

// GetKind extracts the error kind from an error.
// Returns KindUnknown if the error is not an *Error.
func GetKind(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindUnknown
}

// Is checks if err is an *Error with the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}
