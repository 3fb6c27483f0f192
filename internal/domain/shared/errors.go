// Package shared contains the error taxonomy used across all domain packages.
// This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base error kinds that can be used for error checking with errors.Is().
var (
	// Input errors
	ErrInvalidCommandFormat = errors.New("invalid command format")
	ErrParse                = errors.New("parse error")
	ErrInvalidFormat        = errors.New("invalid format")

	// Lookup errors
	ErrInvalidIndex     = errors.New("invalid index")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrEntityNotFound   = errors.New("entity not found")
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// Integrity errors
	ErrDuplicateEntity = errors.New("duplicate entity")
	ErrNullArgument    = errors.New("null argument")
	ErrIllegalValue    = errors.New("illegal value")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "person", "group", "addressbook"
	Op      string // Operation that failed, e.g., "Add", "MarkAttendance"
	Kind    error  // Base error kind for errors.Is() checking
	Message string // Human-readable message shown to the user
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Address book errors
var (
	ErrDuplicatePerson = NewDomainError("addressbook", "Add", ErrDuplicateEntity, "This person already exists in the address book")
	ErrDuplicateGroup  = NewDomainError("addressbook", "Add", ErrDuplicateEntity, "This group already exists in the address book")
	ErrPersonNotFound  = NewDomainError("addressbook", "Find", ErrEntityNotFound, "The person does not exist in the address book")
	ErrGroupNotFound   = NewDomainError("addressbook", "Find", ErrEntityNotFound, "The group does not exist in the address book")
	ErrNilPerson       = NewDomainError("addressbook", "Check", ErrNullArgument, "person must not be nil")
	ErrNilGroup        = NewDomainError("addressbook", "Check", ErrNullArgument, "group must not be nil")
	ErrNilSnapshot     = NewDomainError("addressbook", "ResetData", ErrNullArgument, "snapshot must not be nil")
)

// Message returns the human-readable part of err: the Message of the outermost
// DomainError when there is one, err.Error() otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEntityNotFound)
}

// IsDuplicate checks if the error is a uniqueness violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateEntity)
}

// IsUserInput checks if the error was caused by malformed user input.
func IsUserInput(err error) bool {
	return errors.Is(err, ErrInvalidCommandFormat) ||
		errors.Is(err, ErrParse) ||
		errors.Is(err, ErrInvalidFormat)
}
