package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrValidation = errors.New("validation failed")
var ErrTransport = errors.New("remote banking service failure")
var ErrDuplicateID = errors.New("Duplicate id")
var ErrAccountNotFound = errors.New("Account not found")
var ErrInvalidAmount = errors.New("Invalid amount")
var ErrInvalidAccount = errors.New("Invalid account")
var ErrInsufficientBalance = errors.New("Insufficient balance")

// ValidationError is bad local input. It never reaches the network.
type ValidationError struct {
	Problems []string
	Cause    error
}

func NewValidationError(cause error, problems ...string) *ValidationError {
	return &ValidationError{Problems: problems, Cause: cause}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return e.Cause }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// TransportError is a failed round trip to the remote banking service:
// either the request never completed or the response was not the expected
// status. Message holds the reason supplied by the server, if any, and is
// safe to show to the user.
type TransportError struct {
	Operation  string
	StatusCode int
	Message    string
	Cause      error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	b.WriteString(e.Operation)
	if b.Len() == 0 {
		b.WriteString("remote call")
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *TransportError) Unwrap() error { return e.Cause }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }
