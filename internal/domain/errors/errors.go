package errors

import (
	"errors"
	"fmt"
)

// ErrorType denotes the kind of a domain error
type ErrorType string

const (
	// ErrorTypeValidation denotes a validation failure
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeNotFound denotes a missing resource
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeSystem denotes a system-level failure
	ErrorTypeSystem ErrorType = "SYSTEM"

	// ErrorTypeNetwork denotes a network operation failure
	ErrorTypeNetwork ErrorType = "NETWORK"

	// ErrorTypeTimeout denotes an expired command deadline
	ErrorTypeTimeout ErrorType = "TIMEOUT"

	// ErrorTypePrivilege denotes insufficient privilege to operate
	ErrorTypePrivilege ErrorType = "PRIVILEGE"

	// ErrorTypeDependency denotes a missing external tool
	ErrorTypeDependency ErrorType = "DEPENDENCY"

	// ErrorTypeInput denotes invalid interactive input
	ErrorTypeInput ErrorType = "INPUT"
)

// DomainError is an error carrying a domain-level classification
type DomainError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped cause
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is compares errors by domain type
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewValidationError creates a validation error
func NewValidationError(message string, cause error) *DomainError {
	return &DomainError{Type: ErrorTypeValidation, Message: message, Cause: cause}
}

// NewNotFoundError creates a missing-resource error
func NewNotFoundError(message string) *DomainError {
	return &DomainError{Type: ErrorTypeNotFound, Message: message}
}

// NewSystemError creates a system error
func NewSystemError(message string, cause error) *DomainError {
	return &DomainError{Type: ErrorTypeSystem, Message: message, Cause: cause}
}

// NewNetworkError creates a network operation error
func NewNetworkError(message string, cause error) *DomainError {
	return &DomainError{Type: ErrorTypeNetwork, Message: message, Cause: cause}
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(message string) *DomainError {
	return &DomainError{Type: ErrorTypeTimeout, Message: message}
}

// NewPrivilegeError creates an insufficient-privilege error
func NewPrivilegeError(message string) *DomainError {
	return &DomainError{Type: ErrorTypePrivilege, Message: message}
}

// NewDependencyError creates a missing-tool error
func NewDependencyError(message string, cause error) *DomainError {
	return &DomainError{Type: ErrorTypeDependency, Message: message, Cause: cause}
}

// NewInputError creates an invalid-input error
func NewInputError(message string) *DomainError {
	return &DomainError{Type: ErrorTypeInput, Message: message}
}

// IsValidationError reports whether err is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsNotFoundError reports whether err is a missing-resource error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsSystemError reports whether err is a system error
func IsSystemError(err error) bool {
	return isType(err, ErrorTypeSystem)
}

// IsNetworkError reports whether err is a network error
func IsNetworkError(err error) bool {
	return isType(err, ErrorTypeNetwork)
}

// IsTimeoutError reports whether err is a timeout error
func IsTimeoutError(err error) bool {
	return isType(err, ErrorTypeTimeout)
}

// IsPrivilegeError reports whether err is a privilege error
func IsPrivilegeError(err error) bool {
	return isType(err, ErrorTypePrivilege)
}

// IsDependencyError reports whether err is a missing-tool error
func IsDependencyError(err error) bool {
	return isType(err, ErrorTypeDependency)
}

// IsInputError reports whether err is an invalid-input error
func IsInputError(err error) bool {
	return isType(err, ErrorTypeInput)
}

func isType(err error, t ErrorType) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == t
	}
	return false
}
