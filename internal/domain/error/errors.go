package error

import (
	"errors"
	"fmt"
)

// Kind classifies a business failure so the API layer can pick the right
// HTTP status without inspecting message text.
type Kind int

const (
	// KindValidation for missing/malformed input
	KindValidation Kind = iota
	// KindNotFound for references to records that do not exist
	KindNotFound
	// KindConflict for duplicate email and credential mismatches
	KindConflict
	// KindUnauthorized for missing or invalid bearer tokens
	KindUnauthorized
	// KindUpstream for store or mailer failures
	KindUpstream
)

// Error is the only error type the domain raises. It carries a closed kind
// and the exact message shown to the caller.
type Error struct {
	kind    Kind
	message string
	cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.message
}

// Unwrap exposes the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the classification of this error
func (e *Error) Kind() Kind {
	return e.kind
}

// Validation creates a validation error with the given user-facing message
func Validation(message string) *Error {
	return &Error{kind: KindValidation, message: message}
}

// NotFound creates a not-found error with the given user-facing message
func NotFound(message string) *Error {
	return &Error{kind: KindNotFound, message: message}
}

// Conflict creates a conflict error with the given user-facing message
func Conflict(message string) *Error {
	return &Error{kind: KindConflict, message: message}
}

// Unauthorized creates an authentication error
func Unauthorized(message string) *Error {
	return &Error{kind: KindUnauthorized, message: message}
}

// Upstream wraps a store/mailer failure. The cause is kept for logging but
// never rendered to the caller.
func Upstream(message string, cause error) *Error {
	return &Error{kind: KindUpstream, message: message, cause: cause}
}

// Wrap attaches a cause to a copy of a sentinel error so call sites can add
// context while errors.Is against the sentinel keeps working.
func Wrap(sentinel *Error, cause error) *Error {
	return &Error{kind: sentinel.kind, message: sentinel.message, cause: fmt.Errorf("%w: %w", sentinel, cause)}
}

// KindOf extracts the kind from any error in the chain. The second return
// value reports whether a domain error was found at all.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.kind, true
	}
	return 0, false
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// Sentinel errors for every business failure. Message strings are part of
// the API contract and asserted by tests.
var (
	// Transaction validation
	ErrAmountRequired        = Validation("Amount is required!")
	ErrRemarksRequired       = Validation("Remarks is required!")
	ErrRemarksTooShort       = Validation("Remarks must be at least 5 characters long!")
	ErrAmountNotNumeric      = Validation("Amount must be a valid number.")
	ErrAmountNegative        = Validation("Amount must not be negative")
	ErrTransactionIDRequired = Validation("Transaction id is required!")
	ErrInvalidID             = Validation("Please provide a valid id!")
	ErrTransactionNotFound   = NotFound("Transaction not found!")

	// Registration
	ErrEmailMustBeProvided    = Validation("Email must be provided!")
	ErrPasswordMustBeProvided = Validation("Password must be provided!")
	ErrPasswordTooShort       = Validation("Password must be at least 5 characters long.")
	ErrPasswordConfirmMismatch = Validation("Password and confirmed password doesnot match!")
	ErrNameRequired           = Validation("Name is required")
	ErrInvalidEmail           = Validation("Please provide a valid email address!")
	ErrEmailTaken             = Conflict("This email already exists!")

	// Login
	ErrEmailNotFound      = Conflict("This email doesnot exist in the system!")
	ErrCredentialMismatch = Conflict("Email and password do not match!")

	// Password reset
	ErrEmailRequired        = Validation("Email is required!")
	ErrResetEmailRequired   = Validation("Email is required")
	ErrNewPasswordRequired  = Validation("Please provide new password!")
	ErrResetCodeRequired    = Validation("Reset code is required!")
	ErrNewPasswordTooShort  = Validation("Password must be at least 5 characters long!")
	ErrResetCodeMismatch    = NotFound("Reset code does not match!")

	// Session gate
	ErrUnauthorized = Unauthorized("Unauthorized!")

	// Users
	ErrUserNotFound = NotFound("User not found!")
)
