package usecase

import "fmt"

// Error codes for expected rejection outcomes. The transport layer maps
// these to status codes; the core never maps to HTTP itself.
const (
	CodeMissingField     = "MISSING_FIELD"
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeConflict         = "CONFLICT"
	CodeNotFound         = "NOT_FOUND"
)

// DomainError is an expected business rejection. Every instance names
// the rule that failed so the caller can correct and retry.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an unexpected infrastructure failure (store
// unavailable, broker down). It is never caused by caller input.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

func errMissingField(field string) *DomainError {
	return &DomainError{Code: CodeMissingField, Message: field + " is required"}
}

func errInvalidValue(field, detail string) *DomainError {
	return &DomainError{Code: CodeMissingField, Message: fmt.Sprintf("%s %s", field, detail)}
}

func errInvalidReference(field, id string) *DomainError {
	return &DomainError{Code: CodeInvalidReference, Message: fmt.Sprintf("%s %q does not resolve to an existing record", field, id)}
}

func errConflict(message string) *DomainError {
	return &DomainError{Code: CodeConflict, Message: message}
}

func errNotFound(kind, id string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: fmt.Sprintf("%s %q not found", kind, id)}
}

func errStore(op string, cause error) *TechnicalError {
	return &TechnicalError{Code: "STORE_ERROR", Message: op + ": " + cause.Error()}
}
