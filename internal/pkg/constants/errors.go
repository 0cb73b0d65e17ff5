package constants

import (
	"errors"
	"net/http"
)

// CodedError is an error that carries the HTTP status it should be reported with.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound   = NewCodedError("not found", http.StatusNotFound)
	ErrUnauthorized = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrForbidden    = NewCodedError("operation disabled in this environment", http.StatusForbidden)
	ErrBadRequest   = NewCodedError("invalid request", http.StatusBadRequest)
	ErrInvalidID    = NewCodedError("invalid id", http.StatusBadRequest)

	ErrMissingCategoryFields = NewCodedError("Missing code or kind", http.StatusBadRequest)
	ErrInvalidCategoryKind   = NewCodedError("kind must be Use or Source", http.StatusBadRequest)
	ErrCategoryCodeTaken     = NewCodedError("category code already exists", http.StatusConflict)
	ErrCategoryInUse         = NewCodedError("delete failed, in use?", http.StatusConflict)

	ErrMissingLineScope  = NewCodedError("Missing budget_id, pe_level, or pe_id", http.StatusBadRequest)
	ErrMissingLineFields = NewCodedError("Missing required fields", http.StatusBadRequest)

	ErrMissingVendor     = NewCodedError("party_id or vendor_name required", http.StatusBadRequest)
	ErrMissingPartyID    = NewCodedError("party_id required", http.StatusBadRequest)
	ErrMissingVendorName = NewCodedError("name required", http.StatusBadRequest)

	ErrMissingBudgetName = NewCodedError("name required", http.StatusBadRequest)
)

// Driver level errors carry no status. The service decides per operation
// whether a violation is a conflict or an unexpected failure.
var (
	ErrDBForeignKey       = errors.New("foreign key violation")
	ErrDBUniqueViolation  = errors.New("unique violation")
	ErrDBUndefinedObject  = errors.New("undefined relation")
	ErrDBCheckViolation   = errors.New("check violation")
	ErrDBNotNullViolation = errors.New("not null violation")
)
