package services

import "factionhq/quartermaster/internal/constants"

// DomainError carries a machine-readable code for sync and membership
// failures, mapped to HTTP statuses at the handler layer.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a DomainError with the standard message for a code.
func NewDomainError(code string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: constants.GetErrorMessage(code),
	}
}
