package shared

// Domain error codes. The HTTP layer maps them onto its ERR_* codes.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
)

// DomainError is an expected failure with a stable code and a message safe to show clients
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// NewValidationError reports input the domain rejects
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// ErrNotFound is returned by repositories for missing or hidden rows
var ErrNotFound = NewDomainError(CodeNotFound, "Resource not found")
