package usecase

// DomainError is a business-rule failure the caller can act on.
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

// TechnicalError is an infrastructure failure (storage, encoding) surfaced
// to the caller instead of being swallowed.
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

const (
	CodeNotFound     = "PROSPECT_NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeStorageError = "STORAGE_ERROR"
)

func notFound(id string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: "prospect not found: " + id}
}

// IsNotFound distinguishes missing-identifier failures from everything else;
// per-id operations signal them distinctly instead of a generic error.
func IsNotFound(err error) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == CodeNotFound
}
