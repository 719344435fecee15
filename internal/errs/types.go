package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// NotFoundError: delete of a nonexistent transaction or budget.
type NotFoundError struct {
	ErrorMessage
}

// AlreadyExistsError: registration against an email already present.
type AlreadyExistsError struct {
	ErrorMessage
}

// ValidationError: missing or malformed field on a transaction or budget.
type ValidationError struct {
	ErrorMessage
}

// UnauthorizedError: credential mismatch or missing/unknown session token.
type UnauthorizedError struct {
	ErrorMessage
}

// DatabaseError wraps a storage-layer failure with the operation that hit it.
type DatabaseError struct {
	ErrorMessage
	Operation string
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewAlreadyExistsError(message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewDatabaseError(operation, message string) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
	}
}
