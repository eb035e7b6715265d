package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// Cross-tenant access is deliberately reported as this error so a response
// never confirms that another company's data exists.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks permission for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrCorruptData indicates a stored JSON document could not be decoded.
var ErrCorruptData = errors.New("corrupted stored data")

// ErrImmutable indicates a write was attempted against a canceled note.
var ErrImmutable = errors.New("transaction is canceled and immutable")
