package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates bad credentials, a reset-token mismatch, or an
// email mismatch on a credential-recovery request.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidToken indicates a malformed, unsigned or expired session token.
var ErrInvalidToken = errors.New("invalid token")

// ErrDependency indicates that an external collaborator (store, mail
// transport) failed while handling an otherwise valid request.
var ErrDependency = errors.New("dependency failure")
