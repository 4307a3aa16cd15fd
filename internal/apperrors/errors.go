package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrTokenExpired indicates a token whose signature checks out but whose expiry has passed.
var ErrTokenExpired = errors.New("token has expired")

// ErrTokenInvalid indicates a token that is malformed or fails signature verification.
var ErrTokenInvalid = errors.New("token is invalid")
