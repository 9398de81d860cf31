// Package apperrors defines the error taxonomy shared by the service layer and
// the HTTP boundary. Services wrap these sentinels with fmt.Errorf("...: %w")
// and handlers map them to status codes with errors.Is.
package apperrors

import "errors"

var (
	// ErrNotFound indicates no user record exists for the given email.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a duplicate email at signup or a duplicate ticker
	// at watchlist add.
	ErrConflict = errors.New("already exists")
	// ErrUnauthorized indicates a missing or invalid credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUpstream indicates an external collaborator errored or timed out.
	ErrUpstream = errors.New("upstream failure")
	// ErrValidation indicates a missing or malformed request field.
	ErrValidation = errors.New("validation failed")
)
