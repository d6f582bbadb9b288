// Package common defines shared constants and sentinel errors used across
// the service layers of FileHub. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exist")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration validation errors.
	ErrorMissingEmail    = errors.New("missing email")
	ErrorMissingPassword = errors.New("missing password")

	// Upload validation errors, in the order they are checked.
	ErrorMissingName     = errors.New("missing name")
	ErrorMissingType     = errors.New("missing type")
	ErrorMissingData     = errors.New("missing data")
	ErrorParentNotFound  = errors.New("parent not found")
	ErrorParentNotFolder = errors.New("parent is not a folder")

	// File lookup / content errors.
	ErrorInvalidID = errors.New("invalid file id")
	ErrorNotAFile  = errors.New("a folder doesn't have content")
)
