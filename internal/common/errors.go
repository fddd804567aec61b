// Package common defines sentinel errors shared across the notes service.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Image side-flow errors. A failed upload aborts the whole create.
	ErrorUpload = errors.New("image upload failed")
)
