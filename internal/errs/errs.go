// Package errs defines sentinel errors shared across the project.
package errs

import "errors"

var (
	ErrPackageNotFound     = errors.New("package not found")
	ErrAnalysisNotFound    = errors.New("analysis not found")
	ErrInvalidPropertyType = errors.New("invalid property type")
	ErrValidationFailed    = errors.New("required field validation failed")
)
