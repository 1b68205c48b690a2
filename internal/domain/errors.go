// internal/domain/errors.go
package domain

import "errors"

// ErrInvalidInput is returned when the repository argument is missing or
// is not of the form owner/name.
var ErrInvalidInput = errors.New("invalid input")

// ErrPathConflict is returned when the target path exists but is not a
// directory, or cannot be inspected at all.
var ErrPathConflict = errors.New("path conflict")

// ErrExternalTool is returned when git could not be launched or exited
// with a non-zero status. Callers can check for it using errors.Is.
var ErrExternalTool = errors.New("git command failed")
