package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Filesystem errors
var (
	// ErrNotFound indicates the requested path does not exist
	ErrNotFound = errors.New("path not found")

	// ErrNotDirectory indicates expected a directory but got a file
	ErrNotDirectory = errors.New("not a directory")

	// ErrNotFile indicates expected a file but got a directory
	ErrNotFile = errors.New("not a file")

	// ErrPermissionDenied indicates insufficient permissions
	ErrPermissionDenied = errors.New("permission denied")
)

// Config errors
var (
	// ErrConfigNotFound indicates config file not found
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigInvalid indicates config file is malformed
	ErrConfigInvalid = errors.New("invalid config")
)

// Project errors
var (
	// ErrUnknownTemplate indicates an unrecognized project template name
	ErrUnknownTemplate = errors.New("unknown project template")

	// ErrUnknownLocation indicates an unrecognized dataset location name
	ErrUnknownLocation = errors.New("unknown dataset location")
)

// RootNotFoundError reports that no usable sync root could be resolved.
// Candidates lists every path attempted, in priority order, so the caller
// can present an actionable message.
type RootNotFoundError struct {
	// Reason is a short classification: "override path missing" or
	// "no candidate found"
	Reason string

	// Override is the user-supplied path, if one was given
	Override string

	// Candidates are the paths tried, in the fixed priority order
	Candidates []string
}

func (e *RootNotFoundError) Error() string {
	if e.Override != "" {
		return fmt.Sprintf("sync root not found: %s: %s", e.Reason, e.Override)
	}
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("sync root not found: %s", e.Reason)
	}
	return fmt.Sprintf("sync root not found: %s (tried: %s)",
		e.Reason, strings.Join(e.Candidates, ", "))
}

// Is allows errors.Is(err, domain.ErrNotFound) to match locator failures
func (e *RootNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
