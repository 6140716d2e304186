package service

import (
	"errors"
	"fmt"
)

// Pipeline stages, in the order they can fail.
const (
	StageIdentity = "identity"
	StageProfile  = "profile"
	StageWeight   = "weight"
	StageAvatar   = "avatar"
)

// ErrMissingDependency is returned by New when a source or the renderer is not set.
var ErrMissingDependency = errors.New("service dependency missing")

// StageError tags a pipeline failure with the stage that produced it.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Stage returns the failing stage of err, or "" if err carries none.
func Stage(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
