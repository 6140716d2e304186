package upstream

import (
	"errors"
	"fmt"
)

// Sentinel kinds for upstream errors. These allow errors.Is/As from callers.
var (
	ErrUpstream        = errors.New("upstream request failed")
	ErrUpstreamStatus  = errors.New("upstream reported status")
	ErrUpstreamFailure = errors.New("upstream reported failure")
	ErrEmptyResult     = errors.New("upstream returned no data")
	ErrDecode          = errors.New("decode failed")
)

// StatusError carries the status field of a profiles envelope that was not 200.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to get profile: %d", e.Status)
}

// Is reports StatusError as an ErrUpstreamStatus kind.
func (e *StatusError) Is(target error) bool {
	return target == ErrUpstreamStatus
}

// Kind names the sentinel kind of err for metric labels.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrUpstreamStatus):
		return "status"
	case errors.Is(err, ErrUpstreamFailure):
		return "failure"
	case errors.Is(err, ErrEmptyResult):
		return "empty"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrUpstream):
		return "request"
	default:
		return "unknown"
	}
}
