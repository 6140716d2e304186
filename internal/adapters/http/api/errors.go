package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrEncode = errors.New("png encode failed")
)
