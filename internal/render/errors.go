package render

import "errors"

// ErrAsset reports a missing or corrupt embedded template or font.
var ErrAsset = errors.New("render asset invalid")
