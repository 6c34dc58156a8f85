package memory

import "errors"

// Sentinel errors for the failure kinds named in the error-handling design:
// every fallible data-path method keeps returning a plain bool, but the
// reason for a false is always recorded and retrievable through
// Memory.LastError immediately after the call.
var (
	ErrOutOfBounds = errors.New("memory: access extends beyond address space")
	ErrUnmapped    = errors.New("memory: target page has no attributes set")
	ErrPermission  = errors.New("memory: required access attribute missing")
	ErrStraddle    = errors.New("memory: access straddles pages of differing attribute")
	ErrBadMMR      = errors.New("memory: non-word width or alignment on MMR access")
	ErrConfig      = errors.New("memory: configuration error")
	ErrLoader      = errors.New("memory: image loader error")
)
