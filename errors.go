package replex

import "errors"

// Configuration errors. They are returned before any state is changed.
var (
	ErrNegativeZIndex       = errors.New("replex: negative z-index")
	ErrInvalidCommand       = errors.New("replex: invalid draw command")
	ErrNoContents           = errors.New("replex: scroll box needs at least one content")
	ErrNoItems              = errors.New("replex: dropdown needs at least one item")
	ErrInvalidElementHeight = errors.New("replex: element height must be positive")
	ErrInvalidRange         = errors.New("replex: slider max must be greater than min")
	ErrNoWindow             = errors.New("replex: window size not configured")
	ErrNoScene              = errors.New("replex: no scene to run")
)

// ErrIndexOutOfRange is wrapped with the offending index when a content or
// item is addressed outside current bounds.
var ErrIndexOutOfRange = errors.New("index out of range")
