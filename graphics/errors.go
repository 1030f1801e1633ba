package graphics

import "errors"

var (
	ErrContextCreationFailed = errors.New("graphics: could not create graphics context")
	ErrInvalidTraits         = errors.New("graphics: invalid context traits")
	ErrNoMatchingConfig      = errors.New("graphics: no config matches the requested traits")
)
