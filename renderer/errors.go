package renderer

import "errors"

var (
	ErrInvalidOptions = errors.New("renderer: invalid frame pump options")
)
