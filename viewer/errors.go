package viewer

import "errors"

var (
	ErrNoGraphicsContext = errors.New("viewer: no graphics context attached to camera")
	ErrInvalidContext    = errors.New("viewer: graphics context is not valid")
	ErrRealizeFailed     = errors.New("viewer: could not realize graphics context")
	ErrNotRealized       = errors.New("viewer: viewer has not been realized")
	ErrMakeCurrentFailed = errors.New("viewer: could not make graphics context current")
	ErrSceneNotDefined   = errors.New("viewer: no scene data defined")
)
