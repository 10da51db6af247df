package route

import "errors"

var (
	// ErrInvalidMethod is returned when a method is not in the supported verb set.
	ErrInvalidMethod = errors.New("invalid http method")
	// ErrInvalidURI is returned when a path template fails validation.
	ErrInvalidURI = errors.New("invalid route uri")
)
