package schedulers

import "errors"

var (
	// ErrInvalidInput is wrapped by every validation failure. Nothing is simulated
	// when it is returned.
	ErrInvalidInput = errors.New("invalid input")
)
