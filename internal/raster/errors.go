package raster

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is the single failure kind reported to callers.
var ErrInvalidOperation = errors.New("invalid operation")

// Causes. Each wraps ErrInvalidOperation.
var (
	ErrInvalidArgument = fmt.Errorf("%w: invalid argument", ErrInvalidOperation)
	ErrNotFound        = fmt.Errorf("%w: not found", ErrInvalidOperation)
	ErrOutOfRange      = fmt.Errorf("%w: out of range", ErrInvalidOperation)
	ErrSizeMismatch    = fmt.Errorf("%w: size mismatch", ErrInvalidOperation)
)
