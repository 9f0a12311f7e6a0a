package core

import "errors"

// ErrZeroVector is returned when a direction would have zero length
var ErrZeroVector = errors.New("zero vector")
