package domain

import "errors"

var (
	ErrNegativeInput = errors.New("Negative number is not allowed")
	ErrUnknownDay    = errors.New("unknown day")
	ErrUnknownValue  = errors.New("unknown value variant")
)
