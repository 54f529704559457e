package carddb

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("spending profile not found")
	ErrCardNotFound       = errors.New("credit card not found")
	ErrComparisonNotFound = errors.New("comparison not found")
)
