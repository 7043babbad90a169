package calendar

import "errors"

var (
	ErrInvalidMonth  = errors.New("month must be between 0 and 11")
	ErrInvalidYear   = errors.New("year must be between 1 and 9999")
	ErrInvalidAnchor = errors.New("invalid calendar anchor")
)
