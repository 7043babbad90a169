package breadcrumb

import "errors"

var (
	ErrMissingSessionID = errors.New("session id is required")
	ErrMissingPath      = errors.New("path is required")
)
