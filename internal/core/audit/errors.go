package audit

import "errors"

var (
	ErrAccessDenied = errors.New("audit: access denied")
	ErrInvalidKind  = errors.New("audit: invalid kind")
	ErrInvalidEvent = errors.New("audit: invalid event")
)
