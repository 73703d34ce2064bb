package identity

import "errors"

var (
	ErrUnknownRole = errors.New("identity: unknown role")
	ErrNotLinked   = errors.New("identity: no linked person")
)
