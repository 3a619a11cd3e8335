package apperror

import "errors"

var (
	ErrInputClosed       = errors.New("input closed before a move was supplied")
	ErrUnknownPlayerKind = errors.New("unknown player kind")
)
