package ports

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidSalt       = errors.New("invalid salt")
	ErrUnsupportedScheme = errors.New("unsupported scheme")
)
