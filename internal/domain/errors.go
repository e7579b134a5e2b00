package domain

import "errors"

var (
	ErrInvalidCard     = errors.New("invalid card spec")
	ErrInvalidParams   = errors.New("invalid simulation parameters")
	ErrUnknownCard     = errors.New("unknown card id")
	ErrTallyShape      = errors.New("tally shapes differ")
	ErrCatalogNotFound = errors.New("catalog not found")
)
