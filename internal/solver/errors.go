package solver

import "errors"

var (
	ErrNoSeats       = errors.New("no seats observed")
	ErrBadCounts     = errors.New("category counts must be non-negative")
	ErrCountMismatch = errors.New("category counts do not sum to the number of seats")
	ErrDeckShort     = errors.New("deck cannot supply the requested category counts")
	ErrUnsupported   = errors.New("observation uses a role or statement with no evaluation rule")
)
