package nav

import "errors"

var (
	// Table construction errors
	ErrInvalidPath   = errors.New("invalid route path")
	ErrDuplicatePath = errors.New("duplicate route path")
	ErrDuplicateName = errors.New("duplicate route name")
	ErrNilComponent  = errors.New("route has neither component nor children")

	// Resolution errors
	ErrNotFound     = errors.New("no route matches path")
	ErrUnknownName  = errors.New("no route with that name")
	ErrMissingParam = errors.New("missing route parameter")

	// Navigation errors
	ErrLoadFailed = errors.New("component load failed")
	ErrNilView    = errors.New("component loaded a nil value")
	ErrSuperseded = errors.New("navigation superseded by a newer one")
	ErrNoHistory  = errors.New("no history entry in that direction")
)
