package turtle

import "errors"

var (
	// ErrSurfaceUnavailable is returned by New when the surface is nil or
	// has already been closed.
	ErrSurfaceUnavailable = errors.New("turtle: surface unavailable")

	// ErrInvalidColor is returned by ParseColor for unrecognized input.
	ErrInvalidColor = errors.New("turtle: invalid color")

	// ErrUnknownCommand is returned by Exec for names that are neither a
	// command nor an alias.
	ErrUnknownCommand = errors.New("turtle: unknown command")

	// ErrBadArgs is returned by Exec when the arguments do not fit the
	// command.
	ErrBadArgs = errors.New("turtle: bad arguments")
)
