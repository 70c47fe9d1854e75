package launchpad

import "errors"

var (
	// ErrInvalidArgument reports an out-of-range or malformed input to a
	// command. Nothing is sent to the device when it is returned.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidButton reports a name that resolves to no known button.
	ErrInvalidButton = errors.New("unknown button")

	// ErrInvalidColor reports a color that is not a palette entry.
	ErrInvalidColor = errors.New("unknown color")
)
