package day

import "errors"

var (
	// ErrInvalidArgument marks caller mistakes: malformed timezone names,
	// locale tags, units or unparsable input.
	ErrInvalidArgument = errors.New("day: invalid argument")

	// ErrCapabilityDisabled is returned by operations whose capability was
	// never registered on the engine.
	ErrCapabilityDisabled = errors.New("day: capability not enabled")
)
