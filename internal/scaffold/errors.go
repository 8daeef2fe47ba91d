package scaffold

import "errors"

var (
	// ErrMissingArgument is returned when no class name was supplied.
	ErrMissingArgument = errors.New("missing class name")

	// ErrInvalidName is returned when a class name cannot be used as both a
	// C++ identifier and a file name fragment.
	ErrInvalidName = errors.New("invalid class name")

	// ErrExists is returned in no-clobber mode when a target file is present.
	ErrExists = errors.New("file already exists")
)
