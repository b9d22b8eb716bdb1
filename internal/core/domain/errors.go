package domain

import "go.trai.ch/zerr"

var (
	// ErrCompilationFailed is returned when the external compiler reports a
	// positive exit code or cannot be invoked at all. It is fatal to the
	// whole batch.
	ErrCompilationFailed = zerr.New("compilation failed")

	// ErrInvalidSettings is returned when a settings file is missing
	// required fields.
	ErrInvalidSettings = zerr.New("invalid compile settings")
)
