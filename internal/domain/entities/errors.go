package entities

import "errors"

var (
	// ErrInvocation is returned when the command line has the wrong shape.
	ErrInvocation = errors.New("invalid invocation")

	// ErrManifestUnreadable is returned when a manifest cannot be opened.
	ErrManifestUnreadable = errors.New("manifest cannot be read")

	// ErrManifestEmpty is returned when a manifest has no content at all.
	ErrManifestEmpty = errors.New("manifest is empty")
)
