package crtavatar

import "errors"

var (
	// ErrInvalidParameter is returned for requests rejected at the entry
	// boundary: a non-positive resolution, an override key that names no
	// category, an override for a category with no registered variants, or
	// an invalid effect parameter document.
	ErrInvalidParameter = errors.New("crtavatar: invalid parameter")

	// ErrClosed is returned by a Generator after Close.
	ErrClosed = errors.New("crtavatar: generator closed")
)
