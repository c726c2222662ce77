package header

import "github.com/ghettovoice/hdrkit/internal/errorutil"

// Error is a header error.
type Error = errorutil.Error

const (
	// ErrInvalidArgument is returned when an input cannot be used at all.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrNotFound is returned when no type in a hierarchy matches a header name.
	ErrNotFound = errorutil.ErrNotFound
)
