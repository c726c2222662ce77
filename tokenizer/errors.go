package tokenizer

import "github.com/ghettovoice/hdrkit/internal/errorutil"

// Error is a tokenizer error.
type Error = errorutil.Error

// ErrInvalidArgument is returned when the delimiter is not a single
// character or is a double quote.
const ErrInvalidArgument = errorutil.ErrInvalidArgument
