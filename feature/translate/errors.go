package translate

import (
	"cs2-localizer/core/dataset"
	"cs2-localizer/core/jsonio"
)

// Failure classes reported by runs. Check them with errors.Is.
var (
	ErrDatasetUnavailable = dataset.ErrUnavailable
	ErrInputMissing       = jsonio.ErrInputMissing
	ErrMalformedInput     = jsonio.ErrMalformedInput
)
