package gradient

import "errors"

var (
	// ErrInvalidConfiguration indicates a degenerate range or stop list at initialization.
	ErrInvalidConfiguration = errors.New("invalid gradient configuration")

	// ErrNotInitialized indicates a query on a gradient that was never initialized.
	ErrNotInitialized = errors.New("gradient not initialized")
)
