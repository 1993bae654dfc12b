package rewards

import "errors"

// Service errors
var (
	// ErrMatrixUnavailable signals that the rewards dataset could not be
	// fetched or parsed. Recoverable: the next request retries the load.
	ErrMatrixUnavailable = errors.New("rewards matrix unavailable")
)
