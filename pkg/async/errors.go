package async

import "errors"

// ErrTimeout is returned when AwaitWithTimeout exceeds its duration.
var ErrTimeout = errors.New("async: operation timed out")
