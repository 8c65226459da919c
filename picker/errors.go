package picker

import "errors"

// ErrCancelled indicates that the user aborted the interactive selection.
var ErrCancelled = errors.New("selection cancelled")
