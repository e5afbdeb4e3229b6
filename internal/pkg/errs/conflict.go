package errs

import "errors"

// ErrConflict marks a write rejected by a uniqueness constraint. It is usually found inside a
// StoreFailureError.
var ErrConflict = errors.New("conflict")
