package gateway

import "errors"

// ErrNotFound is returned by FindByID when no aggregate has the given id.
var ErrNotFound = errors.New("not found")
