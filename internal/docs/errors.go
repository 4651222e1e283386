package docs

import "errors"

// ErrNoRegistry is returned by Build when no registry is supplied.
var ErrNoRegistry = errors.New("no registry to document")
