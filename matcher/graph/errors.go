package graph

import "errors"

// ErrMalformed indicates a structural invariant violation in data supplied by a collaborator
var ErrMalformed = errors.New("malformed input")
