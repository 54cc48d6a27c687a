package cycle

import "errors"

// ErrInvalidParameter indicates a Params field outside its physical domain.
// The evaluators fail fast on it rather than clamping inputs.
var ErrInvalidParameter = errors.New("cycle: invalid parameter")
