package isolator

import "errors"

// ErrNoWitness is returned if the blocked bicomp's pertinent state could
// not be found — a blocked Walkdown always leaves one, so this signals an
// internal invariant violation rather than a normal input error.
var ErrNoWitness = errors.New("isolator: no pertinent witness found in blocked bicomp")
