package jordan

import "errors"

// ErrNotNilpotent is returned when the kernel chain of the operator stops
// growing before it covers the whole space.
var ErrNotNilpotent = errors.New("jordan: operator is not nilpotent")
