package scheduling

import "errors"

// ErrUnschedulable is returned when the spec carries no positive execution
// duration or no usable resource record exists. Callers surface it as an
// empty result, not a server error.
var ErrUnschedulable = errors.New("unschedulable: missing execution duration or no usable resource")
