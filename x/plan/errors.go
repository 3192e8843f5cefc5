package plan

import (
	"github.com/iov-one/weave/errors"
)

// Error codes 1100-1109 are reserved for this package.
var (
	ErrInvalidTenor   = errors.Register(1100, "invalid tenor")
	ErrInvalidAPR     = errors.Register(1101, "invalid interest rate")
	ErrInvalidPenalty = errors.Register(1102, "invalid penalty rate")
	ErrPlanNotFound   = errors.Register(1103, "plan not found")
	ErrPlanNotActive  = errors.Register(1104, "plan not active")
)
