package termdeposit

import (
	"github.com/iov-one/weave/errors"
)

// Error codes 1140-1149 are reserved for this package.
var (
	ErrNotMatured    = errors.Register(1140, "deposit not matured")
	ErrGracePeriod   = errors.Register(1141, "grace period not elapsed")
	ErrDepositBounds = errors.Register(1142, "deposit amount out of plan bounds")
)
