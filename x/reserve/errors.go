package reserve

import (
	"github.com/iov-one/weave/errors"
)

// Error codes 1120-1129 are reserved for this package.
var (
	ErrOnlyOrchestrator    = errors.Register(1120, "sender is not the orchestrator")
	ErrPaused              = errors.Register(1121, "reserve is paused")
	ErrInsufficientBalance = errors.Register(1122, "insufficient reserve balance")
)
