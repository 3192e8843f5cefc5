package vault

import (
	"github.com/iov-one/weave/errors"
)

// Error codes 1110-1119 are reserved for this package.
var (
	ErrOnlyOrchestrator    = errors.Register(1110, "sender is not the orchestrator")
	ErrPaused              = errors.Register(1111, "vault is paused")
	ErrInsufficientBalance = errors.Register(1112, "insufficient tracked principal")
)
