package ledger

import (
	"github.com/iov-one/weave/errors"
)

// Error codes 1130-1139 are reserved for this package.
var (
	ErrOnlyOrchestrator = errors.Register(1130, "only the orchestrator")
	ErrDepositNotActive = errors.Register(1131, "deposit not active")
)
