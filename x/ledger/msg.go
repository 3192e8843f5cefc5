package ledger

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &TransferDepositMsg{}, migration.NoModification)
	migration.MustRegister(1, &ApproveTransferMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*TransferDepositMsg)(nil)

func (TransferDepositMsg) Path() string {
	return "ledger/transfer_deposit"
}

func (m *TransferDepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.DepositId < 1 {
		errs = errors.AppendField(errs, "DepositId", errors.Wrap(errors.ErrInput, "must be a positive sequence value"))
	}
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	return errs
}

var _ weave.Msg = (*ApproveTransferMsg)(nil)

func (ApproveTransferMsg) Path() string {
	return "ledger/approve_transfer"
}

func (m *ApproveTransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.DepositId < 1 {
		errs = errors.AppendField(errs, "DepositId", errors.Wrap(errors.ErrInput, "must be a positive sequence value"))
	}
	// An empty approved address revokes any previous approval.
	if len(m.Approved) != 0 {
		errs = errors.AppendField(errs, "Approved", m.Approved.Validate())
	}
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "ledger/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	return errs
}
