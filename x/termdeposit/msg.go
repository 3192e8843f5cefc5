package termdeposit

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &OpenDepositMsg{}, migration.NoModification)
	migration.MustRegister(1, &WithdrawDepositMsg{}, migration.NoModification)
	migration.MustRegister(1, &EarlyWithdrawDepositMsg{}, migration.NoModification)
	migration.MustRegister(1, &RenewDepositMsg{}, migration.NoModification)
	migration.MustRegister(1, &AutoRenewDepositMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*OpenDepositMsg)(nil)

func (OpenDepositMsg) Path() string {
	return "termdeposit/open_deposit"
}

func (m *OpenDepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.PlanId < 1 {
		errs = errors.AppendField(errs, "PlanId", errors.Wrap(errors.ErrInput, "must be a positive sequence value"))
	}
	if err := m.Amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !m.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	return errs
}

var _ weave.Msg = (*WithdrawDepositMsg)(nil)

func (WithdrawDepositMsg) Path() string {
	return "termdeposit/withdraw_deposit"
}

func (m *WithdrawDepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.DepositId < 1 {
		errs = errors.AppendField(errs, "DepositId", errors.Wrap(errors.ErrInput, "must be a positive sequence value"))
	}
	return errs
}

var _ weave.Msg = (*EarlyWithdrawDepositMsg)(nil)

func (EarlyWithdrawDepositMsg) Path() string {
	return "termdeposit/early_withdraw_deposit"
}

func (m *EarlyWithdrawDepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.DepositId < 1 {
		errs = errors.AppendField(errs, "DepositId", errors.Wrap(errors.ErrInput, "must be a positive sequence value"))
	}
	return errs
}

var _ weave.Msg = (*RenewDepositMsg)(nil)

func (RenewDepositMsg) Path() string {
	return "termdeposit/renew_deposit"
}

func (m *RenewDepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.DepositId < 1 {
		errs = errors.AppendField(errs, "DepositId", errors.Wrap(errors.ErrInput, "must be a positive sequence value"))
	}
	if m.PlanId < 1 {
		errs = errors.AppendField(errs, "PlanId", errors.Wrap(errors.ErrInput, "must be a positive sequence value"))
	}
	return errs
}

var _ weave.Msg = (*AutoRenewDepositMsg)(nil)

func (AutoRenewDepositMsg) Path() string {
	return "termdeposit/auto_renew_deposit"
}

func (m *AutoRenewDepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.DepositId < 1 {
		errs = errors.AppendField(errs, "DepositId", errors.Wrap(errors.ErrInput, "must be a positive sequence value"))
	}
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "termdeposit/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	return errs
}
