package plan

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreatePlanMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdatePlanMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*CreatePlanMsg)(nil)

func (CreatePlanMsg) Path() string {
	return "plan/create_plan"
}

func (m *CreatePlanMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = validateTerms(errs, m.TenorSeconds, m.AprBps, m.MinDeposit, m.MaxDeposit, m.PenaltyBps)
	return errs
}

var _ weave.Msg = (*UpdatePlanMsg)(nil)

func (UpdatePlanMsg) Path() string {
	return "plan/update_plan"
}

func (m *UpdatePlanMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.PlanId < 1 {
		errs = errors.AppendField(errs, "PlanId", errors.Wrap(errors.ErrInput, "must be a positive sequence value"))
	}
	if m.AprBps == 0 || m.AprBps >= 10000 {
		errs = errors.AppendField(errs, "AprBps", errors.Wrap(ErrInvalidAPR, "must be between 1 and 9999 basis points"))
	}
	if m.PenaltyBps >= 10000 {
		errs = errors.AppendField(errs, "PenaltyBps", errors.Wrap(ErrInvalidPenalty, "must be below 10000 basis points"))
	}
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "plan/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	return errs
}
