package ledger

import (
	"encoding/binary"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Deposit{}, migration.NoModification)
}

var _ orm.Model = (*Deposit)(nil)

func (m *Deposit) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.PlanId < 1 {
		errs = errors.AppendField(errs, "PlanId", errors.Wrap(errors.ErrInput, "must be a positive sequence value"))
	}
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	if err := m.Principal.Validate(); err != nil {
		errs = errors.AppendField(errs, "Principal", err)
	} else if !m.Principal.IsPositive() {
		errs = errors.AppendField(errs, "Principal", errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	if m.StartAt <= 0 {
		errs = errors.AppendField(errs, "StartAt", errors.Wrap(errors.ErrInput, "must be set"))
	}
	if m.MaturityAt <= m.StartAt {
		errs = errors.AppendField(errs, "MaturityAt", errors.Wrap(errors.ErrInput, "must be after StartAt"))
	}
	if m.AprBps == 0 || m.AprBps >= 10000 {
		errs = errors.AppendField(errs, "AprBps", errors.Wrap(errors.ErrInput, "must be between 1 and 9999 basis points"))
	}
	if m.PenaltyBps >= 10000 {
		errs = errors.AppendField(errs, "PenaltyBps", errors.Wrap(errors.ErrInput, "must be below 10000 basis points"))
	}
	switch m.Status {
	case Deposit_Active, Deposit_Withdrawn, Deposit_ManualRenewed, Deposit_AutoRenewed:
		// All good.
	default:
		errs = errors.AppendField(errs, "Status", errors.Wrap(errors.ErrState, "invalid status"))
	}
	if len(m.Approved) != 0 {
		errs = errors.AppendField(errs, "Approved", m.Approved.Validate())
	}
	return errs
}

func NewBucket() orm.ModelBucket {
	b := orm.NewModelBucket("deposit", &Deposit{},
		orm.WithIndex("owner", idxOwner, false),
	)
	return migration.NewModelBucket("ledger", b)
}

func idxOwner(obj orm.Object) ([]byte, error) {
	d, err := getDeposit(obj)
	if err != nil {
		return nil, err
	}
	return d.Owner, nil
}

func getDeposit(obj orm.Object) (*Deposit, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	d, ok := obj.Value().(*Deposit)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of a deposit")
	}
	return d, nil
}

var depositSeq = orm.NewSequence("ledger", "id")

func depositKey(id int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))
	return key
}

// RegisterQuery expose the deposits bucket to queries.
func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("deposits", qr)
}
