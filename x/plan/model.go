package plan

import (
	"encoding/binary"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Plan{}, migration.NoModification)
}

var _ orm.Model = (*Plan)(nil)

func (m *Plan) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Id < 1 {
		errs = errors.AppendField(errs, "Id", errors.Wrap(errors.ErrInput, "must be a positive sequence value"))
	}
	errs = validateTerms(errs, m.TenorSeconds, m.AprBps, m.MinDeposit, m.MaxDeposit, m.PenaltyBps)
	return errs
}

// validateTerms checks the price and bound attributes shared by the plan
// model and the create/update messages. Zero min and max deposit coins
// mean no bound and are allowed to carry no ticker.
func validateTerms(errs error, tenorSeconds int64, aprBps uint32, minDeposit, maxDeposit coin.Coin, penaltyBps uint32) error {
	if tenorSeconds <= 0 {
		errs = errors.AppendField(errs, "TenorSeconds", errors.Wrap(ErrInvalidTenor, "must be greater than zero"))
	}
	if aprBps == 0 || aprBps >= 10000 {
		errs = errors.AppendField(errs, "AprBps", errors.Wrap(ErrInvalidAPR, "must be between 1 and 9999 basis points"))
	}
	if penaltyBps >= 10000 {
		errs = errors.AppendField(errs, "PenaltyBps", errors.Wrap(ErrInvalidPenalty, "must be below 10000 basis points"))
	}
	if !minDeposit.IsZero() {
		if err := minDeposit.Validate(); err != nil {
			errs = errors.AppendField(errs, "MinDeposit", err)
		} else if !minDeposit.IsPositive() {
			errs = errors.AppendField(errs, "MinDeposit", errors.Wrap(errors.ErrAmount, "must not be negative"))
		}
	}
	if !maxDeposit.IsZero() {
		if err := maxDeposit.Validate(); err != nil {
			errs = errors.AppendField(errs, "MaxDeposit", err)
		} else if !maxDeposit.IsPositive() {
			errs = errors.AppendField(errs, "MaxDeposit", errors.Wrap(errors.ErrAmount, "must not be negative"))
		} else if !minDeposit.IsZero() {
			if maxDeposit.Ticker != minDeposit.Ticker {
				errs = errors.AppendField(errs, "MaxDeposit", errors.Wrap(errors.ErrCurrency, "ticker differs from MinDeposit"))
			} else if maxDeposit.Compare(minDeposit) < 0 {
				errs = errors.AppendField(errs, "MaxDeposit", errors.Wrap(errors.ErrAmount, "must not be below MinDeposit"))
			}
		}
	}
	return errs
}

func NewBucket() orm.ModelBucket {
	b := orm.NewModelBucket("plan", &Plan{})
	return migration.NewModelBucket("plan", b)
}

var planSeq = orm.NewSequence("plan", "id")

func planKey(id int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))
	return key
}

// LoadPlan returns the plan registered under given id. A zero value plan
// with Id set to zero is returned when the id is unknown, so that callers
// can probe the registry without interpreting storage errors.
func LoadPlan(db weave.ReadOnlyKVStore, id int64) (Plan, error) {
	var p Plan
	switch err := NewBucket().One(db, planKey(id), &p); {
	case err == nil:
		return p, nil
	case errors.ErrNotFound.Is(err):
		return Plan{}, nil
	default:
		return Plan{}, errors.Wrap(err, "bucket one")
	}
}
