package ledger

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Controller maintains the deposit book. Minting records and moving them
// through the lifecycle is restricted to the configured orchestrator
// address. Ownership transfers are owner-driven and handled by the
// message handlers of this package instead.
type Controller struct {
	bucket orm.ModelBucket
}

func NewController() Controller {
	return Controller{bucket: NewBucket()}
}

// Mint registers a new deposit record and returns its id. The record is
// always created in active state.
func (c Controller) Mint(db weave.KVStore, actor weave.Address, deposit *Deposit) (int64, error) {
	if err := c.authorize(db, actor); err != nil {
		return 0, err
	}
	deposit.Status = Deposit_Active
	deposit.Approved = nil
	id, err := depositSeq.NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "deposit sequence")
	}
	if _, err := c.bucket.Put(db, depositKey(id), deposit); err != nil {
		return 0, errors.Wrap(err, "bucket put")
	}
	return id, nil
}

// Get returns the deposit registered under given id.
func (c Controller) Get(db weave.ReadOnlyKVStore, id int64) (*Deposit, error) {
	var d Deposit
	if err := c.bucket.One(db, depositKey(id), &d); err != nil {
		return nil, errors.Wrapf(err, "deposit %d", id)
	}
	return &d, nil
}

// Owner returns the address currently holding the deposit token.
func (c Controller) Owner(db weave.ReadOnlyKVStore, id int64) (weave.Address, error) {
	d, err := c.Get(db, id)
	if err != nil {
		return nil, err
	}
	return d.Owner, nil
}

// UpdateStatus finalizes an active deposit. A deposit that already left
// the active state is terminal and cannot be updated again.
func (c Controller) UpdateStatus(db weave.KVStore, actor weave.Address, id int64, status Deposit_Status) error {
	if err := c.authorize(db, actor); err != nil {
		return err
	}
	d, err := c.Get(db, id)
	if err != nil {
		return err
	}
	if d.Status != Deposit_Active {
		return errors.Wrapf(ErrDepositNotActive, "deposit %d is %s", id, d.Status)
	}
	switch status {
	case Deposit_Withdrawn, Deposit_ManualRenewed, Deposit_AutoRenewed:
		// All good.
	default:
		return errors.Wrapf(errors.ErrState, "cannot transition to %s", status)
	}
	d.Status = status
	d.Approved = nil
	if _, err := c.bucket.Put(db, depositKey(id), d); err != nil {
		return errors.Wrap(err, "bucket put")
	}
	return nil
}

func (c Controller) authorize(db weave.KVStore, actor weave.Address) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if !conf.Orchestrator.Equals(actor) {
		return errors.Wrap(ErrOnlyOrchestrator, "actor is not the configured orchestrator")
	}
	return nil
}
