package ledger

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("ledger", r)
	bucket := NewBucket()

	r.Handle(&TransferDepositMsg{}, &transferDepositHandler{auth: auth, bucket: bucket})
	r.Handle(&ApproveTransferMsg{}, &approveTransferHandler{auth: auth, bucket: bucket})
	r.Handle(&UpdateConfigurationMsg{},
		gconf.NewUpdateConfigurationHandler("ledger", &Configuration{}, auth, migration.CurrentAdmin))
}

type transferDepositHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

func (h *transferDepositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *transferDepositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, deposit, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	deposit.Owner = msg.Recipient
	deposit.Approved = nil
	if _, err := h.bucket.Put(db, depositKey(msg.DepositId), deposit); err != nil {
		return nil, errors.Wrap(err, "bucket put")
	}
	return &weave.DeliverResult{Data: depositKey(msg.DepositId)}, nil
}

func (h *transferDepositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*TransferDepositMsg, *Deposit, error) {
	var msg TransferDepositMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var deposit Deposit
	if err := h.bucket.One(db, depositKey(msg.DepositId), &deposit); err != nil {
		return nil, nil, errors.Wrapf(err, "deposit %d", msg.DepositId)
	}
	if deposit.Status != Deposit_Active {
		return nil, nil, errors.Wrapf(ErrDepositNotActive, "deposit %d is %s", msg.DepositId, deposit.Status)
	}
	authorized := h.auth.HasAddress(ctx, deposit.Owner)
	if !authorized && len(deposit.Approved) != 0 {
		authorized = h.auth.HasAddress(ctx, deposit.Approved)
	}
	if !authorized {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "neither owner nor approved signature")
	}
	if deposit.Owner.Equals(msg.Recipient) {
		return nil, nil, errors.Wrap(errors.ErrInput, "recipient is already the owner")
	}
	return &msg, &deposit, nil
}

type approveTransferHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

func (h *approveTransferHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *approveTransferHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, deposit, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	deposit.Approved = msg.Approved
	if _, err := h.bucket.Put(db, depositKey(msg.DepositId), deposit); err != nil {
		return nil, errors.Wrap(err, "bucket put")
	}
	return &weave.DeliverResult{Data: depositKey(msg.DepositId)}, nil
}

func (h *approveTransferHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ApproveTransferMsg, *Deposit, error) {
	var msg ApproveTransferMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var deposit Deposit
	if err := h.bucket.One(db, depositKey(msg.DepositId), &deposit); err != nil {
		return nil, nil, errors.Wrapf(err, "deposit %d", msg.DepositId)
	}
	if deposit.Status != Deposit_Active {
		return nil, nil, errors.Wrapf(ErrDepositNotActive, "deposit %d is %s", msg.DepositId, deposit.Status)
	}
	if !h.auth.HasAddress(ctx, deposit.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return &msg, &deposit, nil
}
