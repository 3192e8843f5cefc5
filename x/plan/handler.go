package plan

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("plans", qr)
}

func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("plan", r)

	plans := NewBucket()

	r.Handle(&CreatePlanMsg{}, &createPlanHandler{
		auth:  auth,
		plans: plans,
	})
	r.Handle(&UpdatePlanMsg{}, &updatePlanHandler{
		auth:  auth,
		plans: plans,
	})
	r.Handle(&UpdateConfigurationMsg{},
		gconf.NewUpdateConfigurationHandler("plan", &Configuration{}, auth, migration.CurrentAdmin))
}

type createPlanHandler struct {
	auth  x.Authenticator
	plans orm.ModelBucket
}

func (h *createPlanHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *createPlanHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	id, err := planSeq.NextInt(db)
	if err != nil {
		return nil, errors.Wrap(err, "acquire plan id")
	}
	p := Plan{
		Metadata:     &weave.Metadata{Schema: 1},
		Id:           id,
		TenorSeconds: msg.TenorSeconds,
		AprBps:       msg.AprBps,
		MinDeposit:   msg.MinDeposit,
		MaxDeposit:   msg.MaxDeposit,
		PenaltyBps:   msg.PenaltyBps,
		Active:       true,
	}
	if _, err := h.plans.Put(db, planKey(id), &p); err != nil {
		return nil, errors.Wrap(err, "store plan")
	}
	return &weave.DeliverResult{Data: planKey(id)}, nil
}

func (h *createPlanHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreatePlanMsg, error) {
	var msg CreatePlanMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return &msg, nil
}

type updatePlanHandler struct {
	auth  x.Authenticator
	plans orm.ModelBucket
}

func (h *updatePlanHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *updatePlanHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, p, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// Tenor is the plan identity and cannot be modified. Deposits opened
	// before this update keep the rates they snapshotted.
	p.AprBps = msg.AprBps
	p.MinDeposit = msg.MinDeposit
	p.MaxDeposit = msg.MaxDeposit
	p.PenaltyBps = msg.PenaltyBps
	p.Active = msg.Active
	if _, err := h.plans.Put(db, planKey(msg.PlanId), p); err != nil {
		return nil, errors.Wrap(err, "store plan")
	}
	return &weave.DeliverResult{Data: planKey(msg.PlanId)}, nil
}

func (h *updatePlanHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdatePlanMsg, *Plan, error) {
	var msg UpdatePlanMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	var p Plan
	if err := h.plans.One(db, planKey(msg.PlanId), &p); err != nil {
		return nil, nil, errors.Wrapf(err, "plan %d", msg.PlanId)
	}
	return &msg, &p, nil
}
