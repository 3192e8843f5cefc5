package reserve

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
)

func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl CashController) {
	r = migration.SchemaMigratingRegistry("reserve", r)

	r.Handle(&FundMsg{}, &fundHandler{auth: auth, ctrl: ctrl})
	r.Handle(&DrainMsg{}, &drainHandler{auth: auth, ctrl: ctrl})
	r.Handle(&SetPauseMsg{}, &setPauseHandler{auth: auth})
	r.Handle(&UpdateConfigurationMsg{},
		gconf.NewUpdateConfigurationHandler("reserve", &Configuration{}, auth, migration.CurrentAdmin))
}

type fundHandler struct {
	auth x.Authenticator
	ctrl CashController
}

func (h *fundHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *fundHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveCoins(db, conf.Owner, Account(), msg.Amount); err != nil {
		return nil, errors.Wrap(err, "fund reserve")
	}
	return &weave.DeliverResult{Data: reserveTotal(db, h.ctrl, msg.Amount.Ticker)}, nil
}

func (h *fundHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*FundMsg, *Configuration, error) {
	var msg FundMsg
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
	return &msg, &conf, nil
}

type drainHandler struct {
	auth x.Authenticator
	ctrl CashController
}

func (h *drainHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *drainHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveCoins(db, Account(), conf.Owner, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "drain reserve")
	}
	return &weave.DeliverResult{Data: reserveTotal(db, h.ctrl, msg.Amount.Ticker)}, nil
}

func (h *drainHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DrainMsg, *Configuration, error) {
	var msg DrainMsg
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
	coins, err := h.ctrl.Balance(db, Account())
	if err != nil {
		return nil, nil, errors.Wrap(err, "reserve balance")
	}
	var found bool
	for _, c := range coins {
		if c.Ticker == msg.Amount.Ticker && c.Compare(msg.Amount) >= 0 {
			found = true
			break
		}
	}
	if !found {
		return nil, nil, errors.Wrapf(ErrInsufficientBalance, "cannot drain %q", msg.Amount)
	}
	return &msg, &conf, nil
}

// reserveTotal returns the pool total for given ticker in a printable
// form, to be reported back as the transaction result.
func reserveTotal(db weave.KVStore, ctrl CashController, ticker string) []byte {
	coins, err := ctrl.Balance(db, Account())
	if err != nil {
		return nil
	}
	for _, c := range coins {
		if c.Ticker == ticker {
			return []byte(c.String())
		}
	}
	return nil
}

type setPauseHandler struct {
	auth x.Authenticator
}

func (h *setPauseHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *setPauseHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf.Paused = msg.Paused
	if err := gconf.Save(db, "reserve", conf); err != nil {
		return nil, errors.Wrap(err, "save configuration")
	}
	return &weave.DeliverResult{}, nil
}

func (h *setPauseHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SetPauseMsg, *Configuration, error) {
	var msg SetPauseMsg
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
	return &msg, &conf, nil
}
