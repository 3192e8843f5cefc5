package vault

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
)

func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("vault", qr)
}

func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("vault", r)

	r.Handle(&SetPauseMsg{}, &setPauseHandler{auth: auth})
	r.Handle(&UpdateConfigurationMsg{},
		gconf.NewUpdateConfigurationHandler("vault", &Configuration{}, auth, migration.CurrentAdmin))
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
	if err := gconf.Save(db, "vault", conf); err != nil {
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
