package reserve

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

// CashController is the subset of the cash functionality the reserve
// needs to pay out funds.
type CashController interface {
	MoveCoins(db weave.KVStore, src weave.Address, dest weave.Address, amount coin.Coin) error
	Balance(db weave.KVStore, addr weave.Address) (coin.Coins, error)
}

// Controller pays out interest and routes penalties. All methods are
// restricted to the configured orchestrator address. How much interest a
// deposit earned is not the reserve's business.
type Controller struct {
	mover CashController
}

func NewController(mover CashController) Controller {
	return Controller{mover: mover}
}

// PayInterest moves amount from the interest pool to dest. An
// underfunded pool fails the payment and with it the whole transaction.
func (c Controller) PayInterest(db weave.KVStore, actor, dest weave.Address, amount coin.Coin) error {
	if err := c.authorize(db, actor); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "must be positive")
	}
	if err := c.hasFunds(db, amount); err != nil {
		return err
	}
	if err := c.mover.MoveCoins(db, Account(), dest, amount); err != nil {
		return errors.Wrap(err, "pay interest")
	}
	return nil
}

// DistributePenalty forwards amount from the interest pool to the
// configured fee receiver. Penalties are carved out of principal by the
// vault and delivered to the pool account within the same transaction,
// this call only routes them on.
func (c Controller) DistributePenalty(db weave.KVStore, actor weave.Address, amount coin.Coin) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if err := c.authorizeConf(conf, actor); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "must be positive")
	}
	if err := c.hasFunds(db, amount); err != nil {
		return err
	}
	if err := c.mover.MoveCoins(db, Account(), conf.FeeReceiver, amount); err != nil {
		return errors.Wrap(err, "distribute penalty")
	}
	return nil
}

// Balance returns all funds held by the interest pool account.
func (c Controller) Balance(db weave.KVStore) (coin.Coins, error) {
	coins, err := c.mover.Balance(db, Account())
	if err != nil {
		return nil, errors.Wrap(err, "reserve balance")
	}
	return coins, nil
}

func (c Controller) authorize(db weave.KVStore, actor weave.Address) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	return c.authorizeConf(conf, actor)
}

func (c Controller) authorizeConf(conf Configuration, actor weave.Address) error {
	if !conf.Orchestrator.Equals(actor) {
		return errors.Wrap(ErrOnlyOrchestrator, "actor is not the configured orchestrator")
	}
	if conf.Paused {
		return errors.Wrap(ErrPaused, "reserve payouts are disabled")
	}
	return nil
}

func (c Controller) hasFunds(db weave.KVStore, amount coin.Coin) error {
	coins, err := c.mover.Balance(db, Account())
	if err != nil {
		return errors.Wrap(err, "reserve balance")
	}
	for _, cn := range coins {
		if cn.Ticker != amount.Ticker {
			continue
		}
		if cn.Compare(amount) >= 0 {
			return nil
		}
	}
	return errors.Wrapf(ErrInsufficientBalance, "cannot cover %q", amount)
}
