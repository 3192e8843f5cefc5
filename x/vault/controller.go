package vault

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// CashController is the subset of the cash functionality the vault needs
// to move deposited funds.
type CashController interface {
	MoveCoins(db weave.KVStore, src weave.Address, dest weave.Address, amount coin.Coin) error
}

// Controller is the only mutation surface of the vault. All methods are
// restricted to the configured orchestrator address. The vault computes
// no interest, penalty or eligibility.
type Controller struct {
	assets orm.ModelBucket
	mover  CashController
}

func NewController(mover CashController) Controller {
	return Controller{
		assets: NewBucket(),
		mover:  mover,
	}
}

// Deposit moves amount from src to the custody account and increases the
// tracked principal total.
func (c Controller) Deposit(db weave.KVStore, actor, src weave.Address, amount coin.Coin) error {
	if err := c.authorize(db, actor); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "must be positive")
	}
	if err := c.mover.MoveCoins(db, src, Account(), amount); err != nil {
		return errors.Wrap(err, "move funds to vault")
	}
	return c.addPrincipal(db, amount)
}

// Withdraw moves amount from the custody account to dest and decreases
// the tracked principal total. Withdrawing more than the tracked total
// fails even if the account wallet holds more.
func (c Controller) Withdraw(db weave.KVStore, actor, dest weave.Address, amount coin.Coin) error {
	if err := c.authorize(db, actor); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "must be positive")
	}
	a, err := c.loadAssets(db)
	if err != nil {
		return err
	}
	total := a.TotalPrincipal
	if total.IsZero() || total.Ticker != amount.Ticker || total.Compare(amount) < 0 {
		return errors.Wrapf(ErrInsufficientBalance, "tracked principal is %q", total)
	}
	if err := c.mover.MoveCoins(db, Account(), dest, amount); err != nil {
		return errors.Wrap(err, "move funds from vault")
	}
	diff, err := total.Subtract(amount)
	if err != nil {
		return errors.Wrap(err, "subtract principal")
	}
	a.TotalPrincipal = diff
	if _, err := c.assets.Put(db, assetsKey, &a); err != nil {
		return errors.Wrap(err, "store assets")
	}
	return nil
}

// Capitalize increases the tracked principal total without moving any
// funds. It acknowledges interest that was already paid into the custody
// account and became principal during a renewal.
func (c Controller) Capitalize(db weave.KVStore, actor weave.Address, amount coin.Coin) error {
	if err := c.authorize(db, actor); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "must be positive")
	}
	return c.addPrincipal(db, amount)
}

// TotalPrincipal returns the tracked custody total. A zero coin is
// returned before the first deposit.
func (c Controller) TotalPrincipal(db weave.KVStore) (coin.Coin, error) {
	a, err := c.loadAssets(db)
	if err != nil {
		return coin.Coin{}, err
	}
	return a.TotalPrincipal, nil
}

// Ready returns ErrPaused when the vault does not accept custody
// movements. It lets handlers reject doomed transactions during the
// check phase, before anything is delivered.
func (c Controller) Ready(db weave.KVStore) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if conf.Paused {
		return errors.Wrap(ErrPaused, "custody movements are disabled")
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
	if conf.Paused {
		return errors.Wrap(ErrPaused, "custody movements are disabled")
	}
	return nil
}

func (c Controller) addPrincipal(db weave.KVStore, amount coin.Coin) error {
	a, err := c.loadAssets(db)
	if err != nil {
		return err
	}
	if a.TotalPrincipal.IsZero() {
		a.TotalPrincipal = amount
	} else {
		sum, err := a.TotalPrincipal.Add(amount)
		if err != nil {
			return errors.Wrap(err, "add principal")
		}
		a.TotalPrincipal = sum
	}
	if _, err := c.assets.Put(db, assetsKey, &a); err != nil {
		return errors.Wrap(err, "store assets")
	}
	return nil
}

func (c Controller) loadAssets(db weave.KVStore) (Assets, error) {
	var a Assets
	switch err := c.assets.One(db, assetsKey, &a); {
	case err == nil:
		return a, nil
	case errors.ErrNotFound.Is(err):
		return Assets{Metadata: &weave.Metadata{Schema: 1}}, nil
	default:
		return a, errors.Wrap(err, "load assets")
	}
}
