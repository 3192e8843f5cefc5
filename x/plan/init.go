package plan

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial configuration and seed plans from genesis
// and save it to the database
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	conf := Configuration{
		Metadata: &weave.Metadata{Schema: 1},
	}
	switch err := gconf.InitConfig(db, opts, "plan", &conf); {
	default:
		// All good.
	case errors.ErrNotFound.Is(err):
		return nil
	case err != nil:
		return errors.Wrap(err, "cannot initialize gconf based configuration")
	}

	var plans []struct {
		TenorSeconds int64     `json:"tenor_seconds"`
		AprBps       uint32    `json:"apr_bps"`
		MinDeposit   coin.Coin `json:"min_deposit"`
		MaxDeposit   coin.Coin `json:"max_deposit"`
		PenaltyBps   uint32    `json:"penalty_bps"`
	}
	if err := opts.ReadOptions("plans", &plans); err != nil {
		return err
	}
	b := NewBucket()
	for i, p := range plans {
		id, err := planSeq.NextInt(db)
		if err != nil {
			return errors.Wrapf(err, "acquire id for plan %d", i)
		}
		plan := Plan{
			Metadata:     &weave.Metadata{Schema: 1},
			Id:           id,
			TenorSeconds: p.TenorSeconds,
			AprBps:       p.AprBps,
			MinDeposit:   p.MinDeposit,
			MaxDeposit:   p.MaxDeposit,
			PenaltyBps:   p.PenaltyBps,
			Active:       true,
		}
		if _, err := b.Put(db, planKey(id), &plan); err != nil {
			return errors.Wrapf(err, "store plan %d", i)
		}
	}
	return nil
}
