package termdeposit

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
}

// defaultGracePeriod is how long after maturity the owner can still claim
// before anyone may trigger an automatic renewal. Three days.
const defaultGracePeriod = weave.UnixDuration(3 * 24 * 60 * 60)

var _ orm.Model = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	if c.GracePeriod <= 0 {
		errs = errors.AppendField(errs, "GracePeriod", errors.Wrap(errors.ErrInput, "must be greater than zero"))
	}
	return errs
}

func loadConf(db gconf.Store) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "termdeposit", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}

// Authority returns the address that the plan registry, the vault, the
// reserve and the deposit book must authorize as their orchestrator for
// the deposit lifecycle to function.
func Authority() weave.Address {
	return weave.NewCondition("termdeposit", "orchestrator", []byte("v1")).Address()
}
