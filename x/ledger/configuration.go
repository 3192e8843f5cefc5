package ledger

import (
	"fmt"

	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
}

var _ orm.Model = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	errs = errors.AppendField(errs, "Orchestrator", c.Orchestrator.Validate())
	return errs
}

// DepositURI returns the off chain metadata pointer of a deposit token,
// or an empty string when no base URI is configured.
func (c *Configuration) DepositURI(depositID int64) string {
	if c.BaseUri == "" {
		return ""
	}
	return fmt.Sprintf("%s%d", c.BaseUri, depositID)
}

func loadConf(db gconf.Store) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "ledger", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}
