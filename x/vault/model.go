package vault

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Assets{}, migration.NoModification)
}

var _ orm.Model = (*Assets)(nil)

func (m *Assets) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !m.TotalPrincipal.IsZero() {
		if err := m.TotalPrincipal.Validate(); err != nil {
			errs = errors.AppendField(errs, "TotalPrincipal", err)
		} else if !m.TotalPrincipal.IsPositive() {
			errs = errors.AppendField(errs, "TotalPrincipal", errors.Wrap(errors.ErrAmount, "must not be negative"))
		}
	}
	return errs
}

func NewBucket() orm.ModelBucket {
	b := orm.NewModelBucket("vassets", &Assets{})
	return migration.NewModelBucket("vault", b)
}

// There is exactly one assets record per deployment.
var assetsKey = []byte("principal")

// Account returns the address of the custody account that holds all
// deposited principal.
func Account() weave.Address {
	return weave.NewCondition("vault", "custody", []byte("principal")).Address()
}
