package termdeposit

import (
	"encoding/binary"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"

	"github.com/ThuHoiBao/savebank/x/ledger"
	"github.com/ThuHoiBao/savebank/x/plan"
	"github.com/ThuHoiBao/savebank/x/reserve"
	"github.com/ThuHoiBao/savebank/x/vault"
)

func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl cash.Controller) {
	r = migration.SchemaMigratingRegistry("termdeposit", r)

	vaults := vault.NewController(ctrl)
	reserves := reserve.NewController(ctrl)
	deposits := ledger.NewController()

	r.Handle(&OpenDepositMsg{}, &openDepositHandler{auth: auth, vault: vaults, deposits: deposits})
	r.Handle(&WithdrawDepositMsg{}, &withdrawDepositHandler{auth: auth, vault: vaults, reserve: reserves, deposits: deposits})
	r.Handle(&EarlyWithdrawDepositMsg{}, &earlyWithdrawDepositHandler{auth: auth, vault: vaults, reserve: reserves, deposits: deposits})
	r.Handle(&RenewDepositMsg{}, &renewDepositHandler{auth: auth, vault: vaults, reserve: reserves, deposits: deposits})
	r.Handle(&AutoRenewDepositMsg{}, &autoRenewDepositHandler{auth: auth, vault: vaults, reserve: reserves, deposits: deposits})
	r.Handle(&UpdateConfigurationMsg{},
		gconf.NewUpdateConfigurationHandler("termdeposit", &Configuration{}, auth, migration.CurrentAdmin))
}

// depositID returns the deposit sequence value in its big endian binary
// representation, as used for bucket keys and transaction results.
func depositID(id int64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(id))
	return raw
}

// checkPlanBounds ensures the amount is within the deposit bounds the
// plan declares. Zero valued bounds do not constrain.
func checkPlanBounds(p plan.Plan, amount coin.Coin) error {
	if !p.MinDeposit.IsZero() {
		if !amount.SameType(p.MinDeposit) {
			return errors.Wrapf(errors.ErrCurrency, "plan accepts %q deposits", p.MinDeposit.Ticker)
		}
		if amount.Compare(p.MinDeposit) < 0 {
			return errors.Wrapf(ErrDepositBounds, "below plan minimum of %q", p.MinDeposit)
		}
	}
	if !p.MaxDeposit.IsZero() {
		if !amount.SameType(p.MaxDeposit) {
			return errors.Wrapf(errors.ErrCurrency, "plan accepts %q deposits", p.MaxDeposit.Ticker)
		}
		if amount.Compare(p.MaxDeposit) > 0 {
			return errors.Wrapf(ErrDepositBounds, "above plan maximum of %q", p.MaxDeposit)
		}
	}
	return nil
}

type openDepositHandler struct {
	auth     x.Authenticator
	vault    vault.Controller
	deposits ledger.Controller
}

func (h *openDepositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *openDepositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, p, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	owner := x.MainSigner(ctx, h.auth).Address()
	if err := h.vault.Deposit(db, Authority(), owner, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "move principal into custody")
	}
	startAt := weave.AsUnixTime(now)
	deposit := &ledger.Deposit{
		Metadata:   &weave.Metadata{Schema: 1},
		PlanId:     p.Id,
		Owner:      owner,
		Principal:  msg.Amount,
		StartAt:    startAt,
		MaturityAt: startAt + weave.UnixTime(p.TenorSeconds),
		AprBps:     p.AprBps,
		PenaltyBps: p.PenaltyBps,
	}
	id, err := h.deposits.Mint(db, Authority(), deposit)
	if err != nil {
		return nil, errors.Wrap(err, "mint deposit")
	}
	return &weave.DeliverResult{Data: depositID(id)}, nil
}

func (h *openDepositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*OpenDepositMsg, plan.Plan, error) {
	var msg OpenDepositMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, plan.Plan{}, errors.Wrap(err, "load msg")
	}
	p, err := plan.LoadPlan(db, msg.PlanId)
	if err != nil {
		return nil, plan.Plan{}, err
	}
	if p.Id == 0 {
		return nil, plan.Plan{}, errors.Wrapf(plan.ErrPlanNotFound, "plan %d", msg.PlanId)
	}
	if !p.Active {
		return nil, plan.Plan{}, errors.Wrapf(plan.ErrPlanNotActive, "plan %d", msg.PlanId)
	}
	if err := checkPlanBounds(p, msg.Amount); err != nil {
		return nil, plan.Plan{}, err
	}
	if err := h.vault.Ready(db); err != nil {
		return nil, plan.Plan{}, err
	}
	return &msg, p, nil
}

type withdrawDepositHandler struct {
	auth     x.Authenticator
	vault    vault.Controller
	reserve  reserve.Controller
	deposits ledger.Controller
}

func (h *withdrawDepositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *withdrawDepositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, deposit, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	interest, err := depositInterest(deposit.Principal, deposit.AprBps, int64(deposit.MaturityAt-deposit.StartAt))
	if err != nil {
		return nil, errors.Wrap(err, "interest")
	}
	// The terminal status is written before any funds move.
	if err := h.deposits.UpdateStatus(db, Authority(), msg.DepositId, ledger.Deposit_Withdrawn); err != nil {
		return nil, errors.Wrap(err, "finalize deposit")
	}
	if err := h.vault.Withdraw(db, Authority(), deposit.Owner, deposit.Principal); err != nil {
		return nil, errors.Wrap(err, "release principal")
	}
	if interest.IsPositive() {
		if err := h.reserve.PayInterest(db, Authority(), deposit.Owner, interest); err != nil {
			return nil, errors.Wrap(err, "pay interest")
		}
	}
	return &weave.DeliverResult{Data: depositID(msg.DepositId)}, nil
}

func (h *withdrawDepositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*WithdrawDepositMsg, *ledger.Deposit, error) {
	var msg WithdrawDepositMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	deposit, err := h.deposits.Get(db, msg.DepositId)
	if err != nil {
		return nil, nil, err
	}
	if deposit.Status != ledger.Deposit_Active {
		return nil, nil, errors.Wrapf(ledger.ErrDepositNotActive, "deposit %d is %s", msg.DepositId, deposit.Status)
	}
	if !h.auth.HasAddress(ctx, deposit.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "block time")
	}
	if weave.AsUnixTime(now) < deposit.MaturityAt {
		return nil, nil, errors.Wrapf(ErrNotMatured, "deposit matures at %s", deposit.MaturityAt)
	}
	return &msg, deposit, nil
}

type earlyWithdrawDepositHandler struct {
	auth     x.Authenticator
	vault    vault.Controller
	reserve  reserve.Controller
	deposits ledger.Controller
}

func (h *earlyWithdrawDepositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *earlyWithdrawDepositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, deposit, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	penalty, err := depositPenalty(deposit.Principal, deposit.PenaltyBps)
	if err != nil {
		return nil, errors.Wrap(err, "penalty")
	}
	payout, err := deposit.Principal.Subtract(penalty)
	if err != nil {
		return nil, errors.Wrap(err, "payout")
	}
	// The terminal status is written before any funds move.
	if err := h.deposits.UpdateStatus(db, Authority(), msg.DepositId, ledger.Deposit_Withdrawn); err != nil {
		return nil, errors.Wrap(err, "finalize deposit")
	}
	if err := h.vault.Withdraw(db, Authority(), deposit.Owner, payout); err != nil {
		return nil, errors.Wrap(err, "release principal")
	}
	if penalty.IsPositive() {
		// The penalty share of the principal is passed through the
		// interest pool so that a single routing rule decides where
		// penalties end up.
		if err := h.vault.Withdraw(db, Authority(), reserve.Account(), penalty); err != nil {
			return nil, errors.Wrap(err, "carve penalty")
		}
		if err := h.reserve.DistributePenalty(db, Authority(), penalty); err != nil {
			return nil, errors.Wrap(err, "distribute penalty")
		}
	}
	return &weave.DeliverResult{Data: depositID(msg.DepositId)}, nil
}

func (h *earlyWithdrawDepositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*EarlyWithdrawDepositMsg, *ledger.Deposit, error) {
	var msg EarlyWithdrawDepositMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	deposit, err := h.deposits.Get(db, msg.DepositId)
	if err != nil {
		return nil, nil, err
	}
	if deposit.Status != ledger.Deposit_Active {
		return nil, nil, errors.Wrapf(ledger.ErrDepositNotActive, "deposit %d is %s", msg.DepositId, deposit.Status)
	}
	if !h.auth.HasAddress(ctx, deposit.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	// No maturity check. The early exit stays available even after
	// maturity, only the terminal status closes it.
	return &msg, deposit, nil
}

type renewDepositHandler struct {
	auth     x.Authenticator
	vault    vault.Controller
	reserve  reserve.Controller
	deposits ledger.Controller
}

func (h *renewDepositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *renewDepositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, deposit, p, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	// The terminal status is written before any funds move.
	if err := h.deposits.UpdateStatus(db, Authority(), msg.DepositId, ledger.Deposit_ManualRenewed); err != nil {
		return nil, errors.Wrap(err, "finalize deposit")
	}
	renewed, err := h.compound(db, deposit)
	if err != nil {
		return nil, err
	}
	startAt := weave.AsUnixTime(now)
	next := &ledger.Deposit{
		Metadata:   &weave.Metadata{Schema: 1},
		PlanId:     p.Id,
		Owner:      deposit.Owner,
		Principal:  renewed,
		StartAt:    startAt,
		MaturityAt: startAt + weave.UnixTime(p.TenorSeconds),
		AprBps:     p.AprBps,
		PenaltyBps: p.PenaltyBps,
	}
	id, err := h.deposits.Mint(db, Authority(), next)
	if err != nil {
		return nil, errors.Wrap(err, "mint deposit")
	}
	return &weave.DeliverResult{Data: depositID(id)}, nil
}

// compound pays the earned interest into the custody account and returns
// the renewed principal.
func (h *renewDepositHandler) compound(db weave.KVStore, deposit *ledger.Deposit) (coin.Coin, error) {
	interest, err := depositInterest(deposit.Principal, deposit.AprBps, int64(deposit.MaturityAt-deposit.StartAt))
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "interest")
	}
	if interest.IsPositive() {
		if err := h.reserve.PayInterest(db, Authority(), vault.Account(), interest); err != nil {
			return coin.Coin{}, errors.Wrap(err, "pay interest")
		}
		if err := h.vault.Capitalize(db, Authority(), interest); err != nil {
			return coin.Coin{}, errors.Wrap(err, "capitalize interest")
		}
	}
	renewed, err := deposit.Principal.Add(interest)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "renewed principal")
	}
	return renewed, nil
}

func (h *renewDepositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RenewDepositMsg, *ledger.Deposit, plan.Plan, error) {
	var msg RenewDepositMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, plan.Plan{}, errors.Wrap(err, "load msg")
	}
	deposit, err := h.deposits.Get(db, msg.DepositId)
	if err != nil {
		return nil, nil, plan.Plan{}, err
	}
	if deposit.Status != ledger.Deposit_Active {
		return nil, nil, plan.Plan{}, errors.Wrapf(ledger.ErrDepositNotActive, "deposit %d is %s", msg.DepositId, deposit.Status)
	}
	if !h.auth.HasAddress(ctx, deposit.Owner) {
		return nil, nil, plan.Plan{}, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, nil, plan.Plan{}, errors.Wrap(err, "block time")
	}
	if weave.AsUnixTime(now) < deposit.MaturityAt {
		return nil, nil, plan.Plan{}, errors.Wrapf(ErrNotMatured, "deposit matures at %s", deposit.MaturityAt)
	}
	p, err := plan.LoadPlan(db, msg.PlanId)
	if err != nil {
		return nil, nil, plan.Plan{}, err
	}
	if p.Id == 0 {
		return nil, nil, plan.Plan{}, errors.Wrapf(plan.ErrPlanNotFound, "plan %d", msg.PlanId)
	}
	if !p.Active {
		return nil, nil, plan.Plan{}, errors.Wrapf(plan.ErrPlanNotActive, "plan %d", msg.PlanId)
	}
	// A manual renewal is a fresh election and must satisfy the bounds
	// of the chosen plan, including the compounded interest.
	interest, err := depositInterest(deposit.Principal, deposit.AprBps, int64(deposit.MaturityAt-deposit.StartAt))
	if err != nil {
		return nil, nil, plan.Plan{}, errors.Wrap(err, "interest")
	}
	renewed, err := deposit.Principal.Add(interest)
	if err != nil {
		return nil, nil, plan.Plan{}, errors.Wrap(err, "renewed principal")
	}
	if err := checkPlanBounds(p, renewed); err != nil {
		return nil, nil, plan.Plan{}, err
	}
	return &msg, deposit, p, nil
}

type autoRenewDepositHandler struct {
	auth     x.Authenticator
	vault    vault.Controller
	reserve  reserve.Controller
	deposits ledger.Controller
}

func (h *autoRenewDepositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *autoRenewDepositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, deposit, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	// The terminal status is written before any funds move.
	if err := h.deposits.UpdateStatus(db, Authority(), msg.DepositId, ledger.Deposit_AutoRenewed); err != nil {
		return nil, errors.Wrap(err, "finalize deposit")
	}
	tenor := deposit.MaturityAt - deposit.StartAt
	interest, err := depositInterest(deposit.Principal, deposit.AprBps, int64(tenor))
	if err != nil {
		return nil, errors.Wrap(err, "interest")
	}
	if interest.IsPositive() {
		if err := h.reserve.PayInterest(db, Authority(), vault.Account(), interest); err != nil {
			return nil, errors.Wrap(err, "pay interest")
		}
		if err := h.vault.Capitalize(db, Authority(), interest); err != nil {
			return nil, errors.Wrap(err, "capitalize interest")
		}
	}
	renewed, err := deposit.Principal.Add(interest)
	if err != nil {
		return nil, errors.Wrap(err, "renewed principal")
	}
	// An automatic renewal re-enrolls with the original snapshot terms.
	// The owner made no new election and must not be repriced by later
	// plan edits.
	startAt := weave.AsUnixTime(now)
	next := &ledger.Deposit{
		Metadata:   &weave.Metadata{Schema: 1},
		PlanId:     deposit.PlanId,
		Owner:      deposit.Owner,
		Principal:  renewed,
		StartAt:    startAt,
		MaturityAt: startAt + weave.UnixTime(tenor),
		AprBps:     deposit.AprBps,
		PenaltyBps: deposit.PenaltyBps,
	}
	id, err := h.deposits.Mint(db, Authority(), next)
	if err != nil {
		return nil, errors.Wrap(err, "mint deposit")
	}
	return &weave.DeliverResult{Data: depositID(id)}, nil
}

func (h *autoRenewDepositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AutoRenewDepositMsg, *ledger.Deposit, error) {
	var msg AutoRenewDepositMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	deposit, err := h.deposits.Get(db, msg.DepositId)
	if err != nil {
		return nil, nil, err
	}
	if deposit.Status != ledger.Deposit_Active {
		return nil, nil, errors.Wrapf(ledger.ErrDepositNotActive, "deposit %d is %s", msg.DepositId, deposit.Status)
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "block time")
	}
	// A single error covers both a deposit that did not mature yet and
	// one still inside the grace window, so callers cannot tell which
	// of the two holds.
	deadline := deposit.MaturityAt + weave.UnixTime(conf.GracePeriod)
	if weave.AsUnixTime(now) < deadline {
		return nil, nil, errors.Wrapf(ErrGracePeriod, "owner can claim until %s", deadline)
	}
	return &msg, deposit, nil
}
