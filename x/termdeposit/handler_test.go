package termdeposit

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	coin "github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"

	"github.com/ThuHoiBao/savebank/x/ledger"
	"github.com/ThuHoiBao/savebank/x/plan"
	"github.com/ThuHoiBao/savebank/x/reserve"
	"github.com/ThuHoiBao/savebank/x/vault"
)

func TestUseCases(t *testing.T) {
	type Request struct {
		Conditions  []weave.Condition
		Tx          weave.Tx
		BlockHeight int64
		Now         weave.UnixTime
		WantErr     *errors.Error
	}

	var (
		adminCond    = weavetest.NewCondition()
		aliceCond    = weavetest.NewCondition()
		strangerCond = weavetest.NewCondition()
		feesCond     = weavetest.NewCondition()
	)

	const tenor = 7776000

	var (
		start    = weave.UnixTime(1600000000)
		maturity = start + tenor
		// Interest on 100 IOV at 720 basis points over the 90 day tenor.
		interest = coin.NewCoin(1, 775342465, "IOV")
	)

	cases := map[string]struct {
		Requests  []Request
		AfterTest func(t *testing.T, db weave.KVStore, cashctrl cash.Controller)
	}{
		"opening a deposit locks the principal in the vault": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &OpenDepositMsg{
							Metadata: &weave.Metadata{Schema: 1},
							PlanId:   1,
							Amount:   coin.NewCoin(100, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					Now:         start,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore, cashctrl cash.Controller) {
				assertWallet(t, db, cashctrl, aliceCond.Address(), coin.NewCoin(900, 0, "IOV"))
				assertWallet(t, db, cashctrl, vault.Account(), coin.NewCoin(100, 0, "IOV"))

				total, err := vault.NewController(cashctrl).TotalPrincipal(db)
				if err != nil {
					t.Fatalf("total principal: %s", err)
				}
				if want := coin.NewCoin(100, 0, "IOV"); !total.Equals(want) {
					t.Fatalf("want %q tracked, got %q", want, total)
				}

				d := assertDeposit(t, db, 1, ledger.Deposit_Active)
				if d.AprBps != 720 || d.PenaltyBps != 150 {
					t.Fatalf("plan terms not snapshotted: %+v", d)
				}
				if d.StartAt != start || d.MaturityAt != maturity {
					t.Fatalf("unexpected schedule: %+v", d)
				}
			},
		},
		"an amount outside the plan bounds is rejected": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &OpenDepositMsg{
							Metadata: &weave.Metadata{Schema: 1},
							PlanId:   1,
							Amount:   coin.NewCoin(5, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					Now:         start,
					WantErr:     ErrDepositBounds,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &OpenDepositMsg{
							Metadata: &weave.Metadata{Schema: 1},
							PlanId:   666,
							Amount:   coin.NewCoin(100, 0, "IOV"),
						},
					},
					BlockHeight: 101,
					Now:         start,
					WantErr:     plan.ErrPlanNotFound,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore, cashctrl cash.Controller) {
				assertWallet(t, db, cashctrl, aliceCond.Address(), coin.NewCoin(1000, 0, "IOV"))
			},
		},
		"withdrawing at maturity pays principal and interest": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &OpenDepositMsg{
							Metadata: &weave.Metadata{Schema: 1},
							PlanId:   1,
							Amount:   coin.NewCoin(100, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					Now:         start,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
						},
					},
					BlockHeight: 101,
					Now:         maturity,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore, cashctrl cash.Controller) {
				assertWallet(t, db, cashctrl, aliceCond.Address(), coin.NewCoin(1001, 775342465, "IOV"))
				assertWallet(t, db, cashctrl, reserve.Account(), coin.NewCoin(498, 224657535, "IOV"))

				total, err := vault.NewController(cashctrl).TotalPrincipal(db)
				if err != nil {
					t.Fatalf("total principal: %s", err)
				}
				if !total.IsZero() {
					t.Fatalf("vault must be empty, tracking %q", total)
				}

				assertDeposit(t, db, 1, ledger.Deposit_Withdrawn)
			},
		},
		"withdrawing before maturity fails": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &OpenDepositMsg{
							Metadata: &weave.Metadata{Schema: 1},
							PlanId:   1,
							Amount:   coin.NewCoin(100, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					Now:         start,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
						},
					},
					BlockHeight: 101,
					Now:         maturity - 1,
					WantErr:     ErrNotMatured,
				},
			},
		},
		"only the deposit owner can withdraw": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &OpenDepositMsg{
							Metadata: &weave.Metadata{Schema: 1},
							PlanId:   1,
							Amount:   coin.NewCoin(100, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					Now:         start,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{strangerCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
						},
					},
					BlockHeight: 101,
					Now:         maturity,
					WantErr:     errors.ErrUnauthorized,
				},
			},
		},
		"early withdrawal forfeits interest and carves a penalty": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &OpenDepositMsg{
							Metadata: &weave.Metadata{Schema: 1},
							PlanId:   1,
							Amount:   coin.NewCoin(100, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					Now:         start,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &EarlyWithdrawDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
						},
					},
					BlockHeight: 101,
					Now:         start + tenor/2,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore, cashctrl cash.Controller) {
				assertWallet(t, db, cashctrl, aliceCond.Address(), coin.NewCoin(998, 500000000, "IOV"))
				assertWallet(t, db, cashctrl, feesCond.Address(), coin.NewCoin(1, 500000000, "IOV"))
				// The pool only routed the penalty and paid nothing itself.
				assertWallet(t, db, cashctrl, reserve.Account(), coin.NewCoin(500, 0, "IOV"))

				total, err := vault.NewController(cashctrl).TotalPrincipal(db)
				if err != nil {
					t.Fatalf("total principal: %s", err)
				}
				if !total.IsZero() {
					t.Fatalf("vault must be empty, tracking %q", total)
				}

				assertDeposit(t, db, 1, ledger.Deposit_Withdrawn)
			},
		},
		"the early exit stays open after maturity and still pays no interest": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &OpenDepositMsg{
							Metadata: &weave.Metadata{Schema: 1},
							PlanId:   1,
							Amount:   coin.NewCoin(100, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					Now:         start,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &EarlyWithdrawDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
						},
					},
					BlockHeight: 101,
					Now:         maturity + 1,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore, cashctrl cash.Controller) {
				assertWallet(t, db, cashctrl, aliceCond.Address(), coin.NewCoin(998, 500000000, "IOV"))
				assertWallet(t, db, cashctrl, feesCond.Address(), coin.NewCoin(1, 500000000, "IOV"))
				assertWallet(t, db, cashctrl, reserve.Account(), coin.NewCoin(500, 0, "IOV"))
				assertDeposit(t, db, 1, ledger.Deposit_Withdrawn)
			},
		},
		"deposit terms survive plan edits": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &OpenDepositMsg{
							Metadata: &weave.Metadata{Schema: 1},
							PlanId:   1,
							Amount:   coin.NewCoin(100, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					Now:         start,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &plan.UpdatePlanMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							PlanId:     1,
							AprBps:     100,
							MinDeposit: coin.NewCoin(10, 0, "IOV"),
							MaxDeposit: coin.NewCoin(10000, 0, "IOV"),
							PenaltyBps: 150,
							Active:     true,
						},
					},
					BlockHeight: 101,
					Now:         start + 1,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
						},
					},
					BlockHeight: 102,
					Now:         maturity,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore, cashctrl cash.Controller) {
				// Interest is still paid at the 720 basis points snapshot.
				assertWallet(t, db, cashctrl, aliceCond.Address(), coin.NewCoin(1001, 775342465, "IOV"))
			},
		},
		"manual renewal compounds into the chosen plan": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &plan.CreatePlanMsg{
							Metadata:     &weave.Metadata{Schema: 1},
							TenorSeconds: 31536000,
							AprBps:       500,
						},
					},
					BlockHeight: 100,
					Now:         start,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &OpenDepositMsg{
							Metadata: &weave.Metadata{Schema: 1},
							PlanId:   1,
							Amount:   coin.NewCoin(100, 0, "IOV"),
						},
					},
					BlockHeight: 101,
					Now:         start,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &RenewDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
							PlanId:    2,
						},
					},
					BlockHeight: 102,
					Now:         maturity,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore, cashctrl cash.Controller) {
				renewed, err := coin.NewCoin(100, 0, "IOV").Add(interest)
				if err != nil {
					t.Fatalf("renewed principal: %s", err)
				}

				assertWallet(t, db, cashctrl, aliceCond.Address(), coin.NewCoin(900, 0, "IOV"))
				assertWallet(t, db, cashctrl, vault.Account(), renewed)
				assertWallet(t, db, cashctrl, reserve.Account(), coin.NewCoin(498, 224657535, "IOV"))

				total, err := vault.NewController(cashctrl).TotalPrincipal(db)
				if err != nil {
					t.Fatalf("total principal: %s", err)
				}
				if !total.Equals(renewed) {
					t.Fatalf("want %q tracked, got %q", renewed, total)
				}

				assertDeposit(t, db, 1, ledger.Deposit_ManualRenewed)
				d := assertDeposit(t, db, 2, ledger.Deposit_Active)
				if d.PlanId != 2 || d.AprBps != 500 {
					t.Fatalf("new plan terms not applied: %+v", d)
				}
				if !d.Principal.Equals(renewed) {
					t.Fatalf("interest not compounded: %q", d.Principal)
				}
				if d.StartAt != maturity || d.MaturityAt != maturity+31536000 {
					t.Fatalf("unexpected schedule: %+v", d)
				}
			},
		},
		"auto renewal waits for the grace period": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &OpenDepositMsg{
							Metadata: &weave.Metadata{Schema: 1},
							PlanId:   1,
							Amount:   coin.NewCoin(100, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					Now:         start,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{strangerCond},
					Tx: &weavetest.Tx{
						Msg: &AutoRenewDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
						},
					},
					BlockHeight: 101,
					Now:         maturity,
					WantErr:     ErrGracePeriod,
				},
				{
					Conditions: []weave.Condition{strangerCond},
					Tx: &weavetest.Tx{
						Msg: &AutoRenewDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
						},
					},
					BlockHeight: 102,
					Now:         maturity + weave.UnixTime(defaultGracePeriod) - 1,
					WantErr:     ErrGracePeriod,
				},
				{
					// The plan is repriced before the renewal so that a
					// snapshot carried over from the old record can be told
					// apart from a plan that simply never changed.
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &plan.UpdatePlanMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							PlanId:     1,
							AprBps:     200,
							MinDeposit: coin.NewCoin(10, 0, "IOV"),
							MaxDeposit: coin.NewCoin(10000, 0, "IOV"),
							PenaltyBps: 150,
							Active:     true,
						},
					},
					BlockHeight: 103,
					Now:         maturity + weave.UnixTime(defaultGracePeriod) - 1,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{strangerCond},
					Tx: &weavetest.Tx{
						Msg: &AutoRenewDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
						},
					},
					BlockHeight: 104,
					Now:         maturity + weave.UnixTime(defaultGracePeriod),
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &OpenDepositMsg{
							Metadata: &weave.Metadata{Schema: 1},
							PlanId:   1,
							Amount:   coin.NewCoin(100, 0, "IOV"),
						},
					},
					BlockHeight: 105,
					Now:         maturity + weave.UnixTime(defaultGracePeriod),
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore, cashctrl cash.Controller) {
				renewed, err := coin.NewCoin(100, 0, "IOV").Add(interest)
				if err != nil {
					t.Fatalf("renewed principal: %s", err)
				}

				assertDeposit(t, db, 1, ledger.Deposit_AutoRenewed)
				d := assertDeposit(t, db, 2, ledger.Deposit_Active)
				if d.PlanId != 1 || d.AprBps != 720 || d.PenaltyBps != 150 {
					t.Fatalf("original terms not kept: %+v", d)
				}
				if !d.Principal.Equals(renewed) {
					t.Fatalf("interest not compounded: %q", d.Principal)
				}
				renewedAt := maturity + weave.UnixTime(defaultGracePeriod)
				if d.StartAt != renewedAt || d.MaturityAt != renewedAt+tenor {
					t.Fatalf("unexpected schedule: %+v", d)
				}
				// A deposit opened after the reprice gets the new rate.
				fresh := assertDeposit(t, db, 3, ledger.Deposit_Active)
				if fresh.AprBps != 200 {
					t.Fatalf("plan edit not applied to new deposits: %+v", fresh)
				}
			},
		},
		"a paused vault blocks new deposits": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &vault.SetPauseMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Paused:   true,
						},
					},
					BlockHeight: 100,
					Now:         start,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &OpenDepositMsg{
							Metadata: &weave.Metadata{Schema: 1},
							PlanId:   1,
							Amount:   coin.NewCoin(100, 0, "IOV"),
						},
					},
					BlockHeight: 101,
					Now:         start,
					WantErr:     vault.ErrPaused,
				},
			},
		},
		"a finalized deposit cannot be withdrawn again": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &OpenDepositMsg{
							Metadata: &weave.Metadata{Schema: 1},
							PlanId:   1,
							Amount:   coin.NewCoin(100, 0, "IOV"),
						},
					},
					BlockHeight: 100,
					Now:         start,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
						},
					},
					BlockHeight: 101,
					Now:         maturity,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
						},
					},
					BlockHeight: 102,
					Now:         maturity + 1,
					WantErr:     ledger.ErrDepositNotActive,
				},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "plan", "vault", "reserve", "ledger", "termdeposit", "cash")

			cashctrl := cash.NewController(cash.NewBucket())

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			plan.RegisterRoutes(rt, auth)
			vault.RegisterRoutes(rt, auth)
			RegisterRoutes(rt, auth, cashctrl)

			configurations := []struct {
				pkg  string
				conf gconf.Configuration
			}{
				{"plan", &plan.Configuration{
					Metadata: &weave.Metadata{Schema: 1},
					Owner:    adminCond.Address(),
				}},
				{"vault", &vault.Configuration{
					Metadata:     &weave.Metadata{Schema: 1},
					Owner:        adminCond.Address(),
					Orchestrator: Authority(),
					Ticker:       "IOV",
				}},
				{"reserve", &reserve.Configuration{
					Metadata:     &weave.Metadata{Schema: 1},
					Owner:        adminCond.Address(),
					Orchestrator: Authority(),
					FeeReceiver:  feesCond.Address(),
				}},
				{"ledger", &ledger.Configuration{
					Metadata:     &weave.Metadata{Schema: 1},
					Owner:        adminCond.Address(),
					Orchestrator: Authority(),
				}},
				{"termdeposit", &Configuration{
					Metadata:    &weave.Metadata{Schema: 1},
					Owner:       adminCond.Address(),
					GracePeriod: defaultGracePeriod,
				}},
			}
			for _, c := range configurations {
				if err := gconf.Save(db, c.pkg, c.conf); err != nil {
					t.Fatalf("cannot save %q configuration: %s", c.pkg, err)
				}
			}

			if err := cashctrl.CoinMint(db, aliceCond.Address(), coin.NewCoin(1000, 0, "IOV")); err != nil {
				t.Fatalf("cannot mint: %s", err)
			}
			if err := cashctrl.CoinMint(db, reserve.Account(), coin.NewCoin(500, 0, "IOV")); err != nil {
				t.Fatalf("cannot fund the pool: %s", err)
			}

			setupCtx := weave.WithHeight(context.Background(), 1)
			setupCtx = weave.WithChainID(setupCtx, "testchain-123")
			setupCtx = auth.SetConditions(setupCtx, adminCond)
			planTx := &weavetest.Tx{
				Msg: &plan.CreatePlanMsg{
					Metadata:     &weave.Metadata{Schema: 1},
					TenorSeconds: tenor,
					AprBps:       720,
					MinDeposit:   coin.NewCoin(10, 0, "IOV"),
					MaxDeposit:   coin.NewCoin(10000, 0, "IOV"),
					PenaltyBps:   150,
				},
			}
			if _, err := rt.Deliver(setupCtx, db, planTx); err != nil {
				t.Fatalf("cannot register plan: %s", err)
			}

			for i, req := range tc.Requests {
				ctx := weave.WithHeight(context.Background(), req.BlockHeight)
				ctx = weave.WithChainID(ctx, "testchain-123")
				ctx = weave.WithBlockTime(ctx, req.Now.Time())
				ctx = auth.SetConditions(ctx, req.Conditions...)

				cache := db.CacheWrap()
				if _, err := rt.Check(ctx, cache, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d check error: want %q, got %+v", i, req.WantErr, err)
				}
				cache.Discard()
				if _, err := rt.Deliver(ctx, db, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d deliver error: want %q, got %+v", i, req.WantErr, err)
				}
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db, cashctrl)
			}
		})
	}
}

// TestPrincipalInvariant walks a deposit population through every
// lifecycle operation and verifies after each step that the custody
// total tracked by the vault equals the sum of principal over all
// active deposits.
func TestPrincipalInvariant(t *testing.T) {
	var (
		adminCond    = weavetest.NewCondition()
		aliceCond    = weavetest.NewCondition()
		strangerCond = weavetest.NewCondition()
		feesCond     = weavetest.NewCondition()
	)

	const (
		tenor = 7776000
		grace = int64(defaultGracePeriod)
	)
	start := weave.UnixTime(1600000000)

	db := store.MemStore()
	migration.MustInitPkg(db, "plan", "vault", "reserve", "ledger", "termdeposit", "cash")

	cashctrl := cash.NewController(cash.NewBucket())

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	plan.RegisterRoutes(rt, auth)
	vault.RegisterRoutes(rt, auth)
	RegisterRoutes(rt, auth, cashctrl)

	configurations := []struct {
		pkg  string
		conf gconf.Configuration
	}{
		{"plan", &plan.Configuration{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    adminCond.Address(),
		}},
		{"vault", &vault.Configuration{
			Metadata:     &weave.Metadata{Schema: 1},
			Owner:        adminCond.Address(),
			Orchestrator: Authority(),
			Ticker:       "IOV",
		}},
		{"reserve", &reserve.Configuration{
			Metadata:     &weave.Metadata{Schema: 1},
			Owner:        adminCond.Address(),
			Orchestrator: Authority(),
			FeeReceiver:  feesCond.Address(),
		}},
		{"ledger", &ledger.Configuration{
			Metadata:     &weave.Metadata{Schema: 1},
			Owner:        adminCond.Address(),
			Orchestrator: Authority(),
		}},
		{"termdeposit", &Configuration{
			Metadata:    &weave.Metadata{Schema: 1},
			Owner:       adminCond.Address(),
			GracePeriod: defaultGracePeriod,
		}},
	}
	for _, c := range configurations {
		if err := gconf.Save(db, c.pkg, c.conf); err != nil {
			t.Fatalf("cannot save %q configuration: %s", c.pkg, err)
		}
	}

	if err := cashctrl.CoinMint(db, aliceCond.Address(), coin.NewCoin(1000, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}
	if err := cashctrl.CoinMint(db, reserve.Account(), coin.NewCoin(500, 0, "IOV")); err != nil {
		t.Fatalf("cannot fund the pool: %s", err)
	}

	setupCtx := weave.WithHeight(context.Background(), 1)
	setupCtx = weave.WithChainID(setupCtx, "testchain-123")
	setupCtx = auth.SetConditions(setupCtx, adminCond)
	planTx := &weavetest.Tx{
		Msg: &plan.CreatePlanMsg{
			Metadata:     &weave.Metadata{Schema: 1},
			TenorSeconds: tenor,
			AprBps:       720,
			MinDeposit:   coin.NewCoin(10, 0, "IOV"),
			MaxDeposit:   coin.NewCoin(10000, 0, "IOV"),
			PenaltyBps:   150,
		},
	}
	if _, err := rt.Deliver(setupCtx, db, planTx); err != nil {
		t.Fatalf("cannot register plan: %s", err)
	}

	steps := []struct {
		cond weave.Condition
		msg  weave.Msg
		now  weave.UnixTime
	}{
		{aliceCond, &OpenDepositMsg{Metadata: &weave.Metadata{Schema: 1}, PlanId: 1, Amount: coin.NewCoin(100, 0, "IOV")}, start},
		{aliceCond, &OpenDepositMsg{Metadata: &weave.Metadata{Schema: 1}, PlanId: 1, Amount: coin.NewCoin(50, 0, "IOV")}, start + 10},
		{aliceCond, &EarlyWithdrawDepositMsg{Metadata: &weave.Metadata{Schema: 1}, DepositId: 2}, start + tenor/2},
		{strangerCond, &AutoRenewDepositMsg{Metadata: &weave.Metadata{Schema: 1}, DepositId: 1}, start + weave.UnixTime(int64(tenor)+grace)},
		{aliceCond, &RenewDepositMsg{Metadata: &weave.Metadata{Schema: 1}, DepositId: 3, PlanId: 1}, start + weave.UnixTime(int64(2*tenor)+grace)},
		{aliceCond, &WithdrawDepositMsg{Metadata: &weave.Metadata{Schema: 1}, DepositId: 4}, start + weave.UnixTime(int64(3*tenor)+grace)},
	}
	for i, step := range steps {
		ctx := weave.WithHeight(context.Background(), int64(100+i))
		ctx = weave.WithChainID(ctx, "testchain-123")
		ctx = weave.WithBlockTime(ctx, step.now.Time())
		ctx = auth.SetConditions(ctx, step.cond)

		tx := &weavetest.Tx{Msg: step.msg}
		if _, err := rt.Deliver(ctx, db, tx); err != nil {
			t.Fatalf("step %d (%s): %+v", i, step.msg.Path(), err)
		}
		assertPrincipalInvariant(t, db, cashctrl)
	}
}

func assertPrincipalInvariant(t *testing.T, db weave.KVStore, cashctrl cash.Controller) {
	t.Helper()
	deposits := ledger.NewController()
	active := coin.NewCoin(0, 0, "IOV")
	for id := int64(1); ; id++ {
		d, err := deposits.Get(db, id)
		if errors.ErrNotFound.Is(err) {
			break
		}
		if err != nil {
			t.Fatalf("deposit %d: %s", id, err)
		}
		if d.Status != ledger.Deposit_Active {
			continue
		}
		active, err = active.Add(d.Principal)
		if err != nil {
			t.Fatalf("sum principal: %s", err)
		}
	}
	total, err := vault.NewController(cashctrl).TotalPrincipal(db)
	if err != nil {
		t.Fatalf("total principal: %s", err)
	}
	if active.IsZero() {
		if !total.IsZero() {
			t.Fatalf("no active deposits but vault tracks %q", total)
		}
		return
	}
	if !total.Equals(active) {
		t.Fatalf("vault tracks %q, active deposits hold %q", total, active)
	}
}

func assertWallet(t *testing.T, db weave.KVStore, cashctrl cash.Controller, addr weave.Address, want coin.Coin) {
	t.Helper()
	coins, err := cashctrl.Balance(db, addr)
	if err != nil {
		t.Fatalf("balance of %q: %s", addr, err)
	}
	for _, c := range coins {
		if c.Ticker != want.Ticker {
			continue
		}
		if !c.Equals(want) {
			t.Fatalf("want %q in %q wallet, got %q", want, addr, c)
		}
		return
	}
	if !want.IsZero() {
		t.Fatalf("wallet %q holds no %q", addr, want.Ticker)
	}
}

func assertDeposit(t *testing.T, db weave.KVStore, id int64, want ledger.Deposit_Status) *ledger.Deposit {
	t.Helper()
	d, err := ledger.NewController().Get(db, id)
	if err != nil {
		t.Fatalf("deposit %d: %s", id, err)
	}
	if d.Status != want {
		t.Fatalf("want deposit %d to be %s, got %s", id, want, d.Status)
	}
	return d
}
