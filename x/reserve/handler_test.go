package reserve

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
)

func TestUseCases(t *testing.T) {
	type Request struct {
		Conditions []weave.Condition
		// Tx is a constructor because handlers may modify the
		// message in place. Each execution gets a fresh instance.
		Tx          func() weave.Tx
		BlockHeight int64
		WantErr     *errors.Error
	}

	var (
		adminCond = weavetest.NewCondition()
		aliceCond = weavetest.NewCondition()
		orchCond  = weavetest.NewCondition()
		feesCond  = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Requests  []Request
		AfterTest func(t *testing.T, db weave.KVStore, cashctrl cash.Controller)
	}{
		"only the owner can fund the pool": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &FundMsg{
								Metadata: &weave.Metadata{Schema: 1},
								Amount:   coin.NewCoin(10, 0, "IOV"),
							},
						}
					},
					BlockHeight: 100,
					WantErr:     errors.ErrUnauthorized,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &FundMsg{
								Metadata: &weave.Metadata{Schema: 1},
								Amount:   coin.NewCoin(10, 0, "IOV"),
							},
						}
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore, cashctrl cash.Controller) {
				assertWallet(t, db, cashctrl, Account(), coin.NewCoin(10, 0, "IOV"))
				assertWallet(t, db, cashctrl, adminCond.Address(), coin.NewCoin(90, 0, "IOV"))
			},
		},
		"owner can drain funded pool back": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &FundMsg{
								Metadata: &weave.Metadata{Schema: 1},
								Amount:   coin.NewCoin(10, 0, "IOV"),
							},
						}
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &DrainMsg{
								Metadata: &weave.Metadata{Schema: 1},
								Amount:   coin.NewCoin(4, 0, "IOV"),
							},
						}
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore, cashctrl cash.Controller) {
				assertWallet(t, db, cashctrl, Account(), coin.NewCoin(6, 0, "IOV"))
				assertWallet(t, db, cashctrl, adminCond.Address(), coin.NewCoin(94, 0, "IOV"))
			},
		},
		"draining more than the pool holds fails": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &FundMsg{
								Metadata: &weave.Metadata{Schema: 1},
								Amount:   coin.NewCoin(10, 0, "IOV"),
							},
						}
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &DrainMsg{
								Metadata: &weave.Metadata{Schema: 1},
								Amount:   coin.NewCoin(11, 0, "IOV"),
							},
						}
					},
					BlockHeight: 101,
					WantErr:     ErrInsufficientBalance,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore, cashctrl cash.Controller) {
				assertWallet(t, db, cashctrl, Account(), coin.NewCoin(10, 0, "IOV"))
			},
		},
		"only the owner can pause the reserve": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &SetPauseMsg{
								Metadata: &weave.Metadata{Schema: 1},
								Paused:   true,
							},
						}
					},
					BlockHeight: 100,
					WantErr:     errors.ErrUnauthorized,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &SetPauseMsg{
								Metadata: &weave.Metadata{Schema: 1},
								Paused:   true,
							},
						}
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore, cashctrl cash.Controller) {
				conf, err := loadConf(db)
				if err != nil {
					t.Fatalf("load conf: %s", err)
				}
				if !conf.Paused {
					t.Fatal("reserve must be paused")
				}
			},
		},
		"funding works while paused": {
			// A pause blocks payouts only. The owner can still top up
			// the pool to restore solvency before lifting the pause.
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &SetPauseMsg{
								Metadata: &weave.Metadata{Schema: 1},
								Paused:   true,
							},
						}
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &FundMsg{
								Metadata: &weave.Metadata{Schema: 1},
								Amount:   coin.NewCoin(10, 0, "IOV"),
							},
						}
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore, cashctrl cash.Controller) {
				assertWallet(t, db, cashctrl, Account(), coin.NewCoin(10, 0, "IOV"))
			},
		},
		"fee receiver can be rotated via configuration patch": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &UpdateConfigurationMsg{
								Metadata: &weave.Metadata{Schema: 1},
								Patch: &Configuration{
									Metadata:    &weave.Metadata{Schema: 1},
									FeeReceiver: aliceCond.Address(),
								},
							},
						}
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore, cashctrl cash.Controller) {
				conf, err := loadConf(db)
				if err != nil {
					t.Fatalf("load conf: %s", err)
				}
				if !conf.FeeReceiver.Equals(aliceCond.Address()) {
					t.Fatalf("fee receiver not rotated: %q", conf.FeeReceiver)
				}
				if !conf.Orchestrator.Equals(orchCond.Address()) {
					t.Fatalf("orchestrator must not change: %q", conf.Orchestrator)
				}
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "reserve", "cash")

			cashctrl := cash.NewController(cash.NewBucket())

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			RegisterRoutes(rt, auth, cashctrl)

			config := Configuration{
				Metadata:     &weave.Metadata{Schema: 1},
				Owner:        adminCond.Address(),
				Orchestrator: orchCond.Address(),
				FeeReceiver:  feesCond.Address(),
			}
			if err := gconf.Save(db, "reserve", &config); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}
			if err := cashctrl.CoinMint(db, adminCond.Address(), coin.NewCoin(100, 0, "IOV")); err != nil {
				t.Fatalf("cannot mint: %s", err)
			}

			for i, req := range tc.Requests {
				ctx := weave.WithHeight(context.Background(), req.BlockHeight)
				ctx = weave.WithChainID(ctx, "testchain-123")
				ctx = auth.SetConditions(ctx, req.Conditions...)

				cache := db.CacheWrap()
				if _, err := rt.Check(ctx, cache, req.Tx()); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d check error: want %q, got %+v", i, req.WantErr, err)
				}
				cache.Discard()
				if _, err := rt.Deliver(ctx, db, req.Tx()); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d deliver error: want %q, got %+v", i, req.WantErr, err)
				}
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db, cashctrl)
			}
		})
	}
}
