package plan

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
	)

	cases := map[string]struct {
		Requests  []Request
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"only the configuration owner can create a plan": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &CreatePlanMsg{
								Metadata:     &weave.Metadata{Schema: 1},
								TenorSeconds: 7776000,
								AprBps:       720,
								MinDeposit:   coin.NewCoin(1, 0, "IOV"),
								PenaltyBps:   300,
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
							Msg: &CreatePlanMsg{
								Metadata:     &weave.Metadata{Schema: 1},
								TenorSeconds: 7776000,
								AprBps:       720,
								MinDeposit:   coin.NewCoin(1, 0, "IOV"),
								PenaltyBps:   300,
							},
						}
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				p, err := LoadPlan(db, 1)
				if err != nil {
					t.Fatalf("cannot load plan: %s", err)
				}
				if p.Id != 1 {
					t.Fatalf("want plan id 1, got %d", p.Id)
				}
				if !p.Active {
					t.Fatal("a new plan must be active")
				}
				if p.TenorSeconds != 7776000 {
					t.Fatalf("unexpected tenor: %d", p.TenorSeconds)
				}
			},
		},
		"plan ids are sequential": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &CreatePlanMsg{
								Metadata:     &weave.Metadata{Schema: 1},
								TenorSeconds: 2592000,
								AprBps:       250,
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
							Msg: &CreatePlanMsg{
								Metadata:     &weave.Metadata{Schema: 1},
								TenorSeconds: 31536000,
								AprBps:       1200,
							},
						}
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				for _, id := range []int64{1, 2} {
					p, err := LoadPlan(db, id)
					if err != nil {
						t.Fatalf("cannot load plan %d: %s", id, err)
					}
					if p.Id != id {
						t.Fatalf("want plan id %d, got %d", id, p.Id)
					}
				}
			},
		},
		"a plan with zero tenor is rejected": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &CreatePlanMsg{
								Metadata:     &weave.Metadata{Schema: 1},
								TenorSeconds: 0,
								AprBps:       720,
							},
						}
					},
					BlockHeight: 100,
					WantErr:     ErrInvalidTenor,
				},
			},
		},
		"a plan with out of range interest rate is rejected": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &CreatePlanMsg{
								Metadata:     &weave.Metadata{Schema: 1},
								TenorSeconds: 7776000,
								AprBps:       10000,
							},
						}
					},
					BlockHeight: 100,
					WantErr:     ErrInvalidAPR,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &CreatePlanMsg{
								Metadata:     &weave.Metadata{Schema: 1},
								TenorSeconds: 7776000,
								AprBps:       0,
							},
						}
					},
					BlockHeight: 101,
					WantErr:     ErrInvalidAPR,
				},
			},
		},
		"a plan with out of range penalty rate is rejected": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &CreatePlanMsg{
								Metadata:     &weave.Metadata{Schema: 1},
								TenorSeconds: 7776000,
								AprBps:       720,
								PenaltyBps:   10000,
							},
						}
					},
					BlockHeight: 100,
					WantErr:     ErrInvalidPenalty,
				},
			},
		},
		"update overwrites all mutable attributes but never the tenor": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &CreatePlanMsg{
								Metadata:     &weave.Metadata{Schema: 1},
								TenorSeconds: 7776000,
								AprBps:       720,
								MinDeposit:   coin.NewCoin(1, 0, "IOV"),
								PenaltyBps:   300,
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
							Msg: &UpdatePlanMsg{
								Metadata:   &weave.Metadata{Schema: 1},
								PlanId:     1,
								AprBps:     550,
								MinDeposit: coin.NewCoin(5, 0, "IOV"),
								MaxDeposit: coin.NewCoin(5000, 0, "IOV"),
								PenaltyBps: 100,
								Active:     false,
							},
						}
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				p, err := LoadPlan(db, 1)
				if err != nil {
					t.Fatalf("cannot load plan: %s", err)
				}
				if p.TenorSeconds != 7776000 {
					t.Fatalf("tenor must not change: %d", p.TenorSeconds)
				}
				if p.AprBps != 550 || p.PenaltyBps != 100 {
					t.Fatalf("unexpected rates: %d/%d", p.AprBps, p.PenaltyBps)
				}
				if p.Active {
					t.Fatal("plan must be deactivated")
				}
				if !p.MaxDeposit.Equals(coin.NewCoin(5000, 0, "IOV")) {
					t.Fatalf("unexpected max deposit: %q", p.MaxDeposit)
				}
			},
		},
		"only the configuration owner can update a plan": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &CreatePlanMsg{
								Metadata:     &weave.Metadata{Schema: 1},
								TenorSeconds: 7776000,
								AprBps:       720,
							},
						}
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &UpdatePlanMsg{
								Metadata: &weave.Metadata{Schema: 1},
								PlanId:   1,
								AprBps:   9999,
							},
						}
					},
					BlockHeight: 101,
					WantErr:     errors.ErrUnauthorized,
				},
			},
		},
		"updating an unknown plan fails": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &UpdatePlanMsg{
								Metadata: &weave.Metadata{Schema: 1},
								PlanId:   666,
								AprBps:   100,
							},
						}
					},
					BlockHeight: 100,
					WantErr:     errors.ErrNotFound,
				},
			},
		},
		"configuration owner can be rotated": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &UpdateConfigurationMsg{
								Metadata: &weave.Metadata{Schema: 1},
								Patch: &Configuration{
									Metadata: &weave.Metadata{Schema: 1},
									Owner:    aliceCond.Address(),
								},
							},
						}
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &CreatePlanMsg{
								Metadata:     &weave.Metadata{Schema: 1},
								TenorSeconds: 7776000,
								AprBps:       720,
							},
						}
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: func() weave.Tx {
						return &weavetest.Tx{
							Msg: &CreatePlanMsg{
								Metadata:     &weave.Metadata{Schema: 1},
								TenorSeconds: 7776000,
								AprBps:       720,
							},
						}
					},
					BlockHeight: 102,
					WantErr:     errors.ErrUnauthorized,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				conf, err := loadConf(db)
				if err != nil {
					t.Fatalf("load conf: %s", err)
				}
				if !conf.Owner.Equals(aliceCond.Address()) {
					t.Fatalf("owner not rotated: %q", conf.Owner)
				}
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "plan")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			RegisterRoutes(rt, auth)

			config := Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    adminCond.Address(),
			}
			if err := gconf.Save(db, "plan", &config); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
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
				tc.AfterTest(t, db)
			}
		})
	}
}

func TestLoadPlanUnknownID(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "plan")

	p, err := LoadPlan(db, 12345)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if p.Id != 0 {
		t.Fatalf("want a zero value plan, got id %d", p.Id)
	}
}
