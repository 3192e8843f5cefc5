package vault

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
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
		orchCond  = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Requests  []Request
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"only the owner can pause the vault": {
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
			AfterTest: func(t *testing.T, db weave.KVStore) {
				conf, err := loadConf(db)
				if err != nil {
					t.Fatalf("load conf: %s", err)
				}
				if !conf.Paused {
					t.Fatal("vault must be paused")
				}
			},
		},
		"pause can be lifted again": {
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
							Msg: &SetPauseMsg{
								Metadata: &weave.Metadata{Schema: 1},
								Paused:   false,
							},
						}
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				conf, err := loadConf(db)
				if err != nil {
					t.Fatalf("load conf: %s", err)
				}
				if conf.Paused {
					t.Fatal("vault must not be paused")
				}
			},
		},
		"orchestrator can be rotated while the vault is paused": {
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
							Msg: &UpdateConfigurationMsg{
								Metadata: &weave.Metadata{Schema: 1},
								Patch: &Configuration{
									Metadata:     &weave.Metadata{Schema: 1},
									Orchestrator: aliceCond.Address(),
								},
							},
						}
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				conf, err := loadConf(db)
				if err != nil {
					t.Fatalf("load conf: %s", err)
				}
				if !conf.Orchestrator.Equals(aliceCond.Address()) {
					t.Fatalf("orchestrator not rotated: %q", conf.Orchestrator)
				}
				if !conf.Paused {
					t.Fatal("a configuration patch must not clear the pause")
				}
				// The owner field was not patched and must survive.
				if !conf.Owner.Equals(adminCond.Address()) {
					t.Fatalf("owner must not change: %q", conf.Owner)
				}
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "vault")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			RegisterRoutes(rt, auth)

			config := Configuration{
				Metadata:     &weave.Metadata{Schema: 1},
				Owner:        adminCond.Address(),
				Orchestrator: orchCond.Address(),
				Ticker:       "IOV",
			}
			if err := gconf.Save(db, "vault", &config); err != nil {
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
