package ledger

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
		Conditions  []weave.Condition
		Tx          weave.Tx
		BlockHeight int64
		WantErr     *errors.Error
	}

	var (
		adminCond = weavetest.NewCondition()
		aliceCond = weavetest.NewCondition()
		bobCond   = weavetest.NewCondition()
		carlCond  = weavetest.NewCondition()
		orchCond  = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Requests  []Request
		AfterTest func(t *testing.T, db weave.KVStore, ctrl Controller)
	}{
		"owner can transfer an active deposit": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &TransferDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore, ctrl Controller) {
				d, err := ctrl.Get(db, 1)
				if err != nil {
					t.Fatalf("get: %s", err)
				}
				if !d.Owner.Equals(bobCond.Address()) {
					t.Fatalf("deposit not transferred: %q", d.Owner)
				}
			},
		},
		"a stranger cannot transfer": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &TransferDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 100,
					WantErr:     errors.ErrUnauthorized,
				},
			},
		},
		"approved address can transfer once": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &ApproveTransferMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
							Approved:  bobCond.Address(),
						},
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &TransferDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
							Recipient: carlCond.Address(),
						},
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
				// The transfer cleared the approval.
				{
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &TransferDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 102,
					WantErr:     errors.ErrUnauthorized,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore, ctrl Controller) {
				d, err := ctrl.Get(db, 1)
				if err != nil {
					t.Fatalf("get: %s", err)
				}
				if !d.Owner.Equals(carlCond.Address()) {
					t.Fatalf("deposit not transferred: %q", d.Owner)
				}
				if len(d.Approved) != 0 {
					t.Fatalf("approval must be cleared, got %q", d.Approved)
				}
			},
		},
		"only the owner can approve": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &ApproveTransferMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
							Approved:  bobCond.Address(),
						},
					},
					BlockHeight: 100,
					WantErr:     errors.ErrUnauthorized,
				},
			},
		},
		"an empty approved address revokes": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &ApproveTransferMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
							Approved:  bobCond.Address(),
						},
					},
					BlockHeight: 100,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &ApproveTransferMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
						},
					},
					BlockHeight: 101,
					WantErr:     nil,
				},
				{
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &TransferDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 1,
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 102,
					WantErr:     errors.ErrUnauthorized,
				},
			},
		},
		"a finalized deposit cannot be transferred": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &TransferDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 2,
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 100,
					WantErr:     ErrDepositNotActive,
				},
			},
		},
		"transfer of an unknown deposit fails": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &TransferDepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							DepositId: 666,
							Recipient: bobCond.Address(),
						},
					},
					BlockHeight: 100,
					WantErr:     errors.ErrNotFound,
				},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "ledger")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			RegisterRoutes(rt, auth)

			config := Configuration{
				Metadata:     &weave.Metadata{Schema: 1},
				Owner:        adminCond.Address(),
				Orchestrator: orchCond.Address(),
			}
			if err := gconf.Save(db, "ledger", &config); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}

			// Deposit 1 is active and owned by alice, deposit 2 was
			// already withdrawn.
			ctrl := NewController()
			if _, err := ctrl.Mint(db, orchCond.Address(), activeDeposit(aliceCond.Address())); err != nil {
				t.Fatalf("mint: %s", err)
			}
			if _, err := ctrl.Mint(db, orchCond.Address(), activeDeposit(aliceCond.Address())); err != nil {
				t.Fatalf("mint: %s", err)
			}
			if err := ctrl.UpdateStatus(db, orchCond.Address(), 2, Deposit_Withdrawn); err != nil {
				t.Fatalf("update status: %s", err)
			}

			for i, req := range tc.Requests {
				ctx := weave.WithHeight(context.Background(), req.BlockHeight)
				ctx = weave.WithChainID(ctx, "testchain-123")
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
				tc.AfterTest(t, db, ctrl)
			}
		})
	}
}
