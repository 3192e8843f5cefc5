package ledger

import (
	"testing"

	weave "github.com/iov-one/weave"
	coin "github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
)

func newTestController(t testing.TB, orchestrator weave.Address) (weave.KVStore, Controller) {
	t.Helper()

	db := store.MemStore()
	migration.MustInitPkg(db, "ledger")

	conf := Configuration{
		Metadata:     &weave.Metadata{Schema: 1},
		Owner:        weavetest.NewCondition().Address(),
		Orchestrator: orchestrator,
	}
	if err := gconf.Save(db, "ledger", &conf); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}
	return db, NewController()
}

func activeDeposit(owner weave.Address) *Deposit {
	return &Deposit{
		Metadata:   &weave.Metadata{Schema: 1},
		PlanId:     1,
		Owner:      owner,
		Principal:  coin.NewCoin(100, 0, "IOV"),
		StartAt:    1000,
		MaturityAt: 1000 + 7776000,
		AprBps:     720,
		PenaltyBps: 150,
	}
}

func TestMintAssignsSequentialIDs(t *testing.T) {
	var (
		orch  = weavetest.NewCondition().Address()
		alice = weavetest.NewCondition().Address()
	)
	db, ctrl := newTestController(t, orch)

	first, err := ctrl.Mint(db, orch, activeDeposit(alice))
	if err != nil {
		t.Fatalf("mint: %s", err)
	}
	second, err := ctrl.Mint(db, orch, activeDeposit(alice))
	if err != nil {
		t.Fatalf("mint: %s", err)
	}
	if first != 1 || second != 2 {
		t.Fatalf("want ids 1 and 2, got %d and %d", first, second)
	}

	d, err := ctrl.Get(db, first)
	if err != nil {
		t.Fatalf("get: %s", err)
	}
	if d.Status != Deposit_Active {
		t.Fatalf("minted deposit must be active, got %s", d.Status)
	}
}

func TestOnlyOrchestratorCanMint(t *testing.T) {
	var (
		orch  = weavetest.NewCondition().Address()
		alice = weavetest.NewCondition().Address()
	)
	db, ctrl := newTestController(t, orch)

	if _, err := ctrl.Mint(db, alice, activeDeposit(alice)); !ErrOnlyOrchestrator.Is(err) {
		t.Fatalf("want orchestrator error, got %+v", err)
	}
	if err := ctrl.UpdateStatus(db, alice, 1, Deposit_Withdrawn); !ErrOnlyOrchestrator.Is(err) {
		t.Fatalf("want orchestrator error, got %+v", err)
	}
}

func TestGetUnknownDeposit(t *testing.T) {
	var (
		orch = weavetest.NewCondition().Address()
	)
	db, ctrl := newTestController(t, orch)

	if _, err := ctrl.Get(db, 12345); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found error, got %+v", err)
	}
}

func TestFinalizedDepositIsTerminal(t *testing.T) {
	var (
		orch  = weavetest.NewCondition().Address()
		alice = weavetest.NewCondition().Address()
	)
	db, ctrl := newTestController(t, orch)

	id, err := ctrl.Mint(db, orch, activeDeposit(alice))
	if err != nil {
		t.Fatalf("mint: %s", err)
	}
	if err := ctrl.UpdateStatus(db, orch, id, Deposit_Withdrawn); err != nil {
		t.Fatalf("update status: %s", err)
	}

	for _, status := range []Deposit_Status{Deposit_Withdrawn, Deposit_ManualRenewed, Deposit_AutoRenewed} {
		if err := ctrl.UpdateStatus(db, orch, id, status); !ErrDepositNotActive.Is(err) {
			t.Fatalf("want not active error for %s, got %+v", status, err)
		}
	}
}

func TestUpdateStatusRejectsActiveTarget(t *testing.T) {
	var (
		orch  = weavetest.NewCondition().Address()
		alice = weavetest.NewCondition().Address()
	)
	db, ctrl := newTestController(t, orch)

	id, err := ctrl.Mint(db, orch, activeDeposit(alice))
	if err != nil {
		t.Fatalf("mint: %s", err)
	}
	if err := ctrl.UpdateStatus(db, orch, id, Deposit_Active); !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %+v", err)
	}
}
