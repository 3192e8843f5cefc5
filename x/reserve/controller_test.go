package reserve

import (
	"testing"

	weave "github.com/iov-one/weave"
	coin "github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
)

func newTestController(t testing.TB, orchestrator, feeReceiver weave.Address) (weave.KVStore, cash.BaseController, Controller) {
	t.Helper()

	db := store.MemStore()
	migration.MustInitPkg(db, "reserve", "cash")

	cashctrl := cash.NewController(cash.NewBucket())
	ctrl := NewController(cashctrl)

	conf := Configuration{
		Metadata:     &weave.Metadata{Schema: 1},
		Owner:        weavetest.NewCondition().Address(),
		Orchestrator: orchestrator,
		FeeReceiver:  feeReceiver,
	}
	if err := gconf.Save(db, "reserve", &conf); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}
	return db, cashctrl, ctrl
}

func TestPayInterestMovesPoolFunds(t *testing.T) {
	var (
		orch  = weavetest.NewCondition().Address()
		fees  = weavetest.NewCondition().Address()
		alice = weavetest.NewCondition().Address()
	)
	db, cashctrl, ctrl := newTestController(t, orch, fees)

	if err := cashctrl.CoinMint(db, Account(), coin.NewCoin(100, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}

	if err := ctrl.PayInterest(db, orch, alice, coin.NewCoin(40, 0, "IOV")); err != nil {
		t.Fatalf("pay interest: %s", err)
	}
	assertWallet(t, db, cashctrl, alice, coin.NewCoin(40, 0, "IOV"))
	assertWallet(t, db, cashctrl, Account(), coin.NewCoin(60, 0, "IOV"))
}

func TestUnderfundedPoolFailsPayout(t *testing.T) {
	var (
		orch  = weavetest.NewCondition().Address()
		fees  = weavetest.NewCondition().Address()
		alice = weavetest.NewCondition().Address()
	)
	db, cashctrl, ctrl := newTestController(t, orch, fees)

	if err := cashctrl.CoinMint(db, Account(), coin.NewCoin(10, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}

	err := ctrl.PayInterest(db, orch, alice, coin.NewCoin(11, 0, "IOV"))
	if !ErrInsufficientBalance.Is(err) {
		t.Fatalf("want insufficient balance error, got %+v", err)
	}
	// The pool was not touched.
	assertWallet(t, db, cashctrl, Account(), coin.NewCoin(10, 0, "IOV"))
}

func TestDistributePenaltyRoutesToFeeReceiver(t *testing.T) {
	var (
		orch = weavetest.NewCondition().Address()
		fees = weavetest.NewCondition().Address()
	)
	db, cashctrl, ctrl := newTestController(t, orch, fees)

	if err := cashctrl.CoinMint(db, Account(), coin.NewCoin(100, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}

	if err := ctrl.DistributePenalty(db, orch, coin.NewCoin(3, 0, "IOV")); err != nil {
		t.Fatalf("distribute penalty: %s", err)
	}
	assertWallet(t, db, cashctrl, fees, coin.NewCoin(3, 0, "IOV"))
	assertWallet(t, db, cashctrl, Account(), coin.NewCoin(97, 0, "IOV"))
}

func TestOnlyOrchestratorCanPayOut(t *testing.T) {
	var (
		orch  = weavetest.NewCondition().Address()
		fees  = weavetest.NewCondition().Address()
		alice = weavetest.NewCondition().Address()
	)
	db, cashctrl, ctrl := newTestController(t, orch, fees)

	if err := cashctrl.CoinMint(db, Account(), coin.NewCoin(100, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}

	if err := ctrl.PayInterest(db, alice, alice, coin.NewCoin(1, 0, "IOV")); !ErrOnlyOrchestrator.Is(err) {
		t.Fatalf("want orchestrator error, got %+v", err)
	}
	if err := ctrl.DistributePenalty(db, alice, coin.NewCoin(1, 0, "IOV")); !ErrOnlyOrchestrator.Is(err) {
		t.Fatalf("want orchestrator error, got %+v", err)
	}
}

func TestPausedReserveRejectsPayouts(t *testing.T) {
	var (
		orch  = weavetest.NewCondition().Address()
		fees  = weavetest.NewCondition().Address()
		alice = weavetest.NewCondition().Address()
	)
	db, cashctrl, ctrl := newTestController(t, orch, fees)

	if err := cashctrl.CoinMint(db, Account(), coin.NewCoin(100, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}

	conf, err := loadConf(db)
	if err != nil {
		t.Fatalf("load conf: %s", err)
	}
	conf.Paused = true
	if err := gconf.Save(db, "reserve", &conf); err != nil {
		t.Fatalf("save conf: %s", err)
	}

	if err := ctrl.PayInterest(db, orch, alice, coin.NewCoin(1, 0, "IOV")); !ErrPaused.Is(err) {
		t.Fatalf("want paused error, got %+v", err)
	}
	if err := ctrl.DistributePenalty(db, orch, coin.NewCoin(1, 0, "IOV")); !ErrPaused.Is(err) {
		t.Fatalf("want paused error, got %+v", err)
	}
	assertWallet(t, db, cashctrl, Account(), coin.NewCoin(100, 0, "IOV"))
}

func assertWallet(t testing.TB, db weave.KVStore, ctrl cash.Controller, wallet weave.Address, want coin.Coin) {
	t.Helper()

	coins, err := ctrl.Balance(db, wallet)
	if err != nil {
		t.Fatalf("balance: %s", err)
	}
	if len(coins) != 1 {
		t.Fatalf("want %q funds, found %d coins: %q", want, len(coins), coins)
	}
	if !coins[0].Equals(want) {
		t.Fatalf("unexpected funds found: %q", coins[0])
	}
}
