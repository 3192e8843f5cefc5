package vault

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

func newTestController(t testing.TB, orchestrator weave.Address) (weave.KVStore, cash.BaseController, Controller) {
	t.Helper()

	db := store.MemStore()
	migration.MustInitPkg(db, "vault", "cash")

	cashctrl := cash.NewController(cash.NewBucket())
	ctrl := NewController(cashctrl)

	conf := Configuration{
		Metadata:     &weave.Metadata{Schema: 1},
		Owner:        weavetest.NewCondition().Address(),
		Orchestrator: orchestrator,
		Ticker:       "IOV",
	}
	if err := gconf.Save(db, "vault", &conf); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}
	return db, cashctrl, ctrl
}

func TestDepositAndWithdrawTrackPrincipal(t *testing.T) {
	var (
		orch  = weavetest.NewCondition().Address()
		alice = weavetest.NewCondition().Address()
	)
	db, cashctrl, ctrl := newTestController(t, orch)

	if err := cashctrl.CoinMint(db, alice, coin.NewCoin(100, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}

	if err := ctrl.Deposit(db, orch, alice, coin.NewCoin(30, 0, "IOV")); err != nil {
		t.Fatalf("deposit: %s", err)
	}
	assertTotal(t, db, ctrl, coin.NewCoin(30, 0, "IOV"))
	assertWallet(t, db, cashctrl, alice, coin.NewCoin(70, 0, "IOV"))
	assertWallet(t, db, cashctrl, Account(), coin.NewCoin(30, 0, "IOV"))

	if err := ctrl.Withdraw(db, orch, alice, coin.NewCoin(10, 0, "IOV")); err != nil {
		t.Fatalf("withdraw: %s", err)
	}
	assertTotal(t, db, ctrl, coin.NewCoin(20, 0, "IOV"))
	assertWallet(t, db, cashctrl, alice, coin.NewCoin(80, 0, "IOV"))
}

func TestWithdrawCannotExceedTrackedPrincipal(t *testing.T) {
	var (
		orch  = weavetest.NewCondition().Address()
		alice = weavetest.NewCondition().Address()
	)
	db, cashctrl, ctrl := newTestController(t, orch)

	if err := cashctrl.CoinMint(db, alice, coin.NewCoin(100, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}
	if err := ctrl.Deposit(db, orch, alice, coin.NewCoin(30, 0, "IOV")); err != nil {
		t.Fatalf("deposit: %s", err)
	}
	// Send extra coins straight to the custody account. They are not
	// principal and must not be withdrawable through the vault.
	if err := cashctrl.CoinMint(db, Account(), coin.NewCoin(1000, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}

	err := ctrl.Withdraw(db, orch, alice, coin.NewCoin(31, 0, "IOV"))
	if !ErrInsufficientBalance.Is(err) {
		t.Fatalf("want insufficient balance error, got %+v", err)
	}
	assertTotal(t, db, ctrl, coin.NewCoin(30, 0, "IOV"))
}

func TestOnlyOrchestratorCanMoveCustody(t *testing.T) {
	var (
		orch  = weavetest.NewCondition().Address()
		alice = weavetest.NewCondition().Address()
	)
	db, cashctrl, ctrl := newTestController(t, orch)

	if err := cashctrl.CoinMint(db, alice, coin.NewCoin(100, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}

	if err := ctrl.Deposit(db, alice, alice, coin.NewCoin(5, 0, "IOV")); !ErrOnlyOrchestrator.Is(err) {
		t.Fatalf("want orchestrator error, got %+v", err)
	}
	if err := ctrl.Withdraw(db, alice, alice, coin.NewCoin(5, 0, "IOV")); !ErrOnlyOrchestrator.Is(err) {
		t.Fatalf("want orchestrator error, got %+v", err)
	}
	if err := ctrl.Capitalize(db, alice, coin.NewCoin(5, 0, "IOV")); !ErrOnlyOrchestrator.Is(err) {
		t.Fatalf("want orchestrator error, got %+v", err)
	}
}

func TestPausedVaultRejectsAllMovements(t *testing.T) {
	var (
		orch  = weavetest.NewCondition().Address()
		alice = weavetest.NewCondition().Address()
	)
	db, cashctrl, ctrl := newTestController(t, orch)

	if err := cashctrl.CoinMint(db, alice, coin.NewCoin(100, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}
	if err := ctrl.Deposit(db, orch, alice, coin.NewCoin(30, 0, "IOV")); err != nil {
		t.Fatalf("deposit: %s", err)
	}

	conf, err := loadConf(db)
	if err != nil {
		t.Fatalf("load conf: %s", err)
	}
	conf.Paused = true
	if err := gconf.Save(db, "vault", &conf); err != nil {
		t.Fatalf("save conf: %s", err)
	}

	if err := ctrl.Ready(db); !ErrPaused.Is(err) {
		t.Fatalf("want paused error, got %+v", err)
	}
	if err := ctrl.Deposit(db, orch, alice, coin.NewCoin(1, 0, "IOV")); !ErrPaused.Is(err) {
		t.Fatalf("want paused error, got %+v", err)
	}
	if err := ctrl.Withdraw(db, orch, alice, coin.NewCoin(1, 0, "IOV")); !ErrPaused.Is(err) {
		t.Fatalf("want paused error, got %+v", err)
	}
	if err := ctrl.Capitalize(db, orch, coin.NewCoin(1, 0, "IOV")); !ErrPaused.Is(err) {
		t.Fatalf("want paused error, got %+v", err)
	}
	assertTotal(t, db, ctrl, coin.NewCoin(30, 0, "IOV"))
	assertWallet(t, db, cashctrl, alice, coin.NewCoin(70, 0, "IOV"))
}

func TestCapitalizeTracksWithoutMovingFunds(t *testing.T) {
	var (
		orch  = weavetest.NewCondition().Address()
		alice = weavetest.NewCondition().Address()
	)
	db, cashctrl, ctrl := newTestController(t, orch)

	if err := cashctrl.CoinMint(db, alice, coin.NewCoin(100, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}
	if err := ctrl.Deposit(db, orch, alice, coin.NewCoin(30, 0, "IOV")); err != nil {
		t.Fatalf("deposit: %s", err)
	}
	// Interest paid into the custody account by another party.
	if err := cashctrl.CoinMint(db, Account(), coin.NewCoin(7, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}
	if err := ctrl.Capitalize(db, orch, coin.NewCoin(7, 0, "IOV")); err != nil {
		t.Fatalf("capitalize: %s", err)
	}
	assertTotal(t, db, ctrl, coin.NewCoin(37, 0, "IOV"))
	// The full capitalized amount is withdrawable.
	if err := ctrl.Withdraw(db, orch, alice, coin.NewCoin(37, 0, "IOV")); err != nil {
		t.Fatalf("withdraw: %s", err)
	}
	assertTotal(t, db, ctrl, coin.NewCoin(0, 0, "IOV"))
}

func assertTotal(t testing.TB, db weave.KVStore, ctrl Controller, want coin.Coin) {
	t.Helper()

	total, err := ctrl.TotalPrincipal(db)
	if err != nil {
		t.Fatalf("total principal: %s", err)
	}
	if want.IsZero() {
		if !total.IsZero() {
			t.Fatalf("want zero total, got %q", total)
		}
		return
	}
	if !total.Equals(want) {
		t.Fatalf("want total %q, got %q", want, total)
	}
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
