package termdeposit

import (
	"testing"

	coin "github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

func TestDepositInterest(t *testing.T) {
	cases := map[string]struct {
		Principal    coin.Coin
		AprBps       uint32
		TenorSeconds int64
		Want         coin.Coin
		WantErr      *errors.Error
	}{
		"full year on a round principal": {
			Principal:    coin.NewCoin(1000, 0, "IOV"),
			AprBps:       720,
			TenorSeconds: 31536000,
			Want:         coin.NewCoin(72, 0, "IOV"),
		},
		"quarter tenor rounds down": {
			Principal:    coin.NewCoin(1000, 0, "IOV"),
			AprBps:       720,
			TenorSeconds: 7776000,
			Want:         coin.NewCoin(17, 753424657, "IOV"),
		},
		"dust principal earns nothing": {
			Principal:    coin.NewCoin(0, 1, "IOV"),
			AprBps:       720,
			TenorSeconds: 7776000,
			Want:         coin.NewCoin(0, 0, "IOV"),
		},
		"fractions of the principal accrue": {
			Principal:    coin.NewCoin(100, 500000000, "IOV"),
			AprBps:       500,
			TenorSeconds: 31536000,
			Want:         coin.NewCoin(5, 25000000, "IOV"),
		},
		"tenor must be positive": {
			Principal:    coin.NewCoin(1000, 0, "IOV"),
			AprBps:       720,
			TenorSeconds: 0,
			WantErr:      errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := depositInterest(tc.Principal, tc.AprBps, tc.TenorSeconds)
			if !tc.WantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.WantErr, err)
			}
			if tc.WantErr != nil {
				return
			}
			if !got.Equals(tc.Want) {
				t.Fatalf("want %q interest, got %q", tc.Want, got)
			}
		})
	}
}

func TestDepositPenalty(t *testing.T) {
	cases := map[string]struct {
		Principal  coin.Coin
		PenaltyBps uint32
		Want       coin.Coin
	}{
		"penalty is carved from the whole principal": {
			Principal:  coin.NewCoin(100, 0, "IOV"),
			PenaltyBps: 150,
			Want:       coin.NewCoin(1, 500000000, "IOV"),
		},
		"zero rate means no penalty": {
			Principal:  coin.NewCoin(100, 0, "IOV"),
			PenaltyBps: 0,
			Want:       coin.NewCoin(0, 0, "IOV"),
		},
		"dust principal is never charged": {
			Principal:  coin.NewCoin(0, 1, "IOV"),
			PenaltyBps: 9999,
			Want:       coin.NewCoin(0, 0, "IOV"),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := depositPenalty(tc.Principal, tc.PenaltyBps)
			if err != nil {
				t.Fatalf("penalty: %s", err)
			}
			if !got.Equals(tc.Want) {
				t.Fatalf("want %q penalty, got %q", tc.Want, got)
			}
		})
	}
}
