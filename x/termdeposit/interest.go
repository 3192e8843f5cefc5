package termdeposit

import (
	"math/big"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

const secondsPerYear = 31536000

// depositInterest returns the simple interest earned by given principal
// over the full tenor. The computation is exact over the smallest coin
// fractions and rounds down.
func depositInterest(principal coin.Coin, aprBps uint32, tenorSeconds int64) (coin.Coin, error) {
	if tenorSeconds <= 0 {
		return coin.Coin{}, errors.Wrap(errors.ErrInput, "tenor must be greater than zero")
	}
	units := fracUnits(principal)
	units.Mul(units, big.NewInt(int64(aprBps)))
	units.Mul(units, big.NewInt(tenorSeconds))
	units.Quo(units, big.NewInt(10000*secondsPerYear))
	return coinFromUnits(units, principal.Ticker)
}

// depositPenalty returns the early withdrawal penalty carved out of given
// principal, rounded down. A penalty is never bigger than the principal
// because the rate is always below 10000 basis points.
func depositPenalty(principal coin.Coin, penaltyBps uint32) (coin.Coin, error) {
	units := fracUnits(principal)
	units.Mul(units, big.NewInt(int64(penaltyBps)))
	units.Quo(units, big.NewInt(10000))
	return coinFromUnits(units, principal.Ticker)
}

func fracUnits(c coin.Coin) *big.Int {
	units := big.NewInt(c.Whole)
	units.Mul(units, big.NewInt(coin.FracUnit))
	units.Add(units, big.NewInt(c.Fractional))
	return units
}

func coinFromUnits(units *big.Int, ticker string) (coin.Coin, error) {
	var whole, frac big.Int
	whole.QuoRem(units, big.NewInt(coin.FracUnit), &frac)
	if !whole.IsInt64() || whole.Int64() > coin.MaxInt {
		return coin.Coin{}, errors.Wrapf(errors.ErrOverflow, "%s value out of range", ticker)
	}
	return coin.NewCoin(whole.Int64(), frac.Int64(), ticker), nil
}
