package chainfee

import (
	"math"

	"github.com/btcsuite/btcd/btcutil"
)

// LocalAmount converts an on-chain amount into local currency units given
// the price of one whole coin in local currency. A non-positive price yields
// zero, since no meaningful conversion exists.
func LocalAmount(amount btcutil.Amount, price float64) int64 {
	if price <= 0 {
		return 0
	}

	return int64(math.Round(
		float64(amount) * price / btcutil.SatoshiPerBitcoin,
	))
}

// CoinAmount converts a local currency amount back into on-chain base units
// given the price of one whole coin in local currency. It is the inverse of
// LocalAmount up to rounding.
func CoinAmount(localAmount int64, price float64) btcutil.Amount {
	if price <= 0 {
		return 0
	}

	return btcutil.Amount(math.Round(
		float64(localAmount) / price * btcutil.SatoshiPerBitcoin,
	))
}
