package chainfee

import (
	"math"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/require"
)

func testUnit() *Unit {
	return NewUnit("satoshi", 8, nil)
}

// TestUTXOBasisFee asserts size-times-rate pricing with rounding to the
// nearest base unit.
func TestUTXOBasisFee(t *testing.T) {
	t.Parallel()

	b := NewUTXOBasis(testUnit(), 1000, 225)
	defer b.Give()

	require.Equal(t, BasisUTXO, b.Type())
	require.Equal(t, btcutil.Amount(1000), b.FeePerKB())
	require.EqualValues(t, 225, b.SizeBytes())
	require.InDelta(t, 0.225, b.CostFactor(), 1e-9)
	require.EqualValues(t, 1000, b.PricePerCostFactor())

	require.EqualValues(t, 225, b.Fee().UnwrapOr(0))

	// 10 sat/kB over 149 bytes is 1.49 base units, rounding to 1; over
	// 151 bytes it is 1.51, rounding to 2.
	down := NewUTXOBasis(testUnit(), 10, 149)
	defer down.Give()
	require.EqualValues(t, 1, down.Fee().UnwrapOr(0))

	up := NewUTXOBasis(testUnit(), 10, 151)
	defer up.Give()
	require.EqualValues(t, 2, up.Fee().UnwrapOr(0))
}

// TestGasBasisFee asserts limit-times-price pricing.
func TestGasBasisFee(t *testing.T) {
	t.Parallel()

	b := NewGasBasis(testUnit(), 21_000, 20_000_000_000)
	defer b.Give()

	require.Equal(t, BasisGas, b.Type())
	require.EqualValues(t, 21_000, b.GasLimit())
	require.EqualValues(t, 20_000_000_000, b.GasPrice())
	require.InDelta(t, 21_000, b.CostFactor(), 0)

	require.EqualValues(t, uint64(420_000_000_000_000),
		b.Fee().UnwrapOr(0))
}

// TestGenericBasisFee asserts opaque cost-factor pricing and the payload
// release hook.
func TestGenericBasisFee(t *testing.T) {
	t.Parallel()

	released := 0
	b := NewGenericBasis(testUnit(), 7, 13, func() { released++ })

	require.Equal(t, BasisGeneric, b.Type())
	require.EqualValues(t, 7, b.GenericCost())
	require.EqualValues(t, 91, b.Fee().UnwrapOr(0))

	b.Take()
	b.Give()
	require.Zero(t, released)

	b.Give()
	require.Equal(t, 1, released)

	// Use after release is a caller bug, and never re-runs the hook.
	require.Panics(t, func() { b.Take() })
	require.Panics(t, func() { b.Give() })
	require.Equal(t, 1, released)
}

// TestFeeOverflow asserts that component products too large for the fee's
// integer range report the fee unavailable instead of wrapping.
func TestFeeOverflow(t *testing.T) {
	t.Parallel()

	gas := NewGasBasis(testUnit(), math.MaxUint64, 2)
	defer gas.Give()
	require.True(t, gas.Fee().IsNone())

	generic := NewGenericBasis(
		testUnit(), math.MaxUint64/2+1, 2, nil,
	)
	defer generic.Give()
	require.True(t, generic.Fee().IsNone())

	// The largest non-overflowing product is still available.
	edge := NewGenericBasis(testUnit(), math.MaxUint64, 1, nil)
	defer edge.Give()
	require.EqualValues(t, uint64(math.MaxUint64), edge.Fee().UnwrapOr(0))
}

// TestWrongVariantAccessors asserts that reading a field of an inactive cost
// model is treated as a caller bug.
func TestWrongVariantAccessors(t *testing.T) {
	t.Parallel()

	utxo := NewUTXOBasis(testUnit(), 1000, 225)
	defer utxo.Give()
	gas := NewGasBasis(testUnit(), 21_000, 1)
	defer gas.Give()

	require.Panics(t, func() { utxo.GasLimit() })
	require.Panics(t, func() { utxo.GasPrice() })
	require.Panics(t, func() { utxo.GenericCost() })
	require.Panics(t, func() { gas.FeePerKB() })
	require.Panics(t, func() { gas.SizeBytes() })
}

// TestUnitRefCounting asserts the unit's reference discipline: the release
// hook runs exactly once when the last holder gives the unit back, and
// further use panics.
func TestUnitRefCounting(t *testing.T) {
	t.Parallel()

	released := 0
	unit := NewUnit("drop", 6, func() { released++ })

	require.Equal(t, "drop", unit.Name())
	require.EqualValues(t, 6, unit.Decimals())

	// A fee basis holds its own unit reference and gives it back on its
	// final Give.
	b := NewUTXOBasis(unit, 1000, 100)
	b.Give()
	require.Zero(t, released)

	unit.Give()
	require.Equal(t, 1, released)

	require.Panics(t, func() { unit.Take() })

	// The failed take must not have resurrected the count: a give still
	// panics and the release hook never runs again.
	require.Panics(t, func() { unit.Give() })
	require.Equal(t, 1, released)
}

// TestFiatConversion asserts the local currency helpers round-trip up to
// rounding and reject non-positive prices.
func TestFiatConversion(t *testing.T) {
	t.Parallel()

	// One coin at 50000.00 local cents per coin.
	price := 5_000_000.0

	require.EqualValues(t, 5_000_000,
		LocalAmount(btcutil.SatoshiPerBitcoin, price))
	require.EqualValues(t, 2_500_000,
		LocalAmount(btcutil.SatoshiPerBitcoin/2, price))

	require.EqualValues(t, btcutil.Amount(btcutil.SatoshiPerBitcoin),
		CoinAmount(5_000_000, price))

	// One local cent buys 20 base units at this price, so amounts on
	// that grid survive the round trip exactly.
	amount := btcutil.Amount(123_456_780)
	require.Equal(t, amount, CoinAmount(LocalAmount(amount, price), price))

	require.Zero(t, LocalAmount(1_000, 0))
	require.Zero(t, LocalAmount(1_000, -1))
	require.Zero(t, CoinAmount(1_000, 0))
}
