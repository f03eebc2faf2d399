package keychain

import (
	"bytes"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"
)

var testSeed = bytes.Repeat([]byte{0x2a}, 32)

func newTestRing(t *testing.T) *HDKeyRing {
	t.Helper()

	ring, err := NewHDKeyRing(
		func(string) ([]byte, error) {
			return testSeed, nil
		},
		&chaincfg.RegressionNetParams,
	)
	require.NoError(t, err)

	return ring
}

// TestDeriveAddressDeterministic asserts that derivation only depends on the
// seed and the locator.
func TestDeriveAddressDeterministic(t *testing.T) {
	t.Parallel()

	ring := newTestRing(t)
	other := newTestRing(t)

	loc := KeyLocator{Branch: ExternalBranch, Index: 3}

	addr1, err := ring.DeriveAddress(loc)
	require.NoError(t, err)
	addr2, err := other.DeriveAddress(loc)
	require.NoError(t, err)
	require.Equal(t, addr1.EncodeAddress(), addr2.EncodeAddress())

	// Distinct locators yield distinct addresses, across both the index
	// and the branch dimension.
	next, err := ring.DeriveAddress(
		KeyLocator{Branch: ExternalBranch, Index: 4},
	)
	require.NoError(t, err)
	require.NotEqual(t, addr1.EncodeAddress(), next.EncodeAddress())

	internal, err := ring.DeriveAddress(
		KeyLocator{Branch: InternalBranch, Index: 3},
	)
	require.NoError(t, err)
	require.NotEqual(t, addr1.EncodeAddress(), internal.EncodeAddress())
}

// TestAccountPubKeyIndependent asserts that the account key cached at
// construction is usable after the private key material behind it has been
// zeroed, and never carries a private key itself.
func TestAccountPubKeyIndependent(t *testing.T) {
	t.Parallel()

	ring := newTestRing(t)

	acctPub := ring.AccountPubKey()
	require.False(t, acctPub.IsPrivate())

	branchKey, err := acctPub.Derive(uint32(ExternalBranch))
	require.NoError(t, err)
	indexKey, err := branchKey.Derive(0)
	require.NoError(t, err)

	addr, err := ring.DeriveAddress(
		KeyLocator{Branch: ExternalBranch, Index: 0},
	)
	require.NoError(t, err)

	external, err := indexKey.Address(&chaincfg.RegressionNetParams)
	require.NoError(t, err)
	require.Equal(t, addr.EncodeAddress(), external.EncodeAddress())
}

// TestDerivePrivKeyMatchesAddress asserts that the private key at a locator
// corresponds to the address derived from the account public key alone.
func TestDerivePrivKeyMatchesAddress(t *testing.T) {
	t.Parallel()

	ring := newTestRing(t)
	loc := KeyLocator{Branch: InternalBranch, Index: 7}

	addr, err := ring.DeriveAddress(loc)
	require.NoError(t, err)

	privKey, err := ring.DerivePrivKey(loc, "")
	require.NoError(t, err)

	pubKeyHash := btcutil.Hash160(
		privKey.PubKey().SerializeCompressed(),
	)
	require.Equal(t, addr.ScriptAddress(), pubKeyHash)
}

// TestAuthPromptPassThrough asserts the prompt given to DerivePrivKey
// reaches the seed fetcher, while construction and address derivation use
// no prompt.
func TestAuthPromptPassThrough(t *testing.T) {
	t.Parallel()

	var prompts []string
	ring, err := NewHDKeyRing(
		func(authPrompt string) ([]byte, error) {
			prompts = append(prompts, authPrompt)
			return testSeed, nil
		},
		&chaincfg.RegressionNetParams,
	)
	require.NoError(t, err)
	require.Equal(t, []string{""}, prompts)

	_, err = ring.DeriveAddress(KeyLocator{Branch: ExternalBranch})
	require.NoError(t, err)
	require.Len(t, prompts, 1)

	_, err = ring.DerivePrivKey(
		KeyLocator{Branch: ExternalBranch}, "confirm payment",
	)
	require.NoError(t, err)
	require.Equal(t, []string{"", "confirm payment"}, prompts)
}

// TestSeedFetcherErrors asserts fetcher failures surface from construction
// and from private key derivation.
func TestSeedFetcherErrors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("seed locked")

	_, err := NewHDKeyRing(
		func(string) ([]byte, error) {
			return nil, fetchErr
		},
		&chaincfg.RegressionNetParams,
	)
	require.ErrorIs(t, err, fetchErr)

	// A ring built while the seed was available still fails private key
	// derivation once the seed becomes unavailable.
	available := true
	ring, err := NewHDKeyRing(
		func(string) ([]byte, error) {
			if !available {
				return nil, fetchErr
			}
			return testSeed, nil
		},
		&chaincfg.RegressionNetParams,
	)
	require.NoError(t, err)

	available = false

	// Address derivation works off the cached account public key.
	_, err = ring.DeriveAddress(KeyLocator{Branch: ExternalBranch})
	require.NoError(t, err)

	_, err = ring.DerivePrivKey(KeyLocator{Branch: ExternalBranch}, "")
	require.ErrorIs(t, err, fetchErr)

	// A nil fetcher is rejected outright.
	_, err = NewHDKeyRing(nil, &chaincfg.RegressionNetParams)
	require.Error(t, err)
}
