// Package netparams holds the static, per-network configuration consumed by
// the wallet: peer bootstrap data, the protocol magic, the trusted
// checkpoint table and the difficulty verification predicate used to anchor
// header sync. All tables are immutable process-wide constants.
package netparams

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	litecoinCfg "github.com/ltcsuite/ltcd/chaincfg"
)

// Checkpoint is a trusted anchor within the chain: a block the wallet
// accepts without verification and from which partial chain downloads may
// start. Checkpoints must lie exactly on difficulty transition boundaries so
// the difficulty of the immediately following transition can be verified.
type Checkpoint struct {
	// Height is the block height of the checkpointed block.
	Height uint32

	// Hash is the hash of the checkpointed block.
	Hash chainhash.Hash

	// Timestamp is the unix timestamp of the checkpointed block.
	Timestamp uint32

	// Bits is the compact representation of the checkpointed block's
	// difficulty target.
	Bits uint32
}

// Block carries the subset of a block header the difficulty predicate needs,
// along with the height the header was received at.
type Block struct {
	// Hash is the block's own hash.
	Hash chainhash.Hash

	// PrevBlock is the hash of the block this block builds on.
	PrevBlock chainhash.Hash

	// Height is the block's height within the chain.
	Height uint32

	// Timestamp is the block's unix timestamp.
	Timestamp uint32

	// Bits is the compact representation of the block's difficulty
	// target.
	Bits uint32
}

// Params couples all chain-specific constants for a single network.
type Params struct {
	// Name is a human readable identifier for the network.
	Name string

	// DNSSeeds is the list of hostnames queried to bootstrap peer
	// discovery.
	DNSSeeds []string

	// DefaultPort is the port peers on this network listen on.
	DefaultPort string

	// Net is the protocol message magic for this network.
	Net wire.BitcoinNet

	// Services is the service bits advertised to peers.
	Services wire.ServiceFlag

	// VerifyDifficulty reports whether block's difficulty target is valid
	// given the block it chains onto and the timestamp of the previous
	// difficulty transition. A transitionTime of zero means the caller
	// does not know the transition block; predicates must fail when a
	// transition boundary is reached without it.
	VerifyDifficulty func(block, prev *Block, transitionTime uint32) bool

	// Checkpoints is the ordered (ascending height) checkpoint table.
	Checkpoints []Checkpoint

	// AddrParams holds the address encoding constants for this network,
	// expressed as btcsuite chain parameters so btcutil address types can
	// be used throughout the wallet.
	AddrParams *chaincfg.Params
}

// MainNetParams contains the parameters for the main Litecoin network.
var MainNetParams = Params{
	Name: "mainnet",
	DNSSeeds: []string{
		"dnsseed.litecointools.com",
		"dnsseed.litecoinpool.org",
		"seed-a.litecoin.loshan.co.uk",
		"dnsseed.thrasher.io",
		"dnsseed.koin-project.com",
	},
	DefaultPort:      "9333",
	Net:              0xdbb6c0fb,
	Services:         0,
	VerifyDifficulty: VerifyDifficultyMainNet,
	Checkpoints:      mainNetCheckpoints,
	AddrParams: litecoinAddrParams(
		&litecoinCfg.MainNetParams, &chaincfg.MainNetParams,
	),
}

// TestNet4Params contains the parameters for the version 4 Litecoin test
// network.
var TestNet4Params = Params{
	Name: "testnet4",
	DNSSeeds: []string{
		"testnet-seed.ltc.xurious.com",
		"seed-b.litecoin.loshan.co.uk",
		"dnsseed-testnet.thrasher.io",
	},
	DefaultPort:      "19335",
	Net:              0xf1c8d2fd,
	Services:         0,
	VerifyDifficulty: VerifyDifficultyTestNet,
	Checkpoints:      testNetCheckpoints,
	AddrParams: litecoinAddrParams(
		&litecoinCfg.TestNet4Params, &chaincfg.TestNet3Params,
	),
}

// litecoinAddrParams converts the relevant chain configuration parameters
// that differ for litecoin to chain parameters typed for btcsuite address
// derivation. This is used in place of something like interface{} to
// abstract over which chain the address encoding constants are for.
func litecoinAddrParams(ltcParams *litecoinCfg.Params,
	base *chaincfg.Params) *chaincfg.Params {

	params := *base

	params.Name = ltcParams.Name
	params.Net = wire.BitcoinNet(ltcParams.Net)
	params.DefaultPort = ltcParams.DefaultPort
	params.CoinbaseMaturity = ltcParams.CoinbaseMaturity

	var genesisHash chainhash.Hash
	copy(genesisHash[:], ltcParams.GenesisHash[:])
	params.GenesisHash = &genesisHash

	// Address encoding magics.
	params.PubKeyHashAddrID = ltcParams.PubKeyHashAddrID
	params.ScriptHashAddrID = ltcParams.ScriptHashAddrID
	params.PrivateKeyID = ltcParams.PrivateKeyID
	params.WitnessPubKeyHashAddrID = ltcParams.WitnessPubKeyHashAddrID
	params.WitnessScriptHashAddrID = ltcParams.WitnessScriptHashAddrID
	params.Bech32HRPSegwit = ltcParams.Bech32HRPSegwit

	copy(params.HDPrivateKeyID[:], ltcParams.HDPrivateKeyID[:])
	copy(params.HDPublicKeyID[:], ltcParams.HDPublicKeyID[:])

	params.HDCoinType = ltcParams.HDCoinType

	return &params
}

// mustHash converts a hex encoded block hash into a chainhash.Hash,
// panicking if the literal is malformed. Only used for the hard coded
// checkpoint tables.
func mustHash(s string) chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic(err)
	}
	return *hash
}
