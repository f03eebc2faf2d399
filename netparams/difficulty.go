package netparams

import (
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
)

const (
	// blocksPerRetarget is the number of blocks between difficulty
	// transitions.
	blocksPerRetarget = 2016

	// targetTimespan is the desired duration in seconds of one retarget
	// window: 3.5 days of 2.5 minute blocks.
	targetTimespan = 302400

	// maxRetargetFactor clamps how far the difficulty may move in a
	// single transition.
	maxRetargetFactor = 4

	// powLimitBits is the compact form of the lowest difficulty target
	// the network allows.
	powLimitBits = 0x1e0fffff
)

// chainsOnto reports whether block directly extends prev.
func chainsOnto(block, prev *Block) bool {
	if block == nil || prev == nil {
		return false
	}

	return block.PrevBlock == prev.Hash && block.Height == prev.Height+1
}

// VerifyDifficultyMainNet is the difficulty predicate for the main network.
// Off transition boundaries the target must carry over unchanged from the
// previous block. On a boundary the new target is recomputed from the
// previous target and the duration of the elapsed retarget window, clamped
// to a factor of maxRetargetFactor in either direction and to the proof of
// work limit. transitionTime is the timestamp of the block that started the
// window; a zero value means the caller cannot verify the transition and the
// block is rejected.
func VerifyDifficultyMainNet(block, prev *Block,
	transitionTime uint32) bool {

	if !chainsOnto(block, prev) {
		return false
	}

	// Between transition boundaries the target never changes.
	if block.Height%blocksPerRetarget != 0 {
		return block.Bits == prev.Bits
	}

	if transitionTime == 0 {
		return false
	}

	// Clamp the actual window duration before retargeting so a single
	// transition cannot swing the difficulty arbitrarily far.
	timespan := int64(prev.Timestamp) - int64(transitionTime)
	if timespan < targetTimespan/maxRetargetFactor {
		timespan = targetTimespan / maxRetargetFactor
	}
	if timespan > targetTimespan*maxRetargetFactor {
		timespan = targetTimespan * maxRetargetFactor
	}

	target := blockchain.CompactToBig(prev.Bits)
	target.Mul(target, big.NewInt(timespan))
	target.Div(target, big.NewInt(targetTimespan))

	powLimit := blockchain.CompactToBig(powLimitBits)
	if target.Cmp(powLimit) > 0 {
		target = powLimit
	}

	return block.Bits == blockchain.BigToCompact(target)
}

// VerifyDifficultyTestNet is the difficulty predicate for the test network,
// where minimum-difficulty blocks make the retarget computation meaningless.
// It only checks that the block chains onto the previous one and that a
// transition boundary is never crossed without a known transition time.
func VerifyDifficultyTestNet(block, prev *Block,
	transitionTime uint32) bool {

	if !chainsOnto(block, prev) {
		return false
	}

	if block.Height%blocksPerRetarget == 0 && transitionTime == 0 {
		return false
	}

	return true
}
