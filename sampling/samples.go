package sampling

import (
	"math"
	"math/bits"

	errorsmod "cosmossdk.io/errors"
)

const (
	// RandaoBiasFactor is the empirical bias gain per block of the RANDAO
	// commit-reveal game, obtained from its Markov-chain analysis.
	RandaoBiasFactor = 172.8
	// RandaoBaseDelay is the number of blocks the commit-reveal window spans
	// before any configured expiry is added.
	RandaoBaseDelay = 75
)

// RandaoBiasability estimates how much an adversary can bias the RANDAO
// output when commitments may be revealed up to expiry blocks late.
func RandaoBiasability(randaoCommitExpiry uint64) float64 {
	return RandaoBiasFactor * (RandaoBaseDelay + float64(randaoCommitExpiry))
}

// StaticSecurityBits returns the unrounded log2 contribution of the slowly
// changing parameters. It is the part of the formula that does not depend on
// the validator set and can be computed once, off-chain.
func StaticSecurityBits(ratioPerValidator, slashRate float64, randaoCommitExpiry uint64) (float64, error) {
	if !isFinite(ratioPerValidator) || ratioPerValidator <= 0 {
		return 0, errorsmod.Wrapf(ErrDomain, "ratio per validator must be positive, got %v", ratioPerValidator)
	}
	if !isFinite(slashRate) || slashRate <= 0 {
		return 0, errorsmod.Wrapf(ErrDomain, "slash rate must be positive, got %v", slashRate)
	}

	arg := ratioPerValidator * (1 / slashRate) * RandaoBiasability(randaoCommitExpiry)
	if !isFinite(arg) || arg <= 0 {
		return 0, errorsmod.Wrapf(ErrDomain, "logarithm argument %v is not a positive finite number", arg)
	}

	return math.Log2(arg), nil
}

// StaticSamples returns ceil(log2(ratio * 1/slashRate * biasability)).
// Callers are expected to cache the result, e.g. as a client
// initialization constant.
func StaticSamples(ratioPerValidator, slashRate float64, randaoCommitExpiry uint64) (uint64, error) {
	staticBits, err := StaticSecurityBits(ratioPerValidator, slashRate, randaoCommitExpiry)
	if err != nil {
		return 0, err
	}

	return ceilBits(staticBits), nil
}

// DynamicSamples returns ceil(log2(validatorsLength)) plus the signature
// reuse adjustment. It is cheap enough to be recomputed on every round.
func DynamicSamples(validatorsLength, signatureUseCount uint64) (uint64, error) {
	if validatorsLength < 1 {
		return 0, errorsmod.Wrap(ErrDomain, "validator set must not be empty")
	}

	return CeilLog2(validatorsLength) + ReuseAdjustment(signatureUseCount), nil
}

// CombinedSamples returns the number of signatures to sample for the full
// parameter set. It equals Recombine applied to StaticSecurityBits, so the
// static and dynamic parts are an exact factorization of it.
func CombinedSamples(
	ratioPerValidator float64,
	validatorsLength uint64,
	slashRate float64,
	randaoCommitExpiry uint64,
	signatureUseCount uint64,
) (uint64, error) {
	staticBits, err := StaticSecurityBits(ratioPerValidator, slashRate, randaoCommitExpiry)
	if err != nil {
		return 0, err
	}

	return Recombine(staticBits, validatorsLength, signatureUseCount)
}

// Recombine rebuilds the combined sample count from a cached static
// contribution (as returned by StaticSecurityBits) and the live validator set
// size and reuse count.
func Recombine(staticBits float64, validatorsLength, signatureUseCount uint64) (uint64, error) {
	if validatorsLength < 1 {
		return 0, errorsmod.Wrap(ErrDomain, "validator set must not be empty")
	}
	if !isFinite(staticBits) {
		return 0, errorsmod.Wrapf(ErrDomain, "static security bits must be finite, got %v", staticBits)
	}

	total := staticBits + math.Log2(float64(validatorsLength))
	if total < 0 {
		// the product inside the logarithm is below one: no sampling needed
		// beyond the reuse adjustment
		total = 0
	}

	return ceilBits(total) + ReuseAdjustment(signatureUseCount), nil
}

// ReuseAdjustment is the extra number of samples compensating for a
// signature set that was already used signatureUseCount times. It is zero
// only when the set was never reused.
func ReuseAdjustment(signatureUseCount uint64) uint64 {
	if signatureUseCount == 0 {
		return 0
	}

	return 1 + 2*CeilLog2(signatureUseCount)
}

// CeilLog2 returns ceil(log2(n)) computed exactly on integers. CeilLog2(0)
// and CeilLog2(1) are both 0.
func CeilLog2(n uint64) uint64 {
	if n <= 1 {
		return 0
	}

	return uint64(bits.Len64(n - 1))
}

func ceilBits(x float64) uint64 {
	if x <= 0 {
		return 0
	}

	return uint64(math.Ceil(x))
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
