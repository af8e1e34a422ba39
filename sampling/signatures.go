package sampling

import (
	"github.com/babylonlabs-io/beefy-sampler/util"
)

// MaxRequiredSignatures returns the number of signatures a light client
// verifies for a commitment signed by a set of validatorsLength validators,
// one more than a third of the set.
func MaxRequiredSignatures(validatorsLength uint64) uint64 {
	return validatorsLength/3 + 1
}

// RequiredSignatures adds the dynamic sample count to a cached static one
// and caps the sum at MaxRequiredSignatures.
func RequiredSignatures(staticSamples, validatorsLength, signatureUseCount uint64) (uint64, error) {
	dynamic, err := DynamicSamples(validatorsLength, signatureUseCount)
	if err != nil {
		return 0, err
	}

	return util.MinUint64(staticSamples+dynamic, MaxRequiredSignatures(validatorsLength)), nil
}
