package sampling

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

// Params is the full parameter set of the sampling formula.
type Params struct {
	RatioPerValidator  float64
	ValidatorsLength   uint64
	SlashRate          float64
	RandaoCommitExpiry uint64
	SignatureUseCount  uint64
}

// Validate reports the inputs that would make the formula undefined.
func (p Params) Validate() error {
	if p.ValidatorsLength < 1 {
		return errorsmod.Wrap(ErrDomain, "validator set must not be empty")
	}
	_, err := StaticSecurityBits(p.RatioPerValidator, p.SlashRate, p.RandaoCommitExpiry)

	return err
}

func (p Params) Combined() (uint64, error) {
	return CombinedSamples(p.RatioPerValidator, p.ValidatorsLength, p.SlashRate, p.RandaoCommitExpiry, p.SignatureUseCount)
}

func (p Params) Static() (uint64, error) {
	return StaticSamples(p.RatioPerValidator, p.SlashRate, p.RandaoCommitExpiry)
}

func (p Params) Dynamic() (uint64, error) {
	return DynamicSamples(p.ValidatorsLength, p.SignatureUseCount)
}

// Required returns the capped number of signatures a light client
// would request for these parameters.
func (p Params) Required() (uint64, error) {
	static, err := p.Static()
	if err != nil {
		return 0, err
	}

	return RequiredSignatures(static, p.ValidatorsLength, p.SignatureUseCount)
}

func (p Params) String() string {
	return fmt.Sprintf("ratio=%v validators=%d slash=%v expiry=%d uses=%d",
		p.RatioPerValidator, p.ValidatorsLength, p.SlashRate, p.RandaoCommitExpiry, p.SignatureUseCount)
}
