package sampling

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace of the errors registered by this package.
const ModuleName = "sampling"

var (
	// ErrDomain is returned when an input would push a logarithm argument
	// to zero or below, or when the validator set is empty.
	ErrDomain = errorsmod.Register(ModuleName, 1100, "input outside of the sampling formula domain")
)
