package gasplot

import (
	"encoding/json"
	"os"

	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace of the errors registered by this package.
const ModuleName = "gasplot"

var ErrInvalidSeries = errorsmod.Register(ModuleName, 1100, "invalid gas measurement series")

// Point is one gas measurement: the gas used to verify a commitment carrying
// the given number of signatures.
type Point struct {
	Signatures uint64 `json:"signatures"`
	Gas        uint64 `json:"gas"`
}

// Series is an ordered set of measurements rendered as one chart.
type Series struct {
	Title  string  `json:"title"`
	XLabel string  `json:"xLabel"`
	YLabel string  `json:"yLabel"`
	Points []Point `json:"points"`
}

// Validate requires a non-empty series with strictly increasing signature
// counts.
func (s *Series) Validate() error {
	if len(s.Points) == 0 {
		return errorsmod.Wrap(ErrInvalidSeries, "no measurements")
	}
	for i := 1; i < len(s.Points); i++ {
		if s.Points[i].Signatures <= s.Points[i-1].Signatures {
			return errorsmod.Wrapf(ErrInvalidSeries,
				"signature counts must be strictly increasing, got %d after %d",
				s.Points[i].Signatures, s.Points[i-1].Signatures)
		}
	}

	return nil
}

func (s *Series) applyDefaults() {
	if s.Title == "" {
		s.Title = "BEEFY commitment verification gas"
	}
	if s.XLabel == "" {
		s.XLabel = "Signatures"
	}
	if s.YLabel == "" {
		s.YLabel = "Gas"
	}
}

// LoadSeries reads a JSON encoded Series from path.
func LoadSeries(path string) (*Series, error) {
	// #nosec G304 - The series file path is provided by the user
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Series
	if err := json.Unmarshal(contents, &s); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidSeries, "failed to decode %s: %v", path, err)
	}
	s.applyDefaults()

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}
