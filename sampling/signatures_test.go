package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/beefy-sampler/sampling"
)

func TestMaxRequiredSignatures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		validators uint64
		want       uint64
	}{
		{validators: 0, want: 1},
		{validators: 1, want: 1},
		{validators: 2, want: 1},
		{validators: 3, want: 2},
		{validators: 4, want: 2},
		{validators: 10, want: 4},
		{validators: 100, want: 34},
		{validators: 297, want: 100},
		{validators: 1000, want: 334},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, sampling.MaxRequiredSignatures(tt.validators), "validators=%d", tt.validators)
	}
}

func TestRequiredSignatures(t *testing.T) {
	t.Parallel()

	static, err := sampling.StaticSamples(2.5, 0.25, 3)
	require.NoError(t, err)

	tests := []struct {
		name       string
		validators uint64
		uses       uint64
		want       uint64
	}{
		{name: "large set is not capped", validators: 1000, uses: 0, want: static + 10},
		{name: "reuse adds to the sample", validators: 1000, uses: 4, want: static + 15},
		{name: "small set is capped", validators: 4, uses: 0, want: 2},
		{name: "kusama sized set is capped", validators: 297, uses: 0, want: static + 9},
		{name: "single validator", validators: 1, uses: 10, want: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := sampling.RequiredSignatures(static, tt.validators, tt.uses)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.LessOrEqual(t, got, sampling.MaxRequiredSignatures(tt.validators))
		})
	}

	_, err = sampling.RequiredSignatures(static, 0, 0)
	require.ErrorIs(t, err, sampling.ErrDomain)
}

func TestParamsRequired(t *testing.T) {
	t.Parallel()

	p := sampling.Params{RatioPerValidator: 2.5, ValidatorsLength: 1000, SlashRate: 0.25, RandaoCommitExpiry: 3}
	got, err := p.Required()
	require.NoError(t, err)
	require.Equal(t, uint64(28), got)
}
