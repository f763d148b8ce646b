package job

import (
	"testing"

	xerrors "workshop-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestSelectCandidate(t *testing.T) {
	candidates := []QuoteCandidate{
		{Source: "AutoZone Direct", Price: 120, LaborEstimate: 80},
		{Source: "NAPA Wholesale", Price: 100, LaborEstimate: 75},
	}

	picked, err := SelectCandidate(candidates, 1)
	assert.NoError(t, err)
	assert.Equal(t, "NAPA Wholesale", picked.Source)
}

func TestSelectCandidate_OutOfRange(t *testing.T) {
	candidates := []QuoteCandidate{{Source: "AutoZone Direct"}}

	_, err := SelectCandidate(candidates, -1)
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)

	_, err = SelectCandidate(candidates, 1)
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)

	_, err = SelectCandidate(nil, 0)
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
}

func TestAdjustCandidate(t *testing.T) {
	c := QuoteCandidate{Source: "AutoZone Direct", Price: 120, LaborEstimate: 80}

	adjusted, err := AdjustCandidate(c, 110, 70)
	assert.NoError(t, err)
	assert.Equal(t, 110.0, adjusted.Price)
	assert.Equal(t, 70.0, adjusted.LaborEstimate)
	assert.Equal(t, "AutoZone Direct", adjusted.Source)
}

func TestAdjustCandidate_RejectsInvalidAmounts(t *testing.T) {
	c := QuoteCandidate{Source: "AutoZone Direct"}

	_, err := AdjustCandidate(c, -5, 70)
	assert.ErrorIs(t, err, xerrors.ErrInvalidAmount)

	_, err = AdjustCandidate(c, 110, -70)
	assert.ErrorIs(t, err, xerrors.ErrInvalidAmount)
}
