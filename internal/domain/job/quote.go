package job

import (
	"fmt"

	xerrors "workshop-service/internal/pkg/errors"
)

// SelectCandidate picks one distributor quote to seed the adjustable
// price/labor pair. Pure selection, no record involved yet.
func SelectCandidate(candidates []QuoteCandidate, index int) (QuoteCandidate, error) {
	if index < 0 || index >= len(candidates) {
		return QuoteCandidate{}, fmt.Errorf("candidate index %d out of range: %w", index, xerrors.ErrInvalidInput)
	}
	return candidates[index], nil
}

// AdjustCandidate overrides the candidate's numbers with the human's final
// say before the quote becomes billable.
func AdjustCandidate(c QuoteCandidate, price, labor float64) (QuoteCandidate, error) {
	if err := ValidateAmount(price); err != nil {
		return QuoteCandidate{}, err
	}
	if err := ValidateAmount(labor); err != nil {
		return QuoteCandidate{}, err
	}
	c.Price = price
	c.LaborEstimate = labor
	return c, nil
}
