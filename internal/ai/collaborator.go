package ai

import "context"

// PartIdentification is the collaborator's best guess for a damaged part.
type PartIdentification struct {
	Name           string  `json:"name"`
	EstimatedPrice float64 `json:"estimated_price"`
}

// DistributorQuote is one simulated distributor offer for a part.
type DistributorQuote struct {
	Source        string  `json:"source"`
	Price         float64 `json:"price"`
	LaborEstimate float64 `json:"labor_estimate"`
}

// Collaborator is the recognition service boundary. The workflow treats it
// as an opaque, possibly wrong function; every result passes a human gate
// before it becomes billable. Transport and cancellation errors surface to
// the caller, they are never folded into empty successes.
type Collaborator interface {
	// RecognizePlate extracts a license plate from an image. The result is
	// best-effort and may be empty; the caller must validate it.
	RecognizePlate(ctx context.Context, image []byte) (string, error)

	// IdentifyPart names the damaged part in an image with a rough price.
	IdentifyPart(ctx context.Context, image []byte) (PartIdentification, error)

	// SimulateQuotes fetches distributor offers for a part name. The list
	// may be empty.
	SimulateQuotes(ctx context.Context, partName string) ([]DistributorQuote, error)

	// SummarizeJob turns a mechanic's transcript into an invoice-ready
	// description.
	SummarizeJob(ctx context.Context, transcript string) (string, error)
}
