package inventory

import "workshop-service/internal/domain/job"

// AddPartRequest adds a part to the ledger. Condition, source and threshold
// fall back to the office defaults when omitted.
type AddPartRequest struct {
	Name              string        `json:"name" binding:"required"`
	Price             *float64      `json:"price" binding:"required"`
	LaborEstimate     *float64      `json:"labor_estimate" binding:"required"`
	Condition         job.Condition `json:"condition"`
	Source            string        `json:"source"`
	StockQuantity     int           `json:"stock_quantity" binding:"min=0"`
	LowStockThreshold *int          `json:"low_stock_threshold" binding:"omitempty,min=0"`
}

// UpdateThresholdRequest changes the low-stock alert level of one part.
type UpdateThresholdRequest struct {
	LowStockThreshold *int `json:"low_stock_threshold" binding:"required,min=0"`
}
