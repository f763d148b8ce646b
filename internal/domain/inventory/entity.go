package inventory

import "workshop-service/internal/domain/job"

// Part is a stocked inventory item. Stock is never decremented by job
// completion; accepted quotes and physical consumption are tracked
// independently.
type Part struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Price             float64       `json:"price"`
	LaborEstimate     float64       `json:"labor_estimate"`
	Condition         job.Condition `json:"condition"`
	Source            string        `json:"source"`
	StockQuantity     int           `json:"stock_quantity"`
	LowStockThreshold int           `json:"low_stock_threshold"`
}

// IsLowStock reports whether the part needs reordering. Quantity equal to
// the threshold counts as low.
func (p Part) IsLowStock() bool {
	return p.StockQuantity <= p.LowStockThreshold
}

// LowStock filters the collection down to the reorder set.
func LowStock(parts []Part) []Part {
	var low []Part
	for _, p := range parts {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low
}
