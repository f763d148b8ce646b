package job

// CreateRecordRequest is the office intake form.
type CreateRecordRequest struct {
	LicensePlate string `json:"license_plate" binding:"required"`
	ClientName   string `json:"client_name" binding:"required"`
	ContactInfo  string `json:"contact_info" binding:"required"`
	Make         string `json:"make" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Complaint    string `json:"complaint" binding:"required"`
}

// CheckInRequest carries the plate capture from the mechanic's camera.
type CheckInRequest struct {
	Image string `json:"image" binding:"required"`
}

// InspectPhotoRequest carries the damaged-part capture.
type InspectPhotoRequest struct {
	Image string `json:"image" binding:"required"`
}

// InspectPhotoResponse returns the candidate quotes for the identified part.
type InspectPhotoResponse struct {
	Record     VehicleRecord    `json:"record"`
	PartName   string           `json:"part_name"`
	Candidates []QuoteCandidate `json:"candidates"`
}

// FinalizeQuoteRequest commits an adjusted candidate as the accepted quote.
type FinalizeQuoteRequest struct {
	Source        string   `json:"source" binding:"required"`
	PartName      string   `json:"part_name"`
	Price         *float64 `json:"price" binding:"required"`
	LaborEstimate *float64 `json:"labor_estimate" binding:"required"`
}

// ManualQuoteRequest bypasses AI identification entirely.
type ManualQuoteRequest struct {
	Name          string   `json:"name" binding:"required"`
	Price         *float64 `json:"price" binding:"required"`
	LaborEstimate *float64 `json:"labor_estimate" binding:"required"`
}

// CompleteRequest finalizes the work with the mechanic's notes.
type CompleteRequest struct {
	Transcript string   `json:"transcript"`
	HoursSpent *float64 `json:"hours_spent" binding:"required"`
}

// AssignMechanicRequest sets the responsible mechanic.
type AssignMechanicRequest struct {
	MechanicName string `json:"mechanic_name" binding:"required"`
}

// PushStatusRequest advances the job on behalf of the office.
type PushStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}
