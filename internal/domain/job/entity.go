package job

import "time"

type Status string
type PaymentStatus string
type Condition string
type EntryType string

const (
	StatusPending          Status = "PENDING"
	StatusInspecting       Status = "INSPECTING"
	StatusAwaitingApproval Status = "AWAITING_APPROVAL"
	StatusInProgress       Status = "IN_PROGRESS"
	StatusCompleted        Status = "COMPLETED"
	StatusCancelled        Status = "CANCELLED"

	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"

	ConditionNew         Condition = "new"
	ConditionUsed        Condition = "used"
	ConditionRefurbished Condition = "refurbished"
)

// Communication log entry types. Every client-visible action appends
// exactly one entry of the matching type.
const (
	EntryQuoteSent        EntryType = "QUOTE_SENT"
	EntryApprovalReceived EntryType = "APPROVAL_RECEIVED"
	EntryJobCompleted     EntryType = "JOB_COMPLETED"
	EntryCheckIn          EntryType = "CHECK_IN"
	EntryReminderSent     EntryType = "REMINDER_SENT"
	EntryStatusUpdate     EntryType = "STATUS_UPDATE"
	EntryOther            EntryType = "OTHER"
)

// SourceManualEntry marks parts quoted without AI identification.
const SourceManualEntry = "Manual Entry"

// Part is the accepted quote snapshot attached to a record. Replacing it
// overwrites the previous snapshot, never merges.
type Part struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	LaborEstimate float64   `json:"labor_estimate"`
	Condition     Condition `json:"condition"`
	Source        string    `json:"source"`
	Photo         string    `json:"photo,omitempty"`
}

// Total is the combined estimate the client approves.
func (p Part) Total() float64 {
	return p.Price + p.LaborEstimate
}

// CommunicationLogEntry is immutable once created.
type CommunicationLogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      EntryType `json:"type"`
	Message   string    `json:"message"`
}

// QuoteCandidate is a transient distributor quote produced during
// inspection. Candidates are discarded once a quote is finalized.
type QuoteCandidate struct {
	Source        string  `json:"source"`
	Price         float64 `json:"price"`
	LaborEstimate float64 `json:"labor_estimate"`
}

// VehicleRecord is the aggregate root for one vehicle visit.
type VehicleRecord struct {
	ID               string                  `json:"id"`
	LicensePlate     string                  `json:"license_plate"`
	ClientName       string                  `json:"client_name"`
	ContactInfo      string                  `json:"contact_info"`
	Make             string                  `json:"make"`
	Model            string                  `json:"model"`
	Complaint        string                  `json:"complaint"`
	Status           Status                  `json:"status"`
	PaymentStatus    PaymentStatus           `json:"payment_status"`
	MechanicName     string                  `json:"mechanic_name,omitempty"`
	DamagedPartPhoto string                  `json:"damaged_part_photo,omitempty"`
	IdentifiedPart   *Part                   `json:"identified_part,omitempty"`
	HoursSpent       float64                 `json:"hours_spent,omitempty"`
	JobDescription   string                  `json:"job_description,omitempty"`
	FinalAmount      float64                 `json:"final_amount,omitempty"`
	CommunicationLog []CommunicationLogEntry `json:"communication_log,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
}

// IsTerminal reports whether no further lifecycle events are accepted.
func (r VehicleRecord) IsTerminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusCancelled
}

// EstimatedTotal is the accepted quote total, zero while no quote is finalized.
func (r VehicleRecord) EstimatedTotal() float64 {
	if r.IdentifiedPart == nil {
		return 0
	}
	return r.IdentifiedPart.Total()
}

// clone returns a deep copy so transitions never alias the caller's snapshot.
func (r VehicleRecord) clone() VehicleRecord {
	out := r
	if r.IdentifiedPart != nil {
		part := *r.IdentifiedPart
		out.IdentifiedPart = &part
	}
	if r.CommunicationLog != nil {
		out.CommunicationLog = make([]CommunicationLogEntry, len(r.CommunicationLog))
		copy(out.CommunicationLog, r.CommunicationLog)
	}
	return out
}
