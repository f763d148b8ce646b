package job

import (
	"fmt"
	"strings"
	"time"

	xerrors "workshop-service/internal/pkg/errors"

	"github.com/oklog/ulid/v2"
)

// legalNext enumerates the forward edges of the lifecycle graph. CANCELLED
// is reachable from any non-terminal status and handled separately.
var legalNext = map[Status]Status{
	StatusPending:          StatusInspecting,
	StatusInspecting:       StatusAwaitingApproval,
	StatusAwaitingApproval: StatusInProgress,
	StatusInProgress:       StatusCompleted,
}

// NewRecord builds a PENDING record from office intake. The id is assigned
// here and never changes.
func NewRecord(plate, clientName, contactInfo, make, model, complaint string) VehicleRecord {
	return VehicleRecord{
		ID:            ulid.Make().String(),
		LicensePlate:  plate,
		ClientName:    clientName,
		ContactInfo:   contactInfo,
		Make:          make,
		Model:         model,
		Complaint:     complaint,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		CreatedAt:     time.Now().UTC(),
	}
}

// AppendLog returns a copy of the record with one additional entry. The log
// only ever grows; entries are never edited or removed.
func AppendLog(r VehicleRecord, entryType EntryType, message string) VehicleRecord {
	out := r.clone()
	out.CommunicationLog = append(out.CommunicationLog, CommunicationLogEntry{
		ID:        ulid.Make().String(),
		Timestamp: time.Now().UTC(),
		Type:      entryType,
		Message:   message,
	})
	return out
}

// CheckIn records physical receipt of the vehicle by a mechanic.
func (r VehicleRecord) CheckIn() (VehicleRecord, error) {
	if r.Status != StatusPending {
		return r, fmt.Errorf("check-in from %s: %w", r.Status, xerrors.ErrInvalidTransition)
	}
	out := r.clone()
	out.Status = StatusInspecting
	return AppendLog(out, EntryCheckIn, "Vehicle checked in for inspection by mechanic."), nil
}

// AttachDamagePhoto stores the raw capture on the record. Silent: photo
// handling before a quote is finalized is not client-visible.
func (r VehicleRecord) AttachDamagePhoto(photo string) (VehicleRecord, error) {
	if r.Status != StatusInspecting {
		return r, fmt.Errorf("attach photo from %s: %w", r.Status, xerrors.ErrInvalidTransition)
	}
	out := r.clone()
	out.DamagedPartPhoto = photo
	return out, nil
}

// ClearDamagePhoto discards the capture so the mechanic can retake it. Silent.
func (r VehicleRecord) ClearDamagePhoto() (VehicleRecord, error) {
	if r.Status != StatusInspecting {
		return r, fmt.Errorf("clear photo from %s: %w", r.Status, xerrors.ErrInvalidTransition)
	}
	out := r.clone()
	out.DamagedPartPhoto = ""
	return out, nil
}

// FinalizeQuote commits a part as the job's accepted estimate and moves it
// to AWAITING_APPROVAL. Re-finalizing while already awaiting approval
// overwrites the snapshot and re-sends the quote; the log keeps growing.
func (r VehicleRecord) FinalizeQuote(part Part) (VehicleRecord, error) {
	if r.Status != StatusInspecting && r.Status != StatusAwaitingApproval {
		return r, fmt.Errorf("finalize quote from %s: %w", r.Status, xerrors.ErrInvalidTransition)
	}
	out := r.clone()
	out.IdentifiedPart = &part
	out.Status = StatusAwaitingApproval

	var message string
	if part.Source == SourceManualEntry {
		message = fmt.Sprintf("Manual quote for %s sent: %s", part.Name, formatAmount(part.Total()))
	} else {
		message = fmt.Sprintf("Quote for %s parts sent: %s", part.Source, formatAmount(part.Total()))
	}
	return AppendLog(out, EntryQuoteSent, message), nil
}

// Approve records the client's acceptance of the quote.
func (r VehicleRecord) Approve() (VehicleRecord, error) {
	if r.Status != StatusAwaitingApproval {
		return r, fmt.Errorf("approve from %s: %w", r.Status, xerrors.ErrInvalidTransition)
	}
	out := r.clone()
	out.Status = StatusInProgress
	return AppendLog(out, EntryApprovalReceived, "Client approved the quote via WhatsApp."), nil
}

// Complete finalizes the work. Description, hours and the final amount are
// set exactly once here; an absent quote bills as zero.
func (r VehicleRecord) Complete(description string, hours float64) (VehicleRecord, error) {
	if r.Status != StatusInProgress {
		return r, fmt.Errorf("complete from %s: %w", r.Status, xerrors.ErrInvalidTransition)
	}
	if err := ValidateAmount(hours); err != nil {
		return r, err
	}
	out := r.clone()
	out.Status = StatusCompleted
	out.PaymentStatus = PaymentPending
	out.JobDescription = description
	out.HoursSpent = hours
	out.FinalAmount = out.EstimatedTotal()
	return AppendLog(out, EntryJobCompleted, "Job completed. Final summary generated and client notified."), nil
}

// Cancel aborts the job from any non-terminal status.
func (r VehicleRecord) Cancel() (VehicleRecord, error) {
	if r.IsTerminal() {
		return r, fmt.Errorf("cancel from %s: %w", r.Status, xerrors.ErrInvalidTransition)
	}
	out := r.clone()
	out.Status = StatusCancelled
	message := fmt.Sprintf("Status update sent to client: Job is now %s.", statusLabel(StatusCancelled))
	return AppendLog(out, EntryStatusUpdate, message), nil
}

// PushStatus advances the job along the lifecycle graph on behalf of the
// office. Completion carries a payload and must go through Complete;
// cancellation goes through Cancel.
func (r VehicleRecord) PushStatus(next Status) (VehicleRecord, error) {
	if next == StatusCancelled {
		return r.Cancel()
	}
	if legalNext[r.Status] != next || next == StatusCompleted {
		return r, fmt.Errorf("push %s from %s: %w", next, r.Status, xerrors.ErrInvalidTransition)
	}
	out := r.clone()
	out.Status = next
	message := fmt.Sprintf("Status update sent to client: Job is now %s.", statusLabel(next))
	return AppendLog(out, EntryStatusUpdate, message), nil
}

// SendReminder logs an automated nudge to the client about the current status.
func (r VehicleRecord) SendReminder() (VehicleRecord, error) {
	if r.IsTerminal() {
		return r, fmt.Errorf("reminder from %s: %w", r.Status, xerrors.ErrInvalidTransition)
	}
	message := fmt.Sprintf("Automated reminder sent to %s regarding job status: %s.", r.ClientName, statusLabel(r.Status))
	return AppendLog(r, EntryReminderSent, message), nil
}

// AssignMechanic sets the responsible mechanic. Silent: assignment is not
// client-visible.
func (r VehicleRecord) AssignMechanic(name string) VehicleRecord {
	out := r.clone()
	out.MechanicName = name
	return out
}

// TogglePayment flips the payment status. Only completed jobs carry a
// meaningful payment status, so anything else is rejected.
func (r VehicleRecord) TogglePayment() (VehicleRecord, error) {
	if r.Status != StatusCompleted {
		return r, fmt.Errorf("toggle payment from %s: %w", r.Status, xerrors.ErrInvalidTransition)
	}
	out := r.clone()
	if out.PaymentStatus == PaymentPaid {
		out.PaymentStatus = PaymentPending
	} else {
		out.PaymentStatus = PaymentPaid
	}
	return out, nil
}

// MatchByPlate resolves a scanned plate against the collection using
// case-insensitive substring containment in both directions, tolerating
// partial OCR reads. Punctuation is deliberately not normalized.
func MatchByPlate(records []VehicleRecord, scanned string) (VehicleRecord, error) {
	scanned = strings.ToUpper(strings.TrimSpace(scanned))
	if scanned == "" {
		return VehicleRecord{}, xerrors.ErrRecordNotFound
	}

	var matches []VehicleRecord
	for _, r := range records {
		plate := strings.ToUpper(r.LicensePlate)
		if plate == "" {
			continue
		}
		if strings.Contains(plate, scanned) || strings.Contains(scanned, plate) {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return VehicleRecord{}, xerrors.ErrRecordNotFound
	case 1:
		return matches[0], nil
	default:
		return VehicleRecord{}, xerrors.ErrAmbiguousMatch
	}
}

// ValidateAmount rejects negative or non-finite monetary input.
func ValidateAmount(v float64) error {
	if v != v || v < 0 || v > maxAmount {
		return xerrors.ErrInvalidAmount
	}
	return nil
}

// maxAmount guards against +Inf sneaking through JSON number parsing.
const maxAmount = 1e15

func statusLabel(s Status) string {
	return strings.ReplaceAll(string(s), "_", " ")
}

func formatAmount(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
