package job

import (
	"testing"

	xerrors "workshop-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func newTestRecord() VehicleRecord {
	return NewRecord("KDA 123X", "Jane Mwangi", "+254700000000", "Toyota", "Corolla", "Grinding noise when braking")
}

func TestNewRecord(t *testing.T) {
	r := newTestRecord()

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, StatusPending, r.Status)
	assert.Equal(t, PaymentPending, r.PaymentStatus)
	assert.Empty(t, r.CommunicationLog)
	assert.Nil(t, r.IdentifiedPart)
	assert.False(t, r.CreatedAt.IsZero())
}

func TestCheckIn(t *testing.T) {
	r := newTestRecord()

	checked, err := r.CheckIn()
	assert.NoError(t, err)
	assert.Equal(t, StatusInspecting, checked.Status)
	assert.Len(t, checked.CommunicationLog, 1)
	assert.Equal(t, EntryCheckIn, checked.CommunicationLog[0].Type)
	assert.Equal(t, "Vehicle checked in for inspection by mechanic.", checked.CommunicationLog[0].Message)

	// The caller's snapshot is untouched.
	assert.Equal(t, StatusPending, r.Status)
	assert.Empty(t, r.CommunicationLog)
}

func TestCheckIn_RejectsNonPending(t *testing.T) {
	r := newTestRecord()
	r.Status = StatusInProgress

	_, err := r.CheckIn()
	assert.ErrorIs(t, err, xerrors.ErrInvalidTransition)
}

func TestAttachAndClearDamagePhoto(t *testing.T) {
	r := newTestRecord()
	r.Status = StatusInspecting

	withPhoto, err := r.AttachDamagePhoto("base64-image-data")
	assert.NoError(t, err)
	assert.Equal(t, "base64-image-data", withPhoto.DamagedPartPhoto)
	assert.Empty(t, withPhoto.CommunicationLog, "photo handling is not client-visible")

	cleared, err := withPhoto.ClearDamagePhoto()
	assert.NoError(t, err)
	assert.Empty(t, cleared.DamagedPartPhoto)
	assert.Empty(t, cleared.CommunicationLog)
}

func TestAttachDamagePhoto_RejectsOutsideInspection(t *testing.T) {
	r := newTestRecord()

	_, err := r.AttachDamagePhoto("capture")
	assert.ErrorIs(t, err, xerrors.ErrInvalidTransition)
}

func TestFinalizeQuote(t *testing.T) {
	r := newTestRecord()
	r.Status = StatusInspecting

	part := Part{Name: "Brake Pad Set", Price: 120, LaborEstimate: 80, Condition: ConditionNew, Source: "AutoZone Direct"}
	quoted, err := r.FinalizeQuote(part)
	assert.NoError(t, err)
	assert.Equal(t, StatusAwaitingApproval, quoted.Status)
	assert.NotNil(t, quoted.IdentifiedPart)
	assert.Equal(t, 200.0, quoted.EstimatedTotal())
	assert.Len(t, quoted.CommunicationLog, 1)
	assert.Equal(t, EntryQuoteSent, quoted.CommunicationLog[0].Type)
	assert.Equal(t, "Quote for AutoZone Direct parts sent: $200.00", quoted.CommunicationLog[0].Message)
}

func TestFinalizeQuote_ManualEntry(t *testing.T) {
	r := newTestRecord()
	r.Status = StatusInspecting

	part := Part{Name: "Radiator Hose", Price: 45, LaborEstimate: 30, Condition: ConditionNew, Source: SourceManualEntry}
	quoted, err := r.FinalizeQuote(part)
	assert.NoError(t, err)
	assert.Equal(t, "Manual quote for Radiator Hose sent: $75.00", quoted.CommunicationLog[0].Message)
}

func TestFinalizeQuote_ResendSamePartIsIdempotentOnSnapshot(t *testing.T) {
	r := newTestRecord()
	r.Status = StatusInspecting
	part := Part{Name: "Brake Pad Set", Price: 120, LaborEstimate: 80, Condition: ConditionNew, Source: "AutoZone Direct"}

	first, err := r.FinalizeQuote(part)
	assert.NoError(t, err)

	second, err := first.FinalizeQuote(part)
	assert.NoError(t, err)
	assert.Equal(t, StatusAwaitingApproval, second.Status)
	assert.Equal(t, *first.IdentifiedPart, *second.IdentifiedPart)
	assert.Len(t, second.CommunicationLog, 2, "the log still grows on re-send")
}

func TestFinalizeQuote_ResendOverwritesSnapshot(t *testing.T) {
	r := newTestRecord()
	r.Status = StatusInspecting

	first, err := r.FinalizeQuote(Part{Name: "Brake Pad Set", Price: 120, LaborEstimate: 80, Source: "AutoZone Direct"})
	assert.NoError(t, err)

	second, err := first.FinalizeQuote(Part{Name: "Brake Pad Set", Price: 100, LaborEstimate: 60, Source: "NAPA Wholesale"})
	assert.NoError(t, err)
	assert.Equal(t, StatusAwaitingApproval, second.Status)
	assert.Equal(t, 160.0, second.EstimatedTotal(), "re-sending replaces the snapshot")
	assert.Len(t, second.CommunicationLog, 2, "the log keeps growing")
}

func TestFinalizeQuote_RejectsPending(t *testing.T) {
	r := newTestRecord()

	_, err := r.FinalizeQuote(Part{Name: "Brake Pad Set", Price: 120, LaborEstimate: 80})
	assert.ErrorIs(t, err, xerrors.ErrInvalidTransition)
}

func TestApprove(t *testing.T) {
	r := newTestRecord()
	r.Status = StatusAwaitingApproval

	approved, err := r.Approve()
	assert.NoError(t, err)
	assert.Equal(t, StatusInProgress, approved.Status)
	assert.Len(t, approved.CommunicationLog, 1)
	assert.Equal(t, EntryApprovalReceived, approved.CommunicationLog[0].Type)
	assert.Equal(t, "Client approved the quote via WhatsApp.", approved.CommunicationLog[0].Message)
}

func TestApprove_RejectsOtherStatuses(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusInspecting, StatusInProgress, StatusCompleted, StatusCancelled} {
		r := newTestRecord()
		r.Status = status
		_, err := r.Approve()
		assert.ErrorIs(t, err, xerrors.ErrInvalidTransition, "approve from %s", status)
	}
}

func TestComplete(t *testing.T) {
	r := newTestRecord()
	r.Status = StatusInProgress
	r.IdentifiedPart = &Part{Name: "Brake Pad Set", Price: 120, LaborEstimate: 80}

	done, err := r.Complete("Replaced front brake pads, bled the lines.", 2.5)
	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, done.Status)
	assert.Equal(t, PaymentPending, done.PaymentStatus)
	assert.Equal(t, 200.0, done.FinalAmount)
	assert.Equal(t, 2.5, done.HoursSpent)
	assert.Equal(t, "Replaced front brake pads, bled the lines.", done.JobDescription)
	assert.Len(t, done.CommunicationLog, 1)
	assert.Equal(t, EntryJobCompleted, done.CommunicationLog[0].Type)
	assert.Equal(t, "Job completed. Final summary generated and client notified.", done.CommunicationLog[0].Message)
}

func TestComplete_WithoutQuoteBillsZero(t *testing.T) {
	r := newTestRecord()
	r.Status = StatusInProgress

	done, err := r.Complete("Inspection only.", 1)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, done.FinalAmount)
}

func TestComplete_RejectsNegativeHours(t *testing.T) {
	r := newTestRecord()
	r.Status = StatusInProgress

	_, err := r.Complete("notes", -1)
	assert.ErrorIs(t, err, xerrors.ErrInvalidAmount)
}

func TestCancel(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusInspecting, StatusAwaitingApproval, StatusInProgress} {
		r := newTestRecord()
		r.Status = status

		cancelled, err := r.Cancel()
		assert.NoError(t, err, "cancel from %s", status)
		assert.Equal(t, StatusCancelled, cancelled.Status)
		assert.Len(t, cancelled.CommunicationLog, 1)
		assert.Equal(t, EntryStatusUpdate, cancelled.CommunicationLog[0].Type)
		assert.Equal(t, "Status update sent to client: Job is now CANCELLED.", cancelled.CommunicationLog[0].Message)
	}
}

func TestCancel_RejectsTerminal(t *testing.T) {
	for _, status := range []Status{StatusCompleted, StatusCancelled} {
		r := newTestRecord()
		r.Status = status
		_, err := r.Cancel()
		assert.ErrorIs(t, err, xerrors.ErrInvalidTransition)
	}
}

func TestPushStatus_FollowsLifecycleGraph(t *testing.T) {
	r := newTestRecord()

	next, err := r.PushStatus(StatusInspecting)
	assert.NoError(t, err)
	assert.Equal(t, StatusInspecting, next.Status)
	assert.Equal(t, "Status update sent to client: Job is now INSPECTING.", next.CommunicationLog[0].Message)

	next, err = next.PushStatus(StatusAwaitingApproval)
	assert.NoError(t, err)
	assert.Equal(t, "Status update sent to client: Job is now AWAITING APPROVAL.", next.CommunicationLog[1].Message)

	next, err = next.PushStatus(StatusInProgress)
	assert.NoError(t, err)
	assert.Equal(t, StatusInProgress, next.Status)
}

func TestPushStatus_RejectsSkippingStages(t *testing.T) {
	r := newTestRecord()

	_, err := r.PushStatus(StatusInProgress)
	assert.ErrorIs(t, err, xerrors.ErrInvalidTransition)
}

func TestPushStatus_RejectsCompleted(t *testing.T) {
	r := newTestRecord()
	r.Status = StatusInProgress

	// Completion carries a payload and must go through Complete.
	_, err := r.PushStatus(StatusCompleted)
	assert.ErrorIs(t, err, xerrors.ErrInvalidTransition)
}

func TestPushStatus_CancelledDelegates(t *testing.T) {
	r := newTestRecord()
	r.Status = StatusInProgress

	cancelled, err := r.PushStatus(StatusCancelled)
	assert.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
}

func TestSendReminder(t *testing.T) {
	r := newTestRecord()
	r.Status = StatusAwaitingApproval

	reminded, err := r.SendReminder()
	assert.NoError(t, err)
	assert.Equal(t, StatusAwaitingApproval, reminded.Status, "reminders do not move the job")
	assert.Len(t, reminded.CommunicationLog, 1)
	assert.Equal(t, EntryReminderSent, reminded.CommunicationLog[0].Type)
	assert.Equal(t, "Automated reminder sent to Jane Mwangi regarding job status: AWAITING APPROVAL.", reminded.CommunicationLog[0].Message)
}

func TestSendReminder_RejectsTerminal(t *testing.T) {
	r := newTestRecord()
	r.Status = StatusCompleted

	_, err := r.SendReminder()
	assert.ErrorIs(t, err, xerrors.ErrInvalidTransition)
}

func TestAssignMechanic(t *testing.T) {
	r := newTestRecord()

	assigned := r.AssignMechanic("Otieno")
	assert.Equal(t, "Otieno", assigned.MechanicName)
	assert.Empty(t, assigned.CommunicationLog, "assignment is not client-visible")
	assert.Empty(t, r.MechanicName)
}

func TestTogglePayment(t *testing.T) {
	r := newTestRecord()
	r.Status = StatusCompleted

	paid, err := r.TogglePayment()
	assert.NoError(t, err)
	assert.Equal(t, PaymentPaid, paid.PaymentStatus)

	unpaid, err := paid.TogglePayment()
	assert.NoError(t, err)
	assert.Equal(t, PaymentPending, unpaid.PaymentStatus)
}

func TestTogglePayment_RejectsNonCompleted(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusInspecting, StatusAwaitingApproval, StatusInProgress, StatusCancelled} {
		r := newTestRecord()
		r.Status = status
		_, err := r.TogglePayment()
		assert.ErrorIs(t, err, xerrors.ErrInvalidTransition, "toggle from %s", status)
	}
}

func TestTransitionsDoNotAliasLog(t *testing.T) {
	r := newTestRecord()
	checked, err := r.CheckIn()
	assert.NoError(t, err)

	quoted, err := checked.FinalizeQuote(Part{Name: "Brake Pad Set", Price: 120, LaborEstimate: 80, Source: "AutoZone Direct"})
	assert.NoError(t, err)

	// Mutating the newer snapshot's part must not leak into the older one.
	quoted.IdentifiedPart.Price = 999
	assert.Len(t, checked.CommunicationLog, 1)
	assert.Nil(t, checked.IdentifiedPart)
}

func TestMatchByPlate(t *testing.T) {
	records := []VehicleRecord{
		{ID: "1", LicensePlate: "KDA 123X"},
		{ID: "2", LicensePlate: "KBZ 987Y"},
	}

	found, err := MatchByPlate(records, "kda 123x")
	assert.NoError(t, err)
	assert.Equal(t, "1", found.ID)
}

func TestMatchByPlate_PartialRead(t *testing.T) {
	records := []VehicleRecord{
		{ID: "1", LicensePlate: "KDA 123X"},
		{ID: "2", LicensePlate: "KBZ 987Y"},
	}

	// The camera read a fragment of the plate.
	found, err := MatchByPlate(records, "DA 123")
	assert.NoError(t, err)
	assert.Equal(t, "1", found.ID)

	// The camera read extra characters around the plate.
	found, err = MatchByPlate(records, "X KBZ 987Y Z")
	assert.NoError(t, err)
	assert.Equal(t, "2", found.ID)
}

func TestMatchByPlate_NoPunctuationNormalization(t *testing.T) {
	records := []VehicleRecord{{ID: "1", LicensePlate: "ABC-1234"}}

	_, err := MatchByPlate(records, "ABC1234")
	assert.ErrorIs(t, err, xerrors.ErrRecordNotFound)
}

func TestMatchByPlate_Ambiguous(t *testing.T) {
	records := []VehicleRecord{
		{ID: "1", LicensePlate: "KDA 123X"},
		{ID: "2", LicensePlate: "KDA 123"},
	}

	_, err := MatchByPlate(records, "KDA 123")
	assert.ErrorIs(t, err, xerrors.ErrAmbiguousMatch)
}

func TestMatchByPlate_EmptyScan(t *testing.T) {
	records := []VehicleRecord{{ID: "1", LicensePlate: "KDA 123X"}}

	_, err := MatchByPlate(records, "   ")
	assert.ErrorIs(t, err, xerrors.ErrRecordNotFound)
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(0))
	assert.NoError(t, ValidateAmount(199.99))

	nan := 0.0
	nan = nan / nan
	assert.ErrorIs(t, ValidateAmount(nan), xerrors.ErrInvalidAmount)
	assert.ErrorIs(t, ValidateAmount(-0.01), xerrors.ErrInvalidAmount)
	assert.ErrorIs(t, ValidateAmount(1e16), xerrors.ErrInvalidAmount)
}
