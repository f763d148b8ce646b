package job

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVehicleRecordJSONRoundTrip(t *testing.T) {
	created := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	original := VehicleRecord{
		ID:               "01K3V4N6R8ZT5Y7W9XB2C4D6E8",
		LicensePlate:     "KDA 123X",
		ClientName:       "Jane Mwangi",
		ContactInfo:      "+254700000000",
		Make:             "Toyota",
		Model:            "Corolla",
		Complaint:        "Grinding noise when braking",
		Status:           StatusCompleted,
		PaymentStatus:    PaymentPaid,
		MechanicName:     "Otieno",
		DamagedPartPhoto: "base64-image-data",
		IdentifiedPart: &Part{
			ID:            "01K3V4N6R8ZT5Y7W9XB2C4D6F0",
			Name:          "Front Brake Pads",
			Price:         120,
			LaborEstimate: 80,
			Condition:     ConditionNew,
			Source:        "AutoZone Direct",
			Photo:         "base64-image-data",
		},
		HoursSpent:     2.5,
		JobDescription: "Replaced front brake pads, bled the lines.",
		FinalAmount:    200,
		CommunicationLog: []CommunicationLogEntry{
			{ID: "e1", Timestamp: created.Add(time.Minute), Type: EntryCheckIn, Message: "Vehicle checked in for inspection by mechanic."},
			{ID: "e2", Timestamp: created.Add(2 * time.Hour), Type: EntryQuoteSent, Message: "Quote for AutoZone Direct parts sent: $200.00"},
			{ID: "e3", Timestamp: created.Add(26 * time.Hour), Type: EntryJobCompleted, Message: "Job completed. Final summary generated and client notified."},
		},
		CreatedAt: created,
	}

	data, err := json.Marshal(original)
	assert.NoError(t, err)

	var loaded VehicleRecord
	assert.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, original, loaded)
}

func TestVehicleRecordJSONRoundTrip_FreshIntake(t *testing.T) {
	original := newTestRecord()

	data, err := json.Marshal(original)
	assert.NoError(t, err)

	var loaded VehicleRecord
	assert.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, original.ID, loaded.ID)
	assert.Nil(t, loaded.IdentifiedPart)
	assert.Empty(t, loaded.CommunicationLog)
	assert.True(t, original.CreatedAt.Equal(loaded.CreatedAt))
	loaded.CreatedAt = original.CreatedAt
	assert.Equal(t, original, loaded)
}
