package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulated_RecognizePlate(t *testing.T) {
	s := NewSimulated()

	plate, err := s.RecognizePlate(context.Background(), []byte("KDA 123X"))
	assert.NoError(t, err)
	assert.Equal(t, "KDA 123X", plate)

	// Binary or oversized payloads read as low confidence.
	plate, err = s.RecognizePlate(context.Background(), []byte{0xff, 0xfe, 0x00})
	assert.NoError(t, err)
	assert.Empty(t, plate)

	plate, err = s.RecognizePlate(context.Background(), []byte("this payload is far too long to be a plate"))
	assert.NoError(t, err)
	assert.Empty(t, plate)
}

func TestSimulated_IdentifyPartIsDeterministic(t *testing.T) {
	s := NewSimulated()

	first, err := s.IdentifyPart(context.Background(), []byte("same image"))
	assert.NoError(t, err)
	second, err := s.IdentifyPart(context.Background(), []byte("same image"))
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first.Name)
}

func TestSimulated_SimulateQuotes(t *testing.T) {
	s := NewSimulated()

	quotes, err := s.SimulateQuotes(context.Background(), "Front Brake Pads")
	assert.NoError(t, err)
	assert.Len(t, quotes, 3)

	sources := map[string]bool{}
	for _, q := range quotes {
		sources[q.Source] = true
		assert.Greater(t, q.Price, 0.0)
		assert.Greater(t, q.LaborEstimate, 0.0)
	}
	assert.True(t, sources["AutoZone Direct"])
	assert.True(t, sources["NAPA Wholesale"])
	assert.True(t, sources["OEM Parts Co"])
}

func TestSimulated_SummarizeJob(t *testing.T) {
	s := NewSimulated()

	summary, err := s.SummarizeJob(context.Background(), "replaced front pads")
	assert.NoError(t, err)
	assert.Equal(t, "Work performed: replaced front pads", summary)

	summary, err = s.SummarizeJob(context.Background(), "   ")
	assert.NoError(t, err)
	assert.Equal(t, "Work completed as agreed with the client.", summary)
}
