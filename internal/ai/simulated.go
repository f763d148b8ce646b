package ai

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"unicode"
)

// Simulated is a deterministic collaborator for development and tests. It
// stands in for the vision model the same way the office demo simulated
// distributor quotes: stable outputs derived from the input, no network.
type Simulated struct{}

func NewSimulated() *Simulated {
	return &Simulated{}
}

var distributors = []struct {
	name        string
	priceFactor float64
	laborFactor float64
}{
	{"AutoZone Direct", 1.00, 0.55},
	{"NAPA Wholesale", 0.92, 0.65},
	{"OEM Parts Co", 1.25, 0.50},
}

var knownParts = []PartIdentification{
	{Name: "Front Brake Pads", EstimatedPrice: 85},
	{Name: "Alternator", EstimatedPrice: 240},
	{Name: "Radiator", EstimatedPrice: 190},
	{Name: "Headlight Assembly", EstimatedPrice: 140},
	{Name: "Front Bumper", EstimatedPrice: 320},
}

// RecognizePlate passes short printable payloads through as the plate text,
// which is what the capture stub in development supplies. Anything else
// reads as a low-confidence empty result.
func (s *Simulated) RecognizePlate(_ context.Context, image []byte) (string, error) {
	text := strings.TrimSpace(string(image))
	if len(text) == 0 || len(text) > 16 {
		return "", nil
	}
	for _, r := range text {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			return "", nil
		}
	}
	return text, nil
}

func (s *Simulated) IdentifyPart(_ context.Context, image []byte) (PartIdentification, error) {
	return knownParts[int(hash(string(image))%uint32(len(knownParts)))], nil
}

func (s *Simulated) SimulateQuotes(_ context.Context, partName string) ([]DistributorQuote, error) {
	base := 60 + float64(hash(partName)%340)
	quotes := make([]DistributorQuote, 0, len(distributors))
	for _, d := range distributors {
		quotes = append(quotes, DistributorQuote{
			Source:        d.name,
			Price:         round2(base * d.priceFactor),
			LaborEstimate: round2(base * d.laborFactor),
		})
	}
	return quotes, nil
}

func (s *Simulated) SummarizeJob(_ context.Context, transcript string) (string, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return "Work completed as agreed with the client.", nil
	}
	return fmt.Sprintf("Work performed: %s", transcript), nil
}

func hash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
