package quote

import (
	"context"
	"errors"
	"fmt"

	"workshop-service/internal/ai"
	"workshop-service/internal/domain/job"
	"workshop-service/internal/pkg/cache"
	xerrors "workshop-service/internal/pkg/errors"
	ws "workshop-service/internal/websocket"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// RecordPublisher pushes committed snapshots back to connected views.
type RecordPublisher interface {
	PublishRecord(eventType ws.EventType, record job.VehicleRecord)
}

// QuoteService runs the inspection workflow: photo identification, candidate
// quotes, human adjustment, finalization. The AI never commits anything on
// its own; the office or mechanic has final say before a number becomes a
// billable estimate.
type QuoteService struct {
	recordRepo   job.Repository
	collaborator ai.Collaborator
	cache        *cache.Collections
	publisher    RecordPublisher
	logger       *zap.Logger
}

func NewQuoteService(
	recordRepo job.Repository,
	collaborator ai.Collaborator,
	collections *cache.Collections,
	publisher RecordPublisher,
	logger *zap.Logger,
) *QuoteService {
	return &QuoteService{
		recordRepo:   recordRepo,
		collaborator: collaborator,
		cache:        collections,
		publisher:    publisher,
		logger:       logger,
	}
}

// IdentifyDamage attaches the capture to the record and returns candidate
// distributor quotes for the identified part. The job status is untouched;
// candidates are transient and never persisted. An unparseable
// identification degrades to an unknown part so the manual path stays open,
// while transport failures and cancellations surface as errors.
func (s *QuoteService) IdentifyDamage(ctx context.Context, id string, image []byte) (*job.InspectPhotoResponse, error) {
	current, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	identified, err := s.collaborator.IdentifyPart(ctx, image)
	if errors.Is(err, xerrors.ErrMalformedResponse) {
		s.logger.Warn("part identification fell back to unknown part", zap.String("record_id", id))
		identified = ai.PartIdentification{Name: "Unknown Part", EstimatedPrice: 0}
	} else if err != nil {
		return nil, fmt.Errorf("part identification failed: %w", err)
	}

	quotes, err := s.collaborator.SimulateQuotes(ctx, identified.Name)
	if errors.Is(err, xerrors.ErrMalformedResponse) {
		s.logger.Warn("distributor quotes fell back to empty list", zap.String("record_id", id))
		quotes = nil
	} else if err != nil {
		return nil, fmt.Errorf("distributor quotes failed: %w", err)
	}

	attached, err := current.AttachDamagePhoto(string(image))
	if err != nil {
		return nil, err
	}

	saved, err := s.persist(ctx, attached, "damage photo attached")
	if err != nil {
		return nil, err
	}

	candidates := make([]job.QuoteCandidate, 0, len(quotes))
	for _, q := range quotes {
		candidates = append(candidates, job.QuoteCandidate{
			Source:        q.Source,
			Price:         q.Price,
			LaborEstimate: q.LaborEstimate,
		})
	}

	return &job.InspectPhotoResponse{
		Record:     saved,
		PartName:   identified.Name,
		Candidates: candidates,
	}, nil
}

// ClearPhoto discards the capture so the mechanic can retake it.
func (s *QuoteService) ClearPhoto(ctx context.Context, id string) (job.VehicleRecord, error) {
	current, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return job.VehicleRecord{}, err
	}
	cleared, err := current.ClearDamagePhoto()
	if err != nil {
		return job.VehicleRecord{}, err
	}
	return s.persist(ctx, cleared, "damage photo cleared")
}

// Finalize commits an adjusted candidate as the accepted quote and sends it
// to the client.
func (s *QuoteService) Finalize(ctx context.Context, id string, req *job.FinalizeQuoteRequest) (job.VehicleRecord, error) {
	current, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return job.VehicleRecord{}, err
	}

	candidate, err := job.AdjustCandidate(job.QuoteCandidate{Source: req.Source}, *req.Price, *req.LaborEstimate)
	if err != nil {
		return job.VehicleRecord{}, err
	}

	name := req.PartName
	if name == "" {
		if current.DamagedPartPhoto != "" {
			name = "Identified Part"
		} else {
			name = "Manual Part"
		}
	}

	part := job.Part{
		ID:            ulid.Make().String(),
		Name:          name,
		Price:         candidate.Price,
		LaborEstimate: candidate.LaborEstimate,
		Condition:     job.ConditionNew,
		Source:        candidate.Source,
		Photo:         current.DamagedPartPhoto,
	}

	finalized, err := current.FinalizeQuote(part)
	if err != nil {
		return job.VehicleRecord{}, err
	}
	return s.persist(ctx, finalized, "quote finalized")
}

// FinalizeManual bypasses AI identification entirely.
func (s *QuoteService) FinalizeManual(ctx context.Context, id string, req *job.ManualQuoteRequest) (job.VehicleRecord, error) {
	current, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return job.VehicleRecord{}, err
	}
	if err := job.ValidateAmount(*req.Price); err != nil {
		return job.VehicleRecord{}, err
	}
	if err := job.ValidateAmount(*req.LaborEstimate); err != nil {
		return job.VehicleRecord{}, err
	}

	part := job.Part{
		ID:            ulid.Make().String(),
		Name:          req.Name,
		Price:         *req.Price,
		LaborEstimate: *req.LaborEstimate,
		Condition:     job.ConditionNew,
		Source:        job.SourceManualEntry,
	}

	finalized, err := current.FinalizeQuote(part)
	if err != nil {
		return job.VehicleRecord{}, err
	}
	return s.persist(ctx, finalized, "manual quote finalized")
}

func (s *QuoteService) persist(ctx context.Context, record job.VehicleRecord, action string) (job.VehicleRecord, error) {
	saved, err := s.recordRepo.Update(ctx, record)
	if err != nil {
		s.logger.Error("failed to persist vehicle record",
			zap.String("record_id", record.ID),
			zap.String("action", action),
			zap.Error(err),
		)
		return job.VehicleRecord{}, fmt.Errorf("failed to save vehicle record: %w", err)
	}

	s.cache.InvalidateRecords(ctx)
	s.publisher.PublishRecord(ws.EventTypeRecordUpdated, saved)

	s.logger.Info(action, zap.String("record_id", saved.ID))
	return saved, nil
}
