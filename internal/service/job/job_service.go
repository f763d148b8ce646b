package job

import (
	"context"
	"errors"
	"fmt"

	"workshop-service/internal/ai"
	"workshop-service/internal/domain/job"
	"workshop-service/internal/pkg/cache"
	ws "workshop-service/internal/websocket"

	"go.uber.org/zap"
)

// RecordPublisher pushes committed snapshots back to connected views.
type RecordPublisher interface {
	PublishRecord(eventType ws.EventType, record job.VehicleRecord)
}

// JobService orchestrates lifecycle events: resolve the intent against an
// immutable snapshot, persist the result, then publish. A failed store call
// leaves nothing behind: no cache invalidation, no broadcast, no log entry.
type JobService struct {
	recordRepo   job.Repository
	collaborator ai.Collaborator
	cache        *cache.Collections
	publisher    RecordPublisher
	logger       *zap.Logger
}

func NewJobService(
	recordRepo job.Repository,
	collaborator ai.Collaborator,
	collections *cache.Collections,
	publisher RecordPublisher,
	logger *zap.Logger,
) *JobService {
	return &JobService{
		recordRepo:   recordRepo,
		collaborator: collaborator,
		cache:        collections,
		publisher:    publisher,
		logger:       logger,
	}
}

// ListRecords returns the collection, optionally filtered to active or
// completed jobs. Filtering is a core-side concern; the store only scans.
func (s *JobService) ListRecords(ctx context.Context, state string) ([]job.VehicleRecord, error) {
	records, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}

	switch state {
	case "":
		return records, nil
	case "active":
		var active []job.VehicleRecord
		for _, r := range records {
			if r.Status != job.StatusCompleted {
				active = append(active, r)
			}
		}
		return active, nil
	case "completed":
		var completed []job.VehicleRecord
		for _, r := range records {
			if r.Status == job.StatusCompleted {
				completed = append(completed, r)
			}
		}
		return completed, nil
	default:
		return nil, fmt.Errorf("unknown state filter %q: %w", state, errInvalidFilter)
	}
}

var errInvalidFilter = errors.New("state must be active or completed")

func (s *JobService) GetRecord(ctx context.Context, id string) (*job.VehicleRecord, error) {
	return s.recordRepo.FindByID(ctx, id)
}

// CreateIntake registers a new PENDING vehicle visit.
func (s *JobService) CreateIntake(ctx context.Context, req *job.CreateRecordRequest) (job.VehicleRecord, error) {
	record := job.NewRecord(req.LicensePlate, req.ClientName, req.ContactInfo, req.Make, req.Model, req.Complaint)

	saved, err := s.recordRepo.Create(ctx, record)
	if err != nil {
		s.logger.Error("failed to create vehicle record", zap.Error(err))
		return job.VehicleRecord{}, fmt.Errorf("failed to save vehicle record: %w", err)
	}

	s.cache.InvalidateRecords(ctx)
	s.publisher.PublishRecord(ws.EventTypeRecordCreated, saved)

	s.logger.Info("vehicle record created",
		zap.String("record_id", saved.ID),
		zap.String("license_plate", saved.LicensePlate),
	)
	return saved, nil
}

// CheckInByPlate resolves a plate capture to a single PENDING record and
// checks it in. Zero or multiple matches fail without mutating anything;
// the caller decides how to prompt the user.
func (s *JobService) CheckInByPlate(ctx context.Context, image []byte) (job.VehicleRecord, error) {
	plate, err := s.collaborator.RecognizePlate(ctx, image)
	if err != nil {
		return job.VehicleRecord{}, fmt.Errorf("plate recognition failed: %w", err)
	}

	records, err := s.listAll(ctx)
	if err != nil {
		return job.VehicleRecord{}, err
	}

	matched, err := job.MatchByPlate(records, plate)
	if err != nil {
		return job.VehicleRecord{}, err
	}

	checked, err := matched.CheckIn()
	if err != nil {
		return job.VehicleRecord{}, err
	}
	return s.persist(ctx, checked, "vehicle checked in")
}

// Approve records the client's manual approval of the pending quote.
func (s *JobService) Approve(ctx context.Context, id string) (job.VehicleRecord, error) {
	return s.transition(ctx, id, "quote approved", func(r job.VehicleRecord) (job.VehicleRecord, error) {
		return r.Approve()
	})
}

// Complete finalizes the work. The transcript is summarized by the
// collaborator; on any failure the verbatim transcript is billed instead.
func (s *JobService) Complete(ctx context.Context, id string, req *job.CompleteRequest) (job.VehicleRecord, error) {
	description, err := s.collaborator.SummarizeJob(ctx, req.Transcript)
	if err != nil {
		s.logger.Warn("job summary fell back to transcript", zap.String("record_id", id), zap.Error(err))
		description = req.Transcript
	}

	hours := 0.0
	if req.HoursSpent != nil {
		hours = *req.HoursSpent
	}
	return s.transition(ctx, id, "job completed", func(r job.VehicleRecord) (job.VehicleRecord, error) {
		return r.Complete(description, hours)
	})
}

// Cancel aborts the job.
func (s *JobService) Cancel(ctx context.Context, id string) (job.VehicleRecord, error) {
	return s.transition(ctx, id, "job cancelled", func(r job.VehicleRecord) (job.VehicleRecord, error) {
		return r.Cancel()
	})
}

// PushStatus advances the job on behalf of the office.
func (s *JobService) PushStatus(ctx context.Context, id string, next job.Status) (job.VehicleRecord, error) {
	return s.transition(ctx, id, "status pushed", func(r job.VehicleRecord) (job.VehicleRecord, error) {
		return r.PushStatus(next)
	})
}

// SendReminder logs an automated nudge to the client.
func (s *JobService) SendReminder(ctx context.Context, id string) (job.VehicleRecord, error) {
	return s.transition(ctx, id, "reminder sent", func(r job.VehicleRecord) (job.VehicleRecord, error) {
		return r.SendReminder()
	})
}

// AssignMechanic sets the responsible mechanic without touching the log.
func (s *JobService) AssignMechanic(ctx context.Context, id, name string) (job.VehicleRecord, error) {
	return s.transition(ctx, id, "mechanic assigned", func(r job.VehicleRecord) (job.VehicleRecord, error) {
		return r.AssignMechanic(name), nil
	})
}

// TogglePayment flips the payment status of a completed job.
func (s *JobService) TogglePayment(ctx context.Context, id string) (job.VehicleRecord, error) {
	return s.transition(ctx, id, "payment toggled", func(r job.VehicleRecord) (job.VehicleRecord, error) {
		return r.TogglePayment()
	})
}

// transition loads, applies a pure event and persists the result. Rejected
// events and store failures both leave the stored state untouched.
func (s *JobService) transition(ctx context.Context, id, action string, apply func(job.VehicleRecord) (job.VehicleRecord, error)) (job.VehicleRecord, error) {
	current, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return job.VehicleRecord{}, err
	}

	next, err := apply(*current)
	if err != nil {
		return job.VehicleRecord{}, err
	}
	return s.persist(ctx, next, action)
}

func (s *JobService) persist(ctx context.Context, record job.VehicleRecord, action string) (job.VehicleRecord, error) {
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

	s.logger.Info(action,
		zap.String("record_id", saved.ID),
		zap.String("status", string(saved.Status)),
	)
	return saved, nil
}

func (s *JobService) listAll(ctx context.Context) ([]job.VehicleRecord, error) {
	if records, ok := s.cache.GetRecords(ctx); ok {
		return records, nil
	}
	records, err := s.recordRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicle records: %w", err)
	}
	s.cache.SetRecords(ctx, records)
	return records, nil
}
