package inventory

import (
	"context"
	"fmt"

	"workshop-service/internal/domain/inventory"
	"workshop-service/internal/domain/job"
	"workshop-service/internal/pkg/cache"
	xerrors "workshop-service/internal/pkg/errors"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Office defaults applied when the add form leaves fields blank.
const (
	defaultSource    = "Local Supplier"
	defaultThreshold = 5
)

// InventoryPublisher pushes the committed parts collection to views.
type InventoryPublisher interface {
	PublishInventory(parts []inventory.Part)
}

// InventoryService owns the stock ledger. Stock never moves when a job
// consumes a part; quote acceptance and physical depletion are deliberately
// independent.
type InventoryService struct {
	repo      inventory.Repository
	cache     *cache.Collections
	publisher InventoryPublisher
	logger    *zap.Logger
}

func NewInventoryService(
	repo inventory.Repository,
	collections *cache.Collections,
	publisher InventoryPublisher,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{
		repo:      repo,
		cache:     collections,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *InventoryService) List(ctx context.Context) ([]inventory.Part, error) {
	if parts, ok := s.cache.GetInventory(ctx); ok {
		return parts, nil
	}
	parts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	s.cache.SetInventory(ctx, parts)
	return parts, nil
}

// LowStock returns the parts needing reorder.
func (s *InventoryService) LowStock(ctx context.Context) ([]inventory.Part, error) {
	parts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return inventory.LowStock(parts), nil
}

// AddPart appends a part with a fresh id, applying the office defaults.
func (s *InventoryService) AddPart(ctx context.Context, req *inventory.AddPartRequest) (inventory.Part, error) {
	if err := job.ValidateAmount(*req.Price); err != nil {
		return inventory.Part{}, err
	}
	if err := job.ValidateAmount(*req.LaborEstimate); err != nil {
		return inventory.Part{}, err
	}
	if req.StockQuantity < 0 {
		return inventory.Part{}, xerrors.ErrInvalidInput
	}

	part := inventory.Part{
		ID:            ulid.Make().String(),
		Name:          req.Name,
		Price:         *req.Price,
		LaborEstimate: *req.LaborEstimate,
		Condition:     req.Condition,
		Source:        req.Source,
		StockQuantity: req.StockQuantity,
	}
	if part.Condition == "" {
		part.Condition = job.ConditionNew
	}
	if part.Source == "" {
		part.Source = defaultSource
	}
	if req.LowStockThreshold != nil {
		part.LowStockThreshold = *req.LowStockThreshold
	} else {
		part.LowStockThreshold = defaultThreshold
	}

	parts, err := s.repo.List(ctx)
	if err != nil {
		return inventory.Part{}, fmt.Errorf("failed to load inventory: %w", err)
	}
	parts = append(parts, part)

	if err := s.replace(ctx, parts, "inventory part added"); err != nil {
		return inventory.Part{}, err
	}
	return part, nil
}

// UpdateThreshold changes the low-stock alert level of one part.
func (s *InventoryService) UpdateThreshold(ctx context.Context, id string, threshold int) (inventory.Part, error) {
	if threshold < 0 {
		return inventory.Part{}, xerrors.ErrInvalidInput
	}

	parts, err := s.repo.List(ctx)
	if err != nil {
		return inventory.Part{}, fmt.Errorf("failed to load inventory: %w", err)
	}

	updated := inventory.Part{}
	found := false
	for i, p := range parts {
		if p.ID == id {
			parts[i].LowStockThreshold = threshold
			updated = parts[i]
			found = true
			break
		}
	}
	if !found {
		return inventory.Part{}, xerrors.ErrNotFound
	}

	if err := s.replace(ctx, parts, "low-stock threshold updated"); err != nil {
		return inventory.Part{}, err
	}
	return updated, nil
}

// RemovePart deletes a part from the ledger.
func (s *InventoryService) RemovePart(ctx context.Context, id string) error {
	parts, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	remaining := make([]inventory.Part, 0, len(parts))
	for _, p := range parts {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(parts) {
		return xerrors.ErrNotFound
	}

	return s.replace(ctx, remaining, "inventory part removed")
}

func (s *InventoryService) replace(ctx context.Context, parts []inventory.Part, action string) error {
	if err := s.repo.Replace(ctx, parts); err != nil {
		s.logger.Error("failed to persist inventory", zap.String("action", action), zap.Error(err))
		return fmt.Errorf("failed to save inventory: %w", err)
	}

	s.cache.InvalidateInventory(ctx)
	s.publisher.PublishInventory(parts)

	s.logger.Info(action, zap.Int("total_parts", len(parts)))
	return nil
}
