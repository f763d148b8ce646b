package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"workshop-service/internal/domain/inventory"
)

// InventoryRepository persists the parts collection. The store contract is
// whole-collection replacement, so Replace swaps the table contents inside
// one transaction to keep readers from seeing a half-written list.
type InventoryRepository struct {
	db *DB
}

func NewInventoryRepository(db *DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// List returns the parts in their stable ledger order.
func (r *InventoryRepository) List(ctx context.Context) ([]inventory.Part, error) {
	rows, err := r.db.Pool().Query(ctx, `SELECT data FROM inventory_parts ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	var parts []inventory.Part
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan inventory part: %w", err)
		}
		var part inventory.Part
		if err := json.Unmarshal(data, &part); err != nil {
			return nil, fmt.Errorf("failed to unmarshal inventory part: %w", err)
		}
		parts = append(parts, part)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	return parts, nil
}

// Replace overwrites the stored collection with the given list.
func (r *InventoryRepository) Replace(ctx context.Context, parts []inventory.Part) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin inventory replace: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE inventory_parts`); err != nil {
		return fmt.Errorf("failed to clear inventory: %w", err)
	}

	for i, part := range parts {
		data, err := json.Marshal(part)
		if err != nil {
			return fmt.Errorf("failed to marshal inventory part: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO inventory_parts (id, data, position) VALUES ($1, $2, $3)`,
			part.ID, data, i,
		); err != nil {
			return fmt.Errorf("failed to insert inventory part: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit inventory replace: %w", err)
	}
	return nil
}
