package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"workshop-service/internal/domain/job"
	xerrors "workshop-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// VehicleRecordRepository persists records as whole JSONB blobs, one row per
// record. Update replaces the entire blob: the store offers no partial
// patches, so the later of two racing writers wins.
type VehicleRecordRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRecordRepository(db *pgxpool.Pool) *VehicleRecordRepository {
	return &VehicleRecordRepository{db: db}
}

// List returns every record, newest intake first.
func (r *VehicleRecordRepository) List(ctx context.Context) ([]job.VehicleRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT data FROM vehicle_records ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle records: %w", err)
	}
	defer rows.Close()

	var records []job.VehicleRecord
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle record: %w", err)
		}
		var record job.VehicleRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vehicle record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vehicle records: %w", err)
	}
	return records, nil
}

func (r *VehicleRecordRepository) FindByID(ctx context.Context, id string) (*job.VehicleRecord, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `SELECT data FROM vehicle_records WHERE id = $1`, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle record: %w", err)
	}

	var record job.VehicleRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vehicle record: %w", err)
	}
	return &record, nil
}

func (r *VehicleRecordRepository) Create(ctx context.Context, record job.VehicleRecord) (job.VehicleRecord, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return job.VehicleRecord{}, fmt.Errorf("failed to marshal vehicle record: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO vehicle_records (id, data, created_at) VALUES ($1, $2, $3)`,
		record.ID, data, record.CreatedAt,
	)
	if err != nil {
		return job.VehicleRecord{}, fmt.Errorf("failed to create vehicle record: %w", err)
	}
	return record, nil
}

func (r *VehicleRecordRepository) Update(ctx context.Context, record job.VehicleRecord) (job.VehicleRecord, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return job.VehicleRecord{}, fmt.Errorf("failed to marshal vehicle record: %w", err)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE vehicle_records SET data = $2 WHERE id = $1`,
		record.ID, data,
	)
	if err != nil {
		return job.VehicleRecord{}, fmt.Errorf("failed to update vehicle record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.VehicleRecord{}, xerrors.ErrNotFound
	}
	return record, nil
}
