package job

import "context"

// Repository is the external record store boundary. All operations are
// whole-entity: there is no partial-field update and no store-side
// filtering. The later Update of two racing writers fully overwrites the
// earlier one.
type Repository interface {
	List(ctx context.Context) ([]VehicleRecord, error)
	FindByID(ctx context.Context, id string) (*VehicleRecord, error)
	Create(ctx context.Context, record VehicleRecord) (VehicleRecord, error)
	Update(ctx context.Context, record VehicleRecord) (VehicleRecord, error)
}
