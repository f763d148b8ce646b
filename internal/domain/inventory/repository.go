package inventory

import "context"

// Repository persists the inventory collection as a whole. The store offers
// no per-part updates; the ledger replaces the full list on every change.
type Repository interface {
	List(ctx context.Context) ([]Part, error)
	Replace(ctx context.Context, parts []Part) error
}
