// Package repository defines the data access interfaces used by the use case layer.
// Concrete implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"news-classify/internal/domain/entity"
)

// ListFilter contains pagination and filtering options for listing news records.
type ListFilter struct {
	Skip  int    // Number of records to skip
	Limit int    // Maximum number of records to return
	Label string // Optional: exact-match filter on label ("" disables the filter)
}

// LabelCount pairs a label with the number of records carrying it.
type LabelCount struct {
	Label string
	Count int64
}

type NewsRepository interface {
	// Create inserts a new record and fills the store-assigned fields
	// (ID, CreatedAt, UpdatedAt) on the passed entity.
	Create(ctx context.Context, news *entity.News) error
	// CreateBatch inserts multiple records in a single statement.
	// Used by the seed loader; an empty slice is a no-op.
	CreateBatch(ctx context.Context, records []*entity.News) error
	// Get retrieves a record by ID.
	// Returns (nil, nil) if the record is not found.
	Get(ctx context.Context, id int64) (*entity.News, error)
	// GetByIDs retrieves the records for the given IDs, in no particular order.
	GetByIDs(ctx context.Context, ids []int64) ([]*entity.News, error)
	// List retrieves records in stable insertion (id) order,
	// applying the filter's label match, skip and limit.
	List(ctx context.Context, filter ListFilter) ([]*entity.News, error)
	// Count returns the number of records, restricted to a label when non-empty.
	Count(ctx context.Context, label string) (int64, error)
	// Update persists review, label and updated_at for an existing record.
	// Returns false if no row matched the ID.
	Update(ctx context.Context, news *entity.News) (bool, error)
	// Delete removes a record. Returns false if no row matched the ID.
	Delete(ctx context.Context, id int64) (bool, error)
	// DeleteAll removes every record and returns the number removed.
	// Used by the seed loader on a forced reseed.
	DeleteAll(ctx context.Context) (int64, error)
	// Stats returns the total record count and the per-label distribution,
	// both computed store-side.
	Stats(ctx context.Context) (int64, []LabelCount, error)
	// SetTokenCount stores the number of index entries for a record,
	// used by search-score length normalization.
	SetTokenCount(ctx context.Context, id int64, count int) error
}
