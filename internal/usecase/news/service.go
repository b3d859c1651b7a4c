package news

import (
	"context"
	"fmt"
	"strings"

	"news-classify/internal/domain/entity"
	"news-classify/internal/repository"
)

// CreateInput represents the input parameters for creating a new record.
type CreateInput struct {
	Review string
	Label  string
}

// UpdateInput represents the input parameters for a partial update.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID     int64
	Review *string
	Label  *string
}

// ListParams contains pagination and filtering parameters for List.
type ListParams struct {
	Skip  int
	Limit int
	Label string
}

// Stats holds the aggregate statistics over the record store.
type Stats struct {
	TotalRecords      int64
	LabelDistribution map[string]int64
}

// IndexHook receives change notifications so the search index can follow
// record mutations. Index maintenance must never fail a write, so
// implementations log their own errors.
type IndexHook interface {
	DocumentChanged(ctx context.Context, news *entity.News)
	DocumentRemoved(ctx context.Context, id int64)
}

// Service provides news classification management use cases.
// It handles business logic for record operations and delegates persistence
// to the repository. Index is optional; when nil, no search index is maintained.
type Service struct {
	Repo  repository.NewsRepository
	Index IndexHook
}

// Create validates the input and inserts a new record.
// Returns a ValidationError when review or label is empty.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.News, error) {
	record := &entity.News{
		Review: strings.TrimSpace(in.Review),
		Label:  strings.TrimSpace(in.Label),
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	s.notifyChanged(ctx, record)
	return record, nil
}

// Get retrieves a single record by its ID.
// Returns ErrInvalidNewsID if the ID is not positive.
// Returns ErrNewsNotFound if the record does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.News, error) {
	if id <= 0 {
		return nil, ErrInvalidNewsID
	}

	record, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	if record == nil {
		return nil, ErrNewsNotFound
	}
	return record, nil
}

// List retrieves records in stable insertion order with skip/limit pagination
// and an optional exact-match label filter. Parameter bounds are checked by
// the handler; List only guards against nonsensical values.
func (s *Service) List(ctx context.Context, params ListParams) ([]*entity.News, error) {
	if params.Skip < 0 {
		return nil, &entity.ValidationError{Field: "skip", Message: "must be non-negative"}
	}
	if params.Limit <= 0 {
		return nil, &entity.ValidationError{Field: "limit", Message: "must be positive"}
	}

	records, err := s.Repo.List(ctx, repository.ListFilter{
		Skip:  params.Skip,
		Limit: params.Limit,
		Label: params.Label,
	})
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return records, nil
}

// Count returns the number of records matching the optional label filter.
func (s *Service) Count(ctx context.Context, label string) (int64, error) {
	count, err := s.Repo.Count(ctx, label)
	if err != nil {
		return 0, fmt.Errorf("count news: %w", err)
	}
	return count, nil
}

// Update applies a partial update to review and/or label.
// Returns ErrInvalidNewsID if the ID is not positive.
// Returns ErrNewsNotFound if the record does not exist.
// Returns a ValidationError if an updated field would become empty.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.News, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidNewsID
	}

	record, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	if record == nil {
		return nil, ErrNewsNotFound
	}

	if in.Review != nil {
		record.Review = strings.TrimSpace(*in.Review)
	}
	if in.Label != nil {
		record.Label = strings.TrimSpace(*in.Label)
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	found, err := s.Repo.Update(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	if !found {
		// 取得後に並行削除されたケース
		return nil, ErrNewsNotFound
	}
	s.notifyChanged(ctx, record)
	return record, nil
}

// Delete removes a record.
// Returns ErrInvalidNewsID if the ID is not positive.
// Returns ErrNewsNotFound if the record does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidNewsID
	}

	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if !deleted {
		return ErrNewsNotFound
	}
	if s.Index != nil {
		s.Index.DocumentRemoved(ctx, id)
	}
	return nil
}

// Stats returns the total record count and the per-label distribution.
// The total always equals the sum of the distribution values because both
// are computed in the same store snapshot.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	total, counts, err := s.Repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	dist := make(map[string]int64, len(counts))
	for _, lc := range counts {
		dist[lc.Label] = lc.Count
	}
	return &Stats{TotalRecords: total, LabelDistribution: dist}, nil
}

func (s *Service) notifyChanged(ctx context.Context, record *entity.News) {
	if s.Index == nil {
		return
	}
	s.Index.DocumentChanged(ctx, record)
}
