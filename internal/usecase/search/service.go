package search

import (
	"context"
	"fmt"
	"sort"

	"news-classify/internal/domain/entity"
	"news-classify/internal/pkg/search"
	"news-classify/internal/repository"
)

// maxQueryTokens caps the number of distinct token values sent to the store
// per query. Longer tokens are kept first because they carry the most signal.
const maxQueryTokens = 300

// DefaultLimit is the number of results returned when the caller does not
// specify one.
const DefaultLimit = 10

// Service executes weighted searches against the inverted index.
//
// Scoring: score = SUM(weight) * (1 + distinct matched tokens) * (1 + AVG(weight))
// normalized by the document's token count, so long reviews do not dominate
// purely by having more index entries.
type Service struct {
	NewsRepo   repository.NewsRepository
	IndexRepo  repository.IndexRepository
	Tokenizers []search.Tokenizer
}

// NewService creates a search Service with the default tokenizer chain.
func NewService(newsRepo repository.NewsRepository, indexRepo repository.IndexRepository) *Service {
	return &Service{
		NewsRepo:   newsRepo,
		IndexRepo:  indexRepo,
		Tokenizers: search.DefaultTokenizers(),
	}
}

// Search tokenizes the query, aggregates index matches store-side, scores and
// sorts them, and returns the top records in relevance order.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]*entity.News, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	values := s.queryTokenValues(query)
	if len(values) == 0 {
		return []*entity.News{}, nil
	}

	matches, err := s.IndexRepo.AggregateMatches(ctx, values)
	if err != nil {
		return nil, fmt.Errorf("aggregate matches: %w", err)
	}
	if len(matches) == 0 {
		return []*entity.News{}, nil
	}

	ids := make([]int64, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.DocumentID)
	}
	docs, err := s.NewsRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch documents: %w", err)
	}
	docByID := make(map[int64]*entity.News, len(docs))
	for _, d := range docs {
		docByID[d.ID] = d
	}

	type scored struct {
		id    int64
		score float64
	}
	results := make([]scored, 0, len(matches))
	for _, m := range matches {
		doc, ok := docByID[m.DocumentID]
		if !ok {
			// エントリだけ残った削除済みドキュメント
			continue
		}
		tokenCount := doc.TokenCount
		if tokenCount == 0 {
			tokenCount = 1
		}
		score := float64(m.BaseScore) *
			(1 + float64(m.TokenDiversity)) *
			(1 + m.AvgWeight) /
			float64(tokenCount)
		results = append(results, scored{id: m.DocumentID, score: score})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].score > results[j].score })
	if len(results) > limit {
		results = results[:limit]
	}

	out := make([]*entity.News, 0, len(results))
	for _, r := range results {
		out = append(out, docByID[r.id])
	}
	return out, nil
}

// queryTokenValues returns the distinct token values for a query, longest
// first, capped at maxQueryTokens.
func (s *Service) queryTokenValues(query string) []string {
	tokens := search.TokenizeAll(s.Tokenizers, query)

	seen := make(map[string]struct{}, len(tokens))
	values := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok.Value]; ok {
			continue
		}
		seen[tok.Value] = struct{}{}
		values = append(values, tok.Value)
	}

	sort.Slice(values, func(i, j int) bool { return len(values[i]) > len(values[j]) })
	if len(values) > maxQueryTokens {
		values = values[:maxQueryTokens]
	}
	return values
}
