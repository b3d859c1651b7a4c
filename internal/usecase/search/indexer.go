// Package search implements the inverted-index full-text search over news
// classification records: index maintenance on writes and weighted scoring
// on queries.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"news-classify/internal/domain/entity"
	"news-classify/internal/pkg/search"
	"news-classify/internal/repository"
)

// fieldWeight is the weight of the review field. There is a single indexed
// field today, but entries carry a field_id so additional fields can join
// the index without a schema change.
const fieldWeight = 10

// Indexer maintains the inverted index for news records.
// It implements the news use case's IndexHook: index maintenance runs in the
// write path but never fails the write, errors are logged and dropped.
type Indexer struct {
	NewsRepo   repository.NewsRepository
	IndexRepo  repository.IndexRepository
	Tokenizers []search.Tokenizer
	Logger     *slog.Logger
}

// NewIndexer creates an Indexer with the default tokenizer chain.
func NewIndexer(newsRepo repository.NewsRepository, indexRepo repository.IndexRepository, logger *slog.Logger) *Indexer {
	return &Indexer{
		NewsRepo:   newsRepo,
		IndexRepo:  indexRepo,
		Tokenizers: search.DefaultTokenizers(),
		Logger:     logger,
	}
}

// DocumentChanged reindexes a single record after create or update.
func (ix *Indexer) DocumentChanged(ctx context.Context, news *entity.News) {
	if err := ix.IndexDocument(ctx, news); err != nil {
		ix.Logger.Error("failed to index document",
			slog.Int64("id", news.ID),
			slog.Any("error", err))
	}
}

// DocumentRemoved drops a record's entries after delete.
func (ix *Indexer) DocumentRemoved(ctx context.Context, id int64) {
	if err := ix.IndexRepo.DeleteEntries(ctx, id); err != nil {
		ix.Logger.Error("failed to remove document from index",
			slog.Int64("id", id),
			slog.Any("error", err))
	}
}

// IndexDocument tokenizes the record's review text and replaces its index
// entries. The entry weight combines the field weight, the tokenizer weight
// and a sub-linear bonus for longer tokens.
func (ix *Indexer) IndexDocument(ctx context.Context, news *entity.News) error {
	tokens := search.TokenizeAll(ix.Tokenizers, news.Review)

	values := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok.Value]; ok {
			continue
		}
		seen[tok.Value] = struct{}{}
		values = append(values, tok.Value)
	}

	tokenIDs, err := ix.IndexRepo.UpsertTokens(ctx, values)
	if err != nil {
		return fmt.Errorf("upsert tokens: %w", err)
	}

	entries := make([]repository.IndexEntry, 0, len(tokens))
	for _, tok := range tokens {
		id, ok := tokenIDs[tok.Value]
		if !ok {
			continue
		}
		weight := fieldWeight * tok.Weight * int(math.Ceil(math.Sqrt(float64(len(tok.Value)))))
		entries = append(entries, repository.IndexEntry{
			TokenID:    id,
			DocumentID: news.ID,
			FieldID:    "review",
			Weight:     weight,
		})
	}

	if err := ix.IndexRepo.ReplaceEntries(ctx, news.ID, entries); err != nil {
		return fmt.Errorf("replace entries: %w", err)
	}

	if err := ix.NewsRepo.SetTokenCount(ctx, news.ID, len(entries)); err != nil {
		return fmt.Errorf("set token count: %w", err)
	}
	return nil
}

// ReindexAll rebuilds the whole index from scratch. Used after bulk seeding.
func (ix *Indexer) ReindexAll(ctx context.Context) error {
	if err := ix.IndexRepo.ResetIndex(ctx); err != nil {
		return fmt.Errorf("reset index: %w", err)
	}

	const batchSize = 500
	skip := 0
	for {
		records, err := ix.NewsRepo.List(ctx, repository.ListFilter{Skip: skip, Limit: batchSize})
		if err != nil {
			return fmt.Errorf("list records: %w", err)
		}
		for _, rec := range records {
			if err := ix.IndexDocument(ctx, rec); err != nil {
				return fmt.Errorf("index document %d: %w", rec.ID, err)
			}
		}
		if len(records) < batchSize {
			return nil
		}
		skip += batchSize
	}
}
