package repository

import "context"

// IndexEntry links a token to a document with a precomputed weight.
type IndexEntry struct {
	TokenID    int64
	DocumentID int64
	FieldID    string
	Weight     int
}

// DocumentMatch holds the aggregated match metrics for one document,
// computed store-side over the entries matching a query's tokens.
type DocumentMatch struct {
	DocumentID     int64
	BaseScore      int64   // SUM(weight)
	TokenDiversity int64   // COUNT(DISTINCT token_id)
	AvgWeight      float64 // AVG(weight)
}

type IndexRepository interface {
	// UpsertTokens ensures every token value exists and returns the
	// value -> id mapping for all of them.
	UpsertTokens(ctx context.Context, values []string) (map[string]int64, error)
	// ReplaceEntries atomically replaces the index entries for a document.
	ReplaceEntries(ctx context.Context, documentID int64, entries []IndexEntry) error
	// DeleteEntries removes all entries for a document.
	DeleteEntries(ctx context.Context, documentID int64) error
	// AggregateMatches aggregates entry weights per document for the given
	// token values: SUM(weight), COUNT(DISTINCT token_id), AVG(weight).
	AggregateMatches(ctx context.Context, tokenValues []string) ([]DocumentMatch, error)
	// ResetIndex deletes all tokens and entries. Used before a full reindex.
	ResetIndex(ctx context.Context) error
}
