package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"news-classify/internal/repository"
)

type IndexRepo struct {
	db *sql.DB
}

func NewIndexRepo(db *sql.DB) repository.IndexRepository {
	return &IndexRepo{db: db}
}

// UpsertTokens ensures every token value exists in index_tokens and returns
// the value -> id mapping. Conflicting inserts are ignored so concurrent
// indexing of overlapping vocabularies stays safe.
func (repo *IndexRepo) UpsertTokens(ctx context.Context, values []string) (map[string]int64, error) {
	if len(values) == 0 {
		return map[string]int64{}, nil
	}

	placeholders := make([]string, len(values))
	args := make([]any, len(values))
	for i, v := range values {
		placeholders[i] = fmt.Sprintf("($%d)", i+1)
		args[i] = v
	}

	insert := `
INSERT INTO index_tokens (name)
VALUES ` + strings.Join(placeholders, ", ") + `
ON CONFLICT (name) DO NOTHING`
	if _, err := repo.db.ExecContext(ctx, insert, args...); err != nil {
		return nil, fmt.Errorf("UpsertTokens: insert: %w", err)
	}

	selectQuery := `
SELECT id, name
FROM index_tokens
WHERE name IN (` + joinParams(len(values)) + `)`
	rows, err := repo.db.QueryContext(ctx, selectQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("UpsertTokens: select: %w", err)
	}
	defer func() { _ = rows.Close() }()

	mapping := make(map[string]int64, len(values))
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("UpsertTokens: Scan: %w", err)
		}
		mapping[name] = id
	}
	return mapping, rows.Err()
}

// ReplaceEntries swaps a document's index entries inside one transaction so
// searches never observe a half-indexed document.
func (repo *IndexRepo) ReplaceEntries(ctx context.Context, documentID int64, entries []repository.IndexEntry) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ReplaceEntries: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM index_entries WHERE document_id = $1`, documentID); err != nil {
		return fmt.Errorf("ReplaceEntries: delete: %w", err)
	}

	if len(entries) > 0 {
		placeholders := make([]string, 0, len(entries))
		args := make([]any, 0, len(entries)*4)
		for i, e := range entries {
			base := i * 4
			placeholders = append(placeholders,
				fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
			args = append(args, e.TokenID, documentID, e.FieldID, e.Weight)
		}
		insert := `
INSERT INTO index_entries (token_id, document_id, field_id, weight)
VALUES ` + strings.Join(placeholders, ", ")
		if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
			return fmt.Errorf("ReplaceEntries: insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ReplaceEntries: commit: %w", err)
	}
	return nil
}

func (repo *IndexRepo) DeleteEntries(ctx context.Context, documentID int64) error {
	const query = `DELETE FROM index_entries WHERE document_id = $1`
	if _, err := repo.db.ExecContext(ctx, query, documentID); err != nil {
		return fmt.Errorf("DeleteEntries: %w", err)
	}
	return nil
}

// AggregateMatches computes the per-document match metrics for the given
// token values in a single grouped query.
func (repo *IndexRepo) AggregateMatches(ctx context.Context, tokenValues []string) ([]repository.DocumentMatch, error) {
	if len(tokenValues) == 0 {
		return []repository.DocumentMatch{}, nil
	}

	args := make([]any, len(tokenValues))
	for i, v := range tokenValues {
		args[i] = v
	}

	query := `
SELECT e.document_id,
       SUM(e.weight)                AS base_score,
       COUNT(DISTINCT e.token_id)   AS token_diversity,
       AVG(e.weight)                AS avg_weight
FROM index_entries e
INNER JOIN index_tokens t ON e.token_id = t.id
WHERE t.name IN (` + joinParams(len(tokenValues)) + `)
GROUP BY e.document_id`

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("AggregateMatches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	matches := make([]repository.DocumentMatch, 0, 64)
	for rows.Next() {
		var m repository.DocumentMatch
		if err := rows.Scan(&m.DocumentID, &m.BaseScore, &m.TokenDiversity, &m.AvgWeight); err != nil {
			return nil, fmt.Errorf("AggregateMatches: Scan: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (repo *IndexRepo) ResetIndex(ctx context.Context) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM index_entries`); err != nil {
		return fmt.Errorf("ResetIndex: entries: %w", err)
	}
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM index_tokens`); err != nil {
		return fmt.Errorf("ResetIndex: tokens: %w", err)
	}
	return nil
}

// joinParams renders "$1, $2, ..., $n" for IN clauses.
func joinParams(n int) string {
	params := make([]string, n)
	for i := range params {
		params[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(params, ", ")
}
