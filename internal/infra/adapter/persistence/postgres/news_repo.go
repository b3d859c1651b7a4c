// Package postgres provides PostgreSQL implementations of the repository interfaces.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"news-classify/internal/domain/entity"
	"news-classify/internal/repository"
)

type NewsRepo struct {
	db *sql.DB
}

func NewNewsRepo(db *sql.DB) repository.NewsRepository {
	return &NewsRepo{db: db}
}

func (repo *NewsRepo) Create(ctx context.Context, news *entity.News) error {
	const query = `
INSERT INTO news_classifications (review, label, created_at, updated_at)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at`
	now := time.Now().UTC()
	err := repo.db.QueryRowContext(ctx, query, news.Review, news.Label, now, now).
		Scan(&news.ID, &news.CreatedAt, &news.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// CreateBatch inserts multiple records with a single multi-row INSERT.
// Used by the seed loader; an empty batch is a no-op.
func (repo *NewsRepo) CreateBatch(ctx context.Context, records []*entity.News) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now().UTC()
	placeholders := make([]string, 0, len(records))
	args := make([]any, 0, len(records)*4)
	for i, rec := range records {
		base := i * 4
		placeholders = append(placeholders,
			fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, rec.Review, rec.Label, now, now)
	}

	query := `
INSERT INTO news_classifications (review, label, created_at, updated_at)
VALUES ` + strings.Join(placeholders, ", ")

	if _, err := repo.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("CreateBatch: %w", err)
	}
	return nil
}

func (repo *NewsRepo) Get(ctx context.Context, id int64) (*entity.News, error) {
	const query = `
SELECT id, review, label, token_count, created_at, updated_at
FROM news_classifications
WHERE id = $1
LIMIT 1`
	var news entity.News
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&news.ID, &news.Review, &news.Label, &news.TokenCount,
			&news.CreatedAt, &news.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &news, nil
}

func (repo *NewsRepo) GetByIDs(ctx context.Context, ids []int64) ([]*entity.News, error) {
	if len(ids) == 0 {
		return []*entity.News{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := `
SELECT id, review, label, token_count, created_at, updated_at
FROM news_classifications
WHERE id IN (` + strings.Join(placeholders, ", ") + `)`

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("GetByIDs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]*entity.News, 0, len(ids))
	for rows.Next() {
		var news entity.News
		if err := rows.Scan(&news.ID, &news.Review, &news.Label, &news.TokenCount,
			&news.CreatedAt, &news.UpdatedAt); err != nil {
			return nil, fmt.Errorf("GetByIDs: Scan: %w", err)
		}
		records = append(records, &news)
	}
	return records, rows.Err()
}

// List retrieves records in insertion (id) order with OFFSET/LIMIT pagination
// and an optional exact-match label filter.
func (repo *NewsRepo) List(ctx context.Context, filter repository.ListFilter) ([]*entity.News, error) {
	var sb strings.Builder
	sb.WriteString(`
SELECT id, review, label, token_count, created_at, updated_at
FROM news_classifications`)

	args := make([]any, 0, 3)
	if filter.Label != "" {
		args = append(args, filter.Label)
		sb.WriteString(fmt.Sprintf("\nWHERE label = $%d", len(args)))
	}
	args = append(args, filter.Limit)
	sb.WriteString(fmt.Sprintf("\nORDER BY id\nLIMIT $%d", len(args)))
	args = append(args, filter.Skip)
	sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))

	rows, err := repo.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]*entity.News, 0, filter.Limit)
	for rows.Next() {
		var news entity.News
		if err := rows.Scan(&news.ID, &news.Review, &news.Label, &news.TokenCount,
			&news.CreatedAt, &news.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		records = append(records, &news)
	}
	return records, rows.Err()
}

func (repo *NewsRepo) Count(ctx context.Context, label string) (int64, error) {
	query := `SELECT COUNT(*) FROM news_classifications`
	args := []any{}
	if label != "" {
		query += ` WHERE label = $1`
		args = append(args, label)
	}

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *NewsRepo) Update(ctx context.Context, news *entity.News) (bool, error) {
	const query = `
UPDATE news_classifications SET
	review     = $1,
	label      = $2,
	updated_at = $3
WHERE id = $4`
	news.UpdatedAt = time.Now().UTC()
	res, err := repo.db.ExecContext(ctx, query,
		news.Review, news.Label, news.UpdatedAt, news.ID)
	if err != nil {
		return false, fmt.Errorf("Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Update: RowsAffected: %w", err)
	}
	return affected > 0, nil
}

func (repo *NewsRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM news_classifications WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	return affected > 0, nil
}

// DeleteAll removes every record, used by forced reseeds.
func (repo *NewsRepo) DeleteAll(ctx context.Context) (int64, error) {
	const query = `DELETE FROM news_classifications`
	res, err := repo.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("DeleteAll: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteAll: RowsAffected: %w", err)
	}
	return affected, nil
}

// Stats aggregates the record count and per-label distribution store-side.
func (repo *NewsRepo) Stats(ctx context.Context) (int64, []repository.LabelCount, error) {
	const countQuery = `SELECT COUNT(*) FROM news_classifications`
	var total int64
	if err := repo.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return 0, nil, fmt.Errorf("Stats: count: %w", err)
	}

	const distQuery = `
SELECT label, COUNT(*)
FROM news_classifications
GROUP BY label
ORDER BY label`
	rows, err := repo.db.QueryContext(ctx, distQuery)
	if err != nil {
		return 0, nil, fmt.Errorf("Stats: distribution: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make([]repository.LabelCount, 0, 16)
	for rows.Next() {
		var lc repository.LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return 0, nil, fmt.Errorf("Stats: Scan: %w", err)
		}
		counts = append(counts, lc)
	}
	return total, counts, rows.Err()
}

func (repo *NewsRepo) SetTokenCount(ctx context.Context, id int64, count int) error {
	const query = `UPDATE news_classifications SET token_count = $1 WHERE id = $2`
	if _, err := repo.db.ExecContext(ctx, query, count, id); err != nil {
		return fmt.Errorf("SetTokenCount: %w", err)
	}
	return nil
}
