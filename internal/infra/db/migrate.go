package db

import "database/sql"

// MigrateUp creates the schema if it does not exist.
// Statements are idempotent so the API and the seed command can both run them.
func MigrateUp(database *sql.DB) error {
	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS news_classifications (
    id          SERIAL PRIMARY KEY,
    review      TEXT NOT NULL,
    label       VARCHAR(255) NOT NULL,
    token_count INTEGER NOT NULL DEFAULT 0,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS index_tokens (
    id   SERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
)`); err != nil {
		return err
	}

	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS index_entries (
    id          SERIAL PRIMARY KEY,
    token_id    INTEGER NOT NULL REFERENCES index_tokens(id) ON DELETE CASCADE,
    document_id INTEGER NOT NULL,
    field_id    VARCHAR(50) NOT NULL,
    weight      INTEGER NOT NULL
)`); err != nil {
		return err
	}

	indexes := []string{
		// label 絞り込みと GROUP BY label の統計クエリ用
		`CREATE INDEX IF NOT EXISTS idx_news_classifications_label ON news_classifications(label)`,
		// 検索時のトークン照合用
		`CREATE INDEX IF NOT EXISTS idx_index_entries_token_id ON index_entries(token_id)`,
		// 再インデックス時のドキュメント単位削除用
		`CREATE INDEX IF NOT EXISTS idx_index_entries_document_id ON index_entries(document_id)`,
	}
	for _, idx := range indexes {
		if _, err := database.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown drops the schema in reverse dependency order.
// Use with caution: this deletes all data.
func MigrateDown(database *sql.DB) error {
	statements := []string{
		`DROP TABLE IF EXISTS index_entries`,
		`DROP TABLE IF EXISTS index_tokens`,
		`DROP TABLE IF EXISTS news_classifications`,
	}
	for _, stmt := range statements {
		if _, err := database.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
