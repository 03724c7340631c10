package savedcontents

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/drezzle/drezzle-cli/internal/client/models"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Content, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM saved_contents ORDER BY saved_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved contents: %w", err)
	}
	defer rows.Close()

	var result []models.Content
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan saved content row: %w", err)
		}
		var c models.Content
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to decode saved content: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saved content rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, contents []models.Content) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM saved_contents`); err != nil {
		return fmt.Errorf("failed to clear saved contents: %w", err)
	}
	for _, c := range contents {
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to encode saved content %s: %w", c.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO saved_contents (id, data) VALUES (?, ?)`, c.ID, data); err != nil {
			return fmt.Errorf("failed to insert saved content %s: %w", c.ID, err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM saved_contents`); err != nil {
		return fmt.Errorf("failed to clear saved contents: %w", err)
	}
	return nil
}
