package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	sqliteTimeLayout = time.RFC3339Nano

	// MemoryDSN keeps the store in process memory; nothing survives a restart.
	MemoryDSN = "file:backalley?mode=memory&cache=shared"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenSQLite opens dsn and applies migrations. A single connection is kept so
// an in-memory database is not recreated per pooled connection.
func OpenSQLite(dsn string) (*SQLiteRepository, error) {
	if strings.TrimSpace(dsn) == "" {
		dsn = MemoryDSN
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) GetItem(ctx context.Context, id string) (InventoryItem, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, notes, quantity, position, updated_at
		FROM inventory_items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return InventoryItem{}, ErrNotFound
		}
		return InventoryItem{}, err
	}
	return item, nil
}

func (r *SQLiteRepository) ListItems(ctx context.Context, filter InventoryListFilter) ([]InventoryItem, error) {
	query := `SELECT id, name, notes, quantity, position, updated_at FROM inventory_items`
	args := make([]any, 0, 3)
	if prefix := strings.TrimSpace(filter.NamePrefix); prefix != "" {
		query += ` WHERE lower(name) LIKE ?`
		args = append(args, strings.ToLower(prefix)+"%")
	}
	query += ` ORDER BY position ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]InventoryItem, 0)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpdateQuantity(ctx context.Context, id string, quantity int, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE inventory_items SET quantity = ?, updated_at = ? WHERE id = ?`,
		quantity, mustTime(at), id,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, items []InventoryItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM inventory_items`); err != nil {
		return fmt.Errorf("clear inventory: %w", err)
	}
	for _, in := range items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO inventory_items (id, name, notes, quantity, position, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			in.ID, in.Name, in.Notes, in.Quantity, in.Position, mustTime(in.UpdatedAt),
		); err != nil {
			return fmt.Errorf("insert inventory item %s: %w", in.Name, err)
		}
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (InventoryItem, error) {
	var out InventoryItem
	var updated string
	if err := s.Scan(&out.ID, &out.Name, &out.Notes, &out.Quantity, &out.Position, &updated); err != nil {
		return InventoryItem{}, err
	}
	updatedAt, err := parseRequiredTime(updated)
	if err != nil {
		return InventoryItem{}, err
	}
	out.UpdatedAt = updatedAt
	return out, nil
}

func applyPagination(args *[]any, limit, offset int) string {
	if limit <= 0 {
		return ""
	}
	*args = append(*args, limit, offset)
	return ` LIMIT ? OFFSET ?`
}

func mustTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(raw string) (time.Time, error) {
	t, err := time.Parse(sqliteTimeLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", raw, err)
	}
	return t, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
