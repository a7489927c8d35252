// Package sqlite persists orders in a SQLite database. Header fields are
// stored as columns for listing; the full aggregate is stored as a JSON
// document.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/stitchworks/orderplan/pkg/domain/entities"
	"github.com/stitchworks/orderplan/pkg/domain/repositories"
)

const schema = `
CREATE TABLE IF NOT EXISTS orders (
	id            TEXT PRIMARY KEY,
	style_ref     TEXT NOT NULL,
	buyer         TEXT NOT NULL,
	season        TEXT NOT NULL DEFAULT '',
	order_date    TEXT NOT NULL,
	delivery_date TEXT NOT NULL,
	document      TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_style_ref ON orders(style_ref);
`

type orderRow struct {
	ID       string `db:"id"`
	Document string `db:"document"`
}

// OrderStore is a SQLite-backed order repository
type OrderStore struct {
	db *sqlx.DB
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderStore)(nil)

// Open opens (creating if necessary) the order database at path. Use
// ":memory:" for an ephemeral store.
func Open(path string) (*OrderStore, error) {
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open order database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize order schema: %w", err)
	}
	return &OrderStore{db: db}, nil
}

// Close releases the underlying database handle
func (s *OrderStore) Close() error {
	return s.db.Close()
}

// Get loads the full order aggregate for an id
func (s *OrderStore) Get(ctx context.Context, id string) (*entities.Order, error) {
	var row orderRow
	err := s.db.GetContext(ctx, &row, `SELECT id, document FROM orders WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("load order %s: %w", id, err)
	}
	return decodeOrder(row)
}

// List loads every stored order sorted by style reference
func (s *OrderStore) List(ctx context.Context) ([]*entities.Order, error) {
	var rows []orderRow
	err := s.db.SelectContext(ctx, &rows, `SELECT id, document FROM orders ORDER BY style_ref, id`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]*entities.Order, 0, len(rows))
	for _, row := range rows {
		order, err := decodeOrder(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// Save upserts an order, replacing any stored document with the same id
func (s *OrderStore) Save(ctx context.Context, order *entities.Order) error {
	if order.ID == "" {
		return fmt.Errorf("order id cannot be empty")
	}

	document, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order %s: %w", order.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO orders (id, style_ref, buyer, season, order_date, delivery_date, document, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			style_ref     = excluded.style_ref,
			buyer         = excluded.buyer,
			season        = excluded.season,
			order_date    = excluded.order_date,
			delivery_date = excluded.delivery_date,
			document      = excluded.document,
			updated_at    = excluded.updated_at`,
		order.ID,
		order.StyleRef,
		order.Buyer,
		order.Season,
		order.OrderDate.Format(time.RFC3339),
		order.DeliveryDate.Format(time.RFC3339),
		string(document),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save order %s: %w", order.ID, err)
	}
	return nil
}

// Delete removes an order. Deleting an unknown id is a no-op.
func (s *OrderStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}
	return nil
}

func decodeOrder(row orderRow) (*entities.Order, error) {
	var order entities.Order
	if err := json.Unmarshal([]byte(row.Document), &order); err != nil {
		return nil, fmt.Errorf("decode order %s: %w", row.ID, err)
	}
	return &order, nil
}
