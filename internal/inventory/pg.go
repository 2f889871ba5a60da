package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres class 23505: unique constraint violated.
const uniqueViolationCode = "23505"

// PGStore persists product records in a single Postgres table with a unique
// index on product_id.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore constructs a Postgres-backed store.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Create inserts a record, relying on the unique index to reject duplicates
// atomically at the storage layer.
func (s *PGStore) Create(ctx context.Context, rec Record) (Record, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO products (product_id, product_name, category, quantity, rate, location, price, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		rec.ProductID, rec.ProductName, rec.Category, rec.Quantity, rec.Rate, rec.Location, rec.Price, rec.TotalAmount,
	)
	if err := row.Scan(&rec.CreatedAt, &rec.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return Record{}, ErrDuplicateID
		}
		return Record{}, fmt.Errorf("insert product: %w", err)
	}
	return rec, nil
}

// List returns every record in insertion order.
func (s *PGStore) List(ctx context.Context) ([]Record, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT product_id, product_name, category, quantity, rate, location, price, total_amount, created_at, updated_at
		FROM products
		ORDER BY created_at, product_id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ProductID, &rec.ProductName, &rec.Category, &rec.Quantity, &rec.Rate,
			&rec.Location, &rec.Price, &rec.TotalAmount, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return records, nil
}

// GetByProductID fetches a single record by its business key.
func (s *PGStore) GetByProductID(ctx context.Context, productID string) (Record, error) {
	var rec Record
	row := s.pool.QueryRow(ctx, `
		SELECT product_id, product_name, category, quantity, rate, location, price, total_amount, created_at, updated_at
		FROM products
		WHERE product_id = $1`,
		productID,
	)
	err := row.Scan(
		&rec.ProductID, &rec.ProductName, &rec.Category, &rec.Quantity, &rec.Rate,
		&rec.Location, &rec.Price, &rec.TotalAmount, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("get product: %w", err)
	}
	return rec, nil
}

// UpdateByProductID replaces the mutable fields of a record and bumps
// updated_at. Missing rows surface as ErrNotFound rather than a silent no-op.
func (s *PGStore) UpdateByProductID(ctx context.Context, productID string, rec Record) (Record, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE products
		SET product_name = $2, category = $3, quantity = $4, rate = $5, location = $6,
		    price = $7, total_amount = $8, updated_at = now()
		WHERE product_id = $1
		RETURNING created_at, updated_at`,
		productID, rec.ProductName, rec.Category, rec.Quantity, rec.Rate, rec.Location, rec.Price, rec.TotalAmount,
	)
	if err := row.Scan(&rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("update product: %w", err)
	}
	rec.ProductID = productID
	return rec, nil
}

// DeleteByProductID removes a record by its business key.
func (s *PGStore) DeleteByProductID(ctx context.Context, productID string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
