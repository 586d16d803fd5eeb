package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer runs a statement that returns no rows. *pgxpool.Pool, *pgx.Conn
// and pgx.Tx all satisfy it.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// ProductsTable is the name of the only table the service owns.
const ProductsTable = "products"

const createProductsTable = `
	CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		price DOUBLE PRECISION,
		stock INTEGER
	)
`

const dropProductsTable = `DROP TABLE IF EXISTS products`

// CreateSchema creates the products table. It is safe to run repeatedly.
func CreateSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, createProductsTable); err != nil {
		return fmt.Errorf("failed to create %s table: %w", ProductsTable, err)
	}
	return nil
}

// DropSchema drops the products table and every row in it.
func DropSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, dropProductsTable); err != nil {
		return fmt.Errorf("failed to drop %s table: %w", ProductsTable, err)
	}
	return nil
}
