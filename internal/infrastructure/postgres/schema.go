package postgres

import (
	"context"
	"fmt"
)

// EnsureSchema crea las tablas al arrancar si no existen. No hay
// tooling de migraciones: el esquema son dos tablas y se declara aquí.
//
// stock_movements.product_id se indexa pero no lleva constraint FK: el
// ledger es append-only y sobrevive al borrado del producto (los
// movimientos quedan huérfanos por decisión explícita).
func EnsureSchema(ctx context.Context, q Querier) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			sku TEXT UNIQUE,
			cost_price NUMERIC(14,2) NOT NULL DEFAULT 0,
			sale_price NUMERIC(14,2) NOT NULL DEFAULT 0,
			current_stock INTEGER NOT NULL DEFAULT 0,
			reorder_threshold INTEGER NOT NULL DEFAULT 5
		)`,
		`CREATE TABLE IF NOT EXISTS stock_movements (
			id BIGSERIAL PRIMARY KEY,
			product_id BIGINT NOT NULL,
			kind TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			reason TEXT,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_movements_product_id ON stock_movements (product_id)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_movements_timestamp ON stock_movements (timestamp DESC)`,
	}
	for _, stmt := range statements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
