package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL idempotente del esquema completo; se aplica al arrancar.
const schema = `
CREATE TABLE IF NOT EXISTS stores (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	owner_name  TEXT NOT NULL,
	mobile      TEXT NOT NULL,
	address     TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS repair_works (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	price       NUMERIC(12,2) NOT NULL CHECK (price >= 0),
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS work_orders (
	id             UUID PRIMARY KEY,
	customer_name  TEXT NOT NULL,
	clothes_name   TEXT NOT NULL DEFAULT '',
	store_id       UUID NOT NULL,
	store_name     TEXT NOT NULL,
	total_amount   NUMERIC(12,2) NOT NULL,
	date           TIMESTAMPTZ NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_work_orders_store_date ON work_orders (store_id, date);

CREATE TABLE IF NOT EXISTS work_order_items (
	id             UUID PRIMARY KEY,
	work_order_id  UUID NOT NULL REFERENCES work_orders(id) ON DELETE CASCADE,
	repair_work_id UUID NOT NULL,
	name           TEXT NOT NULL,
	price          NUMERIC(12,2) NOT NULL,
	position       INT NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_work_order_items_order ON work_order_items (work_order_id);

CREATE TABLE IF NOT EXISTS users (
	id                    UUID PRIMARY KEY,
	email                 TEXT NOT NULL UNIQUE,
	password_hash         TEXT NOT NULL,
	language              TEXT NOT NULL DEFAULT 'en',
	reset_code            TEXT,
	reset_code_expires_at TIMESTAMPTZ,
	reset_attempts        INT NOT NULL DEFAULT 0,
	created_at            TIMESTAMPTZ NOT NULL,
	updated_at            TIMESTAMPTZ NOT NULL
);
`

// Migrate aplica el esquema. Todas las sentencias son IF NOT EXISTS, así que
// es seguro ejecutarlo en cada arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
