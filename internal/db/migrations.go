package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'car_status') THEN
			CREATE TYPE car_status AS ENUM ('active', 'inactive', 'archived');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'quote_status') THEN
			CREATE TYPE quote_status AS ENUM ('draft', 'sent', 'confirmed', 'cancelled');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(64) NOT NULL,
		email VARCHAR(255) NOT NULL DEFAULT '',
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_admin_users_username ON admin_users (username);`,
	`CREATE TABLE IF NOT EXISTS cars (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		brand VARCHAR(128) NOT NULL,
		category VARCHAR(32) NOT NULL,
		image VARCHAR(255) NOT NULL DEFAULT '',
		default_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		default_km INTEGER NOT NULL DEFAULT 0,
		default_extra_km NUMERIC(12,2) NOT NULL DEFAULT 0,
		default_deposit NUMERIC(12,2) NOT NULL DEFAULT 0,
		description TEXT,
		status car_status NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_cars_status ON cars (status);`,
	`CREATE INDEX IF NOT EXISTS idx_cars_brand ON cars (brand);`,
	`CREATE TABLE IF NOT EXISTS quotes (
		id BIGSERIAL PRIMARY KEY,
		quote_number VARCHAR(32) NOT NULL,
		client_name VARCHAR(255) NOT NULL,
		client_email VARCHAR(255),
		quote_date DATE NOT NULL,
		destination VARCHAR(255),
		total_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
		status quote_status NOT NULL DEFAULT 'draft',
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_quotes_quote_number ON quotes (quote_number);`,
	`CREATE INDEX IF NOT EXISTS idx_quotes_status ON quotes (status);`,
	// quote_cars.car_id has no foreign key: a quote is a point-in-time
	// record and must survive catalog deletes.
	`CREATE TABLE IF NOT EXISTS quote_cars (
		id BIGSERIAL PRIMARY KEY,
		quote_id BIGINT NOT NULL REFERENCES quotes(id) ON DELETE CASCADE,
		car_id BIGINT NOT NULL,
		custom_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		custom_km INTEGER NOT NULL DEFAULT 0,
		custom_extra_km NUMERIC(12,2) NOT NULL DEFAULT 0,
		custom_deposit NUMERIC(12,2) NOT NULL DEFAULT 0
	);`,
	`CREATE INDEX IF NOT EXISTS idx_quote_cars_quote_id ON quote_cars (quote_id);`,
	`CREATE INDEX IF NOT EXISTS idx_quote_cars_car_id ON quote_cars (car_id);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
