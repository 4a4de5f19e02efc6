package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS orders (
	id TEXT PRIMARY KEY,
	order_number TEXT NOT NULL UNIQUE,
	customer_name TEXT NOT NULL,
	phone TEXT NOT NULL,
	address TEXT NOT NULL,
	landmark TEXT NOT NULL DEFAULT '',
	items TEXT NOT NULL,
	cart_items TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	order_type TEXT NOT NULL,
	delivery_area TEXT NOT NULL DEFAULT '',
	subtotal INTEGER NOT NULL,
	delivery_charge INTEGER NOT NULL,
	total INTEGER NOT NULL,
	payment_method TEXT NOT NULL DEFAULT 'cod',
	payment_status TEXT NOT NULL DEFAULT 'pending',
	razorpay_order_id TEXT,
	razorpay_payment_id TEXT,
	status TEXT NOT NULL DEFAULT 'pending',
	estimated_time TEXT NOT NULL DEFAULT '45-60 minutes',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

CREATE TABLE IF NOT EXISTS menu_items (
	id TEXT PRIMARY KEY,
	category TEXT NOT NULL,
	name TEXT NOT NULL,
	price INTEGER NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	image TEXT NOT NULL DEFAULT '',
	available INTEGER NOT NULL DEFAULT 1,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_menu_category ON menu_items(category);

CREATE TABLE IF NOT EXISTS specials (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	original_price INTEGER NOT NULL,
	special_price INTEGER NOT NULL,
	image TEXT NOT NULL DEFAULT '',
	is_active INTEGER NOT NULL DEFAULT 1,
	badge TEXT NOT NULL DEFAULT 'Today''s Special',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
`

// InitDB opens the SQLite database and applies the schema.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// modernc sqlite serializes writes; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
