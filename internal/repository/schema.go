package repository

// schema is applied in order by Migrate. Every statement is idempotent and
// portable between PostgreSQL and SQLite. Timestamps are fixed-width UTC text.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS agents (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL DEFAULT '',
		specialization TEXT NOT NULL DEFAULT '',
		active_listings INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS properties (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price DOUBLE PRECISION NOT NULL,
		property_type TEXT NOT NULL DEFAULT '',
		bedrooms INTEGER NOT NULL DEFAULT 0,
		bathrooms INTEGER NOT NULL DEFAULT 0,
		size DOUBLE PRECISION NOT NULL DEFAULT 0,
		city TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		agent_id TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'Available',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inquiries (
		id TEXT PRIMARY KEY,
		property_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		agent_id TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'Pending',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_city ON properties (city)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_price ON properties (price)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_type ON properties (property_type)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_city_price ON properties (city, price)`,
	`CREATE INDEX IF NOT EXISTS idx_inquiries_property ON inquiries (property_id)`,
}
