package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// NewTestDB creates an in-memory SQLite database for testing
func NewTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	// Create schema
	schema := `
	CREATE TABLE IF NOT EXISTS vehicles (
		id VARCHAR(36) PRIMARY KEY,
		plate VARCHAR(16) NOT NULL UNIQUE,
		make VARCHAR(64) NOT NULL,
		model VARCHAR(64) NOT NULL,
		year INTEGER NOT NULL,
		kind VARCHAR(32) NOT NULL,
		color VARCHAR(32),
		mileage INTEGER NOT NULL DEFAULT 0,
		state VARCHAR(16) NOT NULL DEFAULT 'active',
		soat_expiry VARCHAR(10),
		roadworthiness_expiry VARCHAR(10),
		created_at VARCHAR(35) NOT NULL,
		updated_at VARCHAR(35)
	);

	CREATE TABLE IF NOT EXISTS drivers (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(128) NOT NULL,
		national_id VARCHAR(32) NOT NULL UNIQUE,
		license_number VARCHAR(32) NOT NULL,
		license_category VARCHAR(8),
		phone VARCHAR(32),
		email VARCHAR(128),
		license_expiry VARCHAR(10),
		created_at VARCHAR(35) NOT NULL,
		updated_at VARCHAR(35)
	);

	CREATE TABLE IF NOT EXISTS inspections (
		id VARCHAR(36) PRIMARY KEY,
		vehicle_id VARCHAR(36) NOT NULL,
		driver_id VARCHAR(36) NOT NULL,
		date VARCHAR(10) NOT NULL,
		time VARCHAR(5) NOT NULL,
		mileage INTEGER NOT NULL DEFAULT 0,
		destination VARCHAR(256),
		health TEXT NOT NULL,
		sections TEXT NOT NULL,
		observations TEXT,
		signature_ref VARCHAR(256),
		document_ref VARCHAR(256),
		verdict VARCHAR(16) NOT NULL,
		created_at VARCHAR(35) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS alerts (
		id VARCHAR(36) PRIMARY KEY,
		vehicle_id VARCHAR(36),
		driver_id VARCHAR(36),
		inspection_id VARCHAR(36),
		type VARCHAR(32) NOT NULL,
		priority VARCHAR(16) NOT NULL,
		title VARCHAR(256) NOT NULL,
		description TEXT NOT NULL,
		affected_items TEXT,
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		detected_at VARCHAR(35) NOT NULL,
		resolved_at VARCHAR(35),
		notes TEXT,
		created_by VARCHAR(64) NOT NULL,
		created_at VARCHAR(35) NOT NULL,
		updated_at VARCHAR(35)
	);
	`

	_, err = db.Exec(schema)
	if err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	return db
}

// CleanupDB closes the test database
func CleanupDB(db *sql.DB) {
	if db != nil {
		db.Close()
	}
}
