package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq" // PostgreSQL driver
)

var DB *sql.DB

// schema is applied on every startup; IF NOT EXISTS keeps it idempotent,
// so a fresh database is bootstrapped without a migration history.
const schema = `
CREATE TABLE IF NOT EXISTS guests (
    id              SERIAL PRIMARY KEY,
    name            VARCHAR(100) NOT NULL,
    phone           VARCHAR(15) NOT NULL,
    email           VARCHAR(100),
    passport_series VARCHAR(4) UNIQUE,
    passport_number VARCHAR(6) UNIQUE
);

CREATE TABLE IF NOT EXISTS rooms (
    id            SERIAL PRIMARY KEY,
    room_number   VARCHAR(10) NOT NULL,
    category      VARCHAR(50) NOT NULL,
    capacity      INTEGER NOT NULL,
    has_child_bed BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS bookings (
    id             SERIAL PRIMARY KEY,
    room_id        INTEGER NOT NULL REFERENCES rooms(id) ON DELETE RESTRICT,
    main_guest_id  INTEGER NOT NULL REFERENCES guests(id) ON DELETE RESTRICT,
    check_in_date  DATE NOT NULL,
    check_out_date DATE NOT NULL,
    status         VARCHAR(50) NOT NULL DEFAULT 'pending',
    discount       NUMERIC(5,2) NOT NULL DEFAULT 0.00,
    price          NUMERIC(10,2) NOT NULL DEFAULT 0.00
);

CREATE TABLE IF NOT EXISTS booking_guests (
    id         SERIAL PRIMARY KEY,
    booking_id INTEGER NOT NULL REFERENCES bookings(id) ON DELETE RESTRICT,
    guest_id   INTEGER NOT NULL REFERENCES guests(id) ON DELETE RESTRICT
);

CREATE TABLE IF NOT EXISTS prices (
    id          SERIAL PRIMARY KEY,
    room_id     INTEGER NOT NULL REFERENCES rooms(id) ON DELETE RESTRICT,
    day_of_week VARCHAR(15) NOT NULL,
    price       NUMERIC(10,2) NOT NULL
);

CREATE TABLE IF NOT EXISTS discounts (
    id               SERIAL PRIMARY KEY,
    min_days         INTEGER NOT NULL,
    max_days         INTEGER NOT NULL,
    discount_percent NUMERIC(5,2) NOT NULL
);

CREATE TABLE IF NOT EXISTS payments (
    id           SERIAL PRIMARY KEY,
    booking_id   INTEGER NOT NULL REFERENCES bookings(id) ON DELETE RESTRICT,
    amount       NUMERIC(10,2) NOT NULL,
    payment_date DATE NOT NULL,
    status       VARCHAR(50) NOT NULL
);
`

// InitDB initializes the database connection and bootstraps the schema.
func InitDB(host, port, user, password, dbname, sslmode string) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("Error opening database: %q", err)
	}

	err = DB.Ping()
	if err != nil {
		log.Fatalf("Error connecting to database: %q", err)
	}

	if err = applySchema(DB); err != nil {
		log.Fatalf("Error applying database schema: %q", err)
	}
}

// applySchema creates the tables if they do not exist yet.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("could not execute schema script: %w", err)
	}
	return nil
}

// GetDB returns the database connection pool
func GetDB() *sql.DB {
	return DB
}
