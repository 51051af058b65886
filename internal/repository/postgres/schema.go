package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		email TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id UUID PRIMARY KEY,
		patient_id UUID REFERENCES patients (id),
		patient_name TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		service_type TEXT NOT NULL,
		scheduled_date TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL DEFAULT 'scheduled',
		revenue DOUBLE PRECISION NOT NULL DEFAULT 0,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS follow_ups (
		id UUID PRIMARY KEY,
		patient_name TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		preferred_time TEXT NOT NULL,
		reason TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		scheduled_by TEXT NOT NULL DEFAULT 'Elo',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		completed_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS call_analytics (
		id UUID PRIMARY KEY,
		total_calls INTEGER NOT NULL DEFAULT 0,
		appointments_booked INTEGER NOT NULL DEFAULT 0,
		revenue_generated DOUBLE PRECISION NOT NULL DEFAULT 0,
		conversion_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		date DATE NOT NULL UNIQUE DEFAULT CURRENT_DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments (scheduled_date)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_phone ON appointments (phone_number)`,
	`CREATE INDEX IF NOT EXISTS idx_follow_ups_status ON follow_ups (status)`,
	`CREATE INDEX IF NOT EXISTS idx_patients_phone ON patients (phone_number)`,
}

// InitSchema creates the tables and indexes if they do not exist yet.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
