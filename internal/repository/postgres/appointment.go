package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/romidental/reception-api/internal/model"
	"github.com/romidental/reception-api/internal/repository"
	apperrors "github.com/romidental/reception-api/pkg/errors"
)

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, patient_id, patient_name, phone_number,
			service_type, scheduled_date, status, revenue, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.PatientID,
		appointment.PatientName,
		appointment.PhoneNumber,
		appointment.ServiceType,
		appointment.ScheduledDate,
		appointment.Status,
		appointment.Revenue,
		appointment.Notes,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	if err != nil {
		return apperrors.Database("failed to create appointment", err)
	}
	return nil
}

func (r *appointmentRepository) ListByDate(ctx context.Context, date time.Time) ([]*model.Appointment, error) {
	query := `
		SELECT id, patient_id, patient_name, phone_number,
		       service_type, scheduled_date, status, revenue, notes,
		       created_at, updated_at
		FROM appointments
		WHERE scheduled_date::date = $1::date
		ORDER BY scheduled_date
	`
	var appointments []*model.Appointment
	err := r.db.SelectContext(ctx, &appointments, query, date)
	if err != nil {
		return nil, apperrors.Database("failed to list appointments", err)
	}
	return appointments, nil
}
