package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/romidental/reception-api/internal/model"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	GetByPhone(ctx context.Context, phone string) (*model.Patient, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	ListByDate(ctx context.Context, date time.Time) ([]*model.Appointment, error)
}

type FollowUpRepository interface {
	Create(ctx context.Context, followUp *model.FollowUp) error
	ListPending(ctx context.Context) ([]*model.FollowUp, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.FollowUpStatus) error
}

type AnalyticsRepository interface {
	RecordCallOutcome(ctx context.Context, revenue float64) error
	GetByDate(ctx context.Context, date time.Time) (*model.CallAnalytics, error)
	ClinicStats(ctx context.Context) (*model.ClinicStats, error)
}
