package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// Valid reports whether s is one of the known appointment statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow:
		return true
	}
	return false
}

type Appointment struct {
	ID            uuid.UUID         `db:"id" json:"id"`
	PatientID     *uuid.UUID        `db:"patient_id" json:"patient_id,omitempty"`
	PatientName   string            `db:"patient_name" json:"patient_name"`
	PhoneNumber   string            `db:"phone_number" json:"phone_number"`
	ServiceType   string            `db:"service_type" json:"service_type"`
	ScheduledDate time.Time         `db:"scheduled_date" json:"scheduled_date"`
	Status        AppointmentStatus `db:"status" json:"status"`
	Revenue       float64           `db:"revenue" json:"revenue"`
	Notes         string            `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time         `db:"updated_at" json:"updated_at"`
}

type ScheduleAppointmentRequest struct {
	PatientName   string `json:"patient_name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	ServiceType   string `json:"service_type" binding:"required"`
	PreferredDate string `json:"preferred_date" binding:"required"`
	Notes         string `json:"notes"`
}
