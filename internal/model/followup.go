package model

import (
	"time"

	"github.com/google/uuid"
)

type FollowUpStatus string

const (
	FollowUpStatusPending   FollowUpStatus = "pending"
	FollowUpStatusCompleted FollowUpStatus = "completed"
	FollowUpStatusCancelled FollowUpStatus = "cancelled"
)

// Valid reports whether s is one of the known follow-up statuses.
func (s FollowUpStatus) Valid() bool {
	switch s {
	case FollowUpStatusPending, FollowUpStatusCompleted, FollowUpStatusCancelled:
		return true
	}
	return false
}

type FollowUp struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	PatientName   string         `db:"patient_name" json:"patient_name"`
	PhoneNumber   string         `db:"phone_number" json:"phone_number"`
	PreferredTime string         `db:"preferred_time" json:"preferred_time"`
	Reason        string         `db:"reason" json:"reason"`
	Status        FollowUpStatus `db:"status" json:"status"`
	ScheduledBy   string         `db:"scheduled_by" json:"scheduled_by"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	CompletedAt   *time.Time     `db:"completed_at" json:"completed_at,omitempty"`
}

type ScheduleFollowUpRequest struct {
	PatientName   string `json:"patient_name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	PreferredTime string `json:"preferred_time" binding:"required"`
	Reason        string `json:"reason" binding:"required"`
}

type UpdateFollowUpStatusRequest struct {
	Status FollowUpStatus `json:"status" binding:"required"`
}
