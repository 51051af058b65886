package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/romidental/reception-api/internal/model"
	"github.com/romidental/reception-api/internal/repository"
	apperrors "github.com/romidental/reception-api/pkg/errors"
)

type followUpRepository struct {
	db *sqlx.DB
}

func NewFollowUpRepository(db *sqlx.DB) repository.FollowUpRepository {
	return &followUpRepository{db: db}
}

func (r *followUpRepository) Create(ctx context.Context, followUp *model.FollowUp) error {
	query := `
		INSERT INTO follow_ups (
			id, patient_name, phone_number, preferred_time,
			reason, status, scheduled_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	followUp.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		followUp.ID,
		followUp.PatientName,
		followUp.PhoneNumber,
		followUp.PreferredTime,
		followUp.Reason,
		followUp.Status,
		followUp.ScheduledBy,
		followUp.CreatedAt,
	)
	if err != nil {
		return apperrors.Database("failed to create follow-up", err)
	}
	return nil
}

func (r *followUpRepository) ListPending(ctx context.Context) ([]*model.FollowUp, error) {
	query := `
		SELECT id, patient_name, phone_number, preferred_time,
		       reason, status, scheduled_by, created_at, completed_at
		FROM follow_ups
		WHERE status = 'pending'
		ORDER BY created_at
	`
	var followUps []*model.FollowUp
	err := r.db.SelectContext(ctx, &followUps, query)
	if err != nil {
		return nil, apperrors.Database("failed to list pending follow-ups", err)
	}
	return followUps, nil
}

func (r *followUpRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.FollowUpStatus) error {
	// completed_at is set only on the transition to completed and cleared on
	// any other transition.
	var completedAt *time.Time
	if status == model.FollowUpStatusCompleted {
		now := time.Now()
		completedAt = &now
	}

	query := `UPDATE follow_ups SET status = $1, completed_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, status, completedAt, id)
	if err != nil {
		return apperrors.Database("failed to update follow-up status", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Database("failed to get rows affected", err)
	}
	if rows == 0 {
		return apperrors.NotFound("follow-up", nil)
	}
	return nil
}
